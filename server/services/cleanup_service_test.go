package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunOnce_RemovesStaleFiles проверяет удаление файлов старше maxAge
func TestRunOnce_RemovesStaleFiles(t *testing.T) {
	dir := t.TempDir()

	stalePath := filepath.Join(dir, "old_output.xlsx")
	freshPath := filepath.Join(dir, "new_output.xlsx")
	require.NoError(t, os.WriteFile(stalePath, []byte("stale"), 0o644))
	require.NoError(t, os.WriteFile(freshPath, []byte("fresh"), 0o644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stalePath, old, old))

	svc := NewCleanupService(dir, time.Hour, time.Minute)

	removed, err := svc.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stalePath)
	assert.True(t, os.IsNotExist(err), "устаревший файл должен быть удален")

	_, err = os.Stat(freshPath)
	assert.NoError(t, err, "свежий файл должен остаться")
}

// TestRunOnce_SkipsDirectories проверяет, что поддиректории не трогаются
func TestRunOnce_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()

	subDir := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(subDir, 0o755))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(subDir, old, old))

	svc := NewCleanupService(dir, time.Hour, time.Minute)

	removed, err := svc.RunOnce()
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = os.Stat(subDir)
	assert.NoError(t, err)
}

// TestRunOnce_MissingDir проверяет ошибку для несуществующей директории
func TestRunOnce_MissingDir(t *testing.T) {
	svc := NewCleanupService(filepath.Join(t.TempDir(), "absent"), time.Hour, time.Minute)

	_, err := svc.RunOnce()
	assert.Error(t, err)
}

// TestRunOnce_EmptyDir проверяет очистку пустой директории
func TestRunOnce_EmptyDir(t *testing.T) {
	svc := NewCleanupService(t.TempDir(), time.Hour, time.Minute)

	removed, err := svc.RunOnce()
	require.NoError(t, err)
	assert.Zero(t, removed)
}
