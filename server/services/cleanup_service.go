package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// CleanupService удаляет устаревшие временные файлы.
// Выходные артефакты живут не дольше заданного окна (по умолчанию час);
// очистка выполняется при старте и далее периодически, независимо
// от конвейера обработки.
type CleanupService struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
}

// NewCleanupService создает сервис очистки для директории dir
func NewCleanupService(dir string, maxAge, interval time.Duration) *CleanupService {
	return &CleanupService{
		dir:      dir,
		maxAge:   maxAge,
		interval: interval,
	}
}

// RunOnce удаляет из директории файлы старше maxAge.
// Возвращает количество удаленных файлов.
func (s *CleanupService) RunOnce() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read temp dir: %w", err)
	}

	now := time.Now()
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) <= s.maxAge {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			slog.Warn("Failed to remove stale file",
				"path", path,
				"error", err,
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		slog.Info("Stale files removed", "count", removed, "dir", s.dir)
	}

	return removed, nil
}

// Start запускает периодическую очистку до отмены контекста
func (s *CleanupService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(); err != nil {
				slog.Error("Cleanup sweep failed", "error", err)
			}
		}
	}
}
