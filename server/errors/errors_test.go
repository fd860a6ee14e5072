package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppError_Error проверяет форматирование ошибки
func TestAppError_Error(t *testing.T) {
	inner := errors.New("file is corrupt")
	appErr := NewValidationError("Некорректный формат XLSX-файла", inner)

	assert.Equal(t, "Некорректный формат XLSX-файла: file is corrupt", appErr.Error())
	assert.Equal(t, "Некорректный формат XLSX-файла", appErr.UserMessage())
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.ErrorIs(t, appErr, inner)
}

// TestNewInternalError проверяет, что детали не попадают в сообщение пользователю
func TestNewInternalError(t *testing.T) {
	appErr := NewInternalError("disk write failed", errors.New("no space left"))

	assert.Equal(t, "Внутренняя ошибка сервера", appErr.UserMessage())
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode())
	assert.Contains(t, appErr.Err.Error(), "disk write failed")
	assert.Contains(t, appErr.Err.Error(), "no space left")
}

// TestWrapError_PreservesAppError проверяет сохранение статуса при оборачивании
func TestWrapError_PreservesAppError(t *testing.T) {
	original := NewNotFoundError("Задача не найдена", nil)

	wrapped := WrapError(original, "результат недоступен")

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
	assert.Equal(t, "Задача не найдена", wrapped.UserMessage())
	assert.Equal(t, "результат недоступен", wrapped.Context)
}

// TestWrapError_PlainError проверяет оборачивание обычной ошибки в 500
func TestWrapError_PlainError(t *testing.T) {
	wrapped := WrapError(errors.New("boom"), "не удалось принять файл")

	require.NotNil(t, wrapped)
	assert.Equal(t, http.StatusInternalServerError, wrapped.StatusCode())
	assert.Equal(t, "Внутренняя ошибка сервера", wrapped.UserMessage())
}

// TestAppError_WrappedDeep проверяет извлечение AppError из цепочки
func TestAppError_WrappedDeep(t *testing.T) {
	appErr := NewTooManyRequestsError("Слишком много запросов, попробуйте позже")
	chain := WrapError(appErr, "upload handler")

	var extracted *AppError
	require.ErrorAs(t, error(chain), &extracted)
	assert.Equal(t, http.StatusTooManyRequests, extracted.StatusCode())
}
