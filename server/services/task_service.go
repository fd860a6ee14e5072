package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/DxTea/XLSX-Processing-API/server/errors"
)

// TaskStatus статус задачи обработки
type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusSuccess TaskStatus = "success"
	StatusFailed  TaskStatus = "failed"
)

// Task задача обработки одного файла
type Task struct {
	ID         string
	Status     TaskStatus
	Error      string
	OutputPath string
	CreatedAt  time.Time
}

// ProcessFunc функция обработки файла: вход и выход — пути к XLSX
type ProcessFunc func(inputPath, outputPath string) error

// TaskService реестр задач обработки файлов.
// Реестр — единственное разделяемое состояние между запусками: запись
// завершения делает только горутина своей задачи, читатели — поллеры
// статуса. Изоляции по ключу достаточно, межключевой порядок не нужен.
type TaskService struct {
	mu      sync.RWMutex
	tasks   map[string]*Task
	tempDir string
	process ProcessFunc
}

// NewTaskService создает новый реестр задач
func NewTaskService(tempDir string, process ProcessFunc) *TaskService {
	return &TaskService{
		tasks:   make(map[string]*Task),
		tempDir: tempDir,
		process: process,
	}
}

// Submit сохраняет загруженный файл, проверяет формат и запускает
// асинхронную обработку. Возвращает идентификатор задачи.
// Некорректный XLSX отклоняется до запуска конвейера.
func (s *TaskService) Submit(src io.Reader) (string, error) {
	taskID := uuid.New().String()
	inputPath := filepath.Join(s.tempDir, taskID+"_input.xlsx")
	outputPath := filepath.Join(s.tempDir, taskID+"_output.xlsx")

	if err := saveFile(src, inputPath); err != nil {
		return "", apperrors.NewInternalError("не удалось сохранить загруженный файл", err)
	}

	// Проверка формата до постановки задачи
	if err := verifyXLSX(inputPath); err != nil {
		os.Remove(inputPath)
		return "", apperrors.NewValidationError("Некорректный формат XLSX-файла", err)
	}

	s.mu.Lock()
	s.tasks[taskID] = &Task{
		ID:         taskID,
		Status:     StatusPending,
		OutputPath: outputPath,
		CreatedAt:  time.Now(),
	}
	s.mu.Unlock()

	go s.runTask(taskID, inputPath, outputPath)

	return taskID, nil
}

// runTask выполняет обработку как независимую единицу работы.
// Входной файл удаляется в любом исходе; ошибка конвейера записывается
// в статус задачи и не роняет процесс.
func (s *TaskService) runTask(taskID, inputPath, outputPath string) {
	defer os.Remove(inputPath)
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in processing task",
				"task_id", taskID,
				"panic", r,
			)
			s.complete(taskID, StatusFailed, fmt.Sprintf("внутренняя ошибка: %v", r))
		}
	}()

	if err := s.process(inputPath, outputPath); err != nil {
		slog.Warn("Task failed",
			"task_id", taskID,
			"error", err,
		)
		s.complete(taskID, StatusFailed, err.Error())
		return
	}

	slog.Info("Task completed", "task_id", taskID)
	s.complete(taskID, StatusSuccess, "")
}

// complete записывает финальный статус задачи.
// Пишет только горутина самой задачи, по одному разу на задачу.
func (s *TaskService) complete(taskID string, status TaskStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return
	}
	task.Status = status
	task.Error = errMsg
}

// GetTask возвращает копию задачи по идентификатору
func (s *TaskService) GetTask(taskID string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

// ResultPath возвращает путь к результату завершенной задачи
func (s *TaskService) ResultPath(taskID string) (string, error) {
	task, ok := s.GetTask(taskID)
	if !ok {
		return "", apperrors.NewNotFoundError("Задача не найдена", nil)
	}

	if task.Status != StatusSuccess {
		return "", apperrors.NewNotFoundError("Задача не завершена или завершилась с ошибкой", nil)
	}

	if _, err := os.Stat(task.OutputPath); err != nil {
		return "", apperrors.NewNotFoundError("Результат не найден", err)
	}

	return task.OutputPath, nil
}

// saveFile записывает содержимое src в файл path
func saveFile(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// verifyXLSX проверяет, что файл открывается как XLSX
func verifyXLSX(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	return f.Close()
}
