package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/DxTea/XLSX-Processing-API/server/errors"
	"github.com/DxTea/XLSX-Processing-API/server/services"
	"github.com/DxTea/XLSX-Processing-API/server/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TaskHandler обработчик задач обработки XLSX-файлов
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler создает новый обработчик задач
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// HandleUploadGin принимает XLSX-файл и запускает асинхронную обработку
// @Summary Загрузить XLSX-файл на обработку
// @Description Принимает отчет о закупках, запускает асинхронную обработку и возвращает task_id
// @Tags tasks
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX-файл отчета"
// @Success 200 {object} types.UploadResponse "Идентификатор задачи"
// @Failure 400 {object} types.ErrorResponse "Некорректный файл"
// @Failure 500 {object} types.ErrorResponse "Внутренняя ошибка сервера"
// @Router /upload [post]
func (h *TaskHandler) HandleUploadGin(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "Не удалось получить файл из запроса")
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		SendJSONError(c, http.StatusBadRequest, "Требуется файл с расширением .xlsx")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := apperrors.NewInternalError("не удалось открыть загруженный файл", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	defer file.Close()

	taskID, err := h.taskService.Submit(file)
	if err != nil {
		appErr := apperrors.WrapError(err, "не удалось принять файл")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	SendJSONResponse(c, http.StatusOK, types.UploadResponse{TaskID: taskID})
}

// HandleStatusGin возвращает статус задачи по task_id
// @Summary Получить статус задачи
// @Description Возвращает статус задачи: pending, success или failed (с причиной)
// @Tags tasks
// @Produce json
// @Param task_id path string true "Идентификатор задачи"
// @Success 200 {object} types.TaskStatusResponse "Статус задачи"
// @Failure 404 {object} types.ErrorResponse "Задача не найдена"
// @Router /status/{task_id} [get]
func (h *TaskHandler) HandleStatusGin(c *gin.Context) {
	taskID := c.Param("task_id")

	task, ok := h.taskService.GetTask(taskID)
	if !ok {
		SendJSONError(c, http.StatusNotFound, "Задача не найдена")
		return
	}

	SendJSONResponse(c, http.StatusOK, types.TaskStatusResponse{
		TaskID: task.ID,
		Status: string(task.Status),
		Error:  task.Error,
	})
}

// HandleResultGin отдает обработанный XLSX-файл завершенной задачи
// @Summary Скачать результат задачи
// @Description Возвращает обработанный XLSX-файл, если задача завершена успешно
// @Tags tasks
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param task_id path string true "Идентификатор задачи"
// @Success 200 {file} file "Обработанный файл"
// @Failure 404 {object} types.ErrorResponse "Результат недоступен"
// @Router /result/{task_id} [get]
func (h *TaskHandler) HandleResultGin(c *gin.Context) {
	taskID := c.Param("task_id")

	path, err := h.taskService.ResultPath(taskID)
	if err != nil {
		appErr := apperrors.WrapError(err, "результат недоступен")
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.FileAttachment(path, fmt.Sprintf("result_%s.xlsx", taskID))
}
