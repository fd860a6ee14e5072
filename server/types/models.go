package types

// UploadResponse ответ на загрузку файла
type UploadResponse struct {
	TaskID string `json:"task_id"`
}

// TaskStatusResponse ответ со статусом задачи
type TaskStatusResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse структура ошибки
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}
