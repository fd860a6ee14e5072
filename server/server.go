package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/DxTea/XLSX-Processing-API/internal/config"
	"github.com/DxTea/XLSX-Processing-API/processing"
	"github.com/DxTea/XLSX-Processing-API/server/handlers"
	"github.com/DxTea/XLSX-Processing-API/server/middleware"
	"github.com/DxTea/XLSX-Processing-API/server/services"
)

// Server HTTP сервер обработки XLSX-отчетов
type Server struct {
	config         *config.Config
	taskService    *services.TaskService
	cleanupService *services.CleanupService
	taskHandler    *handlers.TaskHandler

	httpServer     *http.Server
	httpHandler    http.Handler
	handlerOnce    sync.Once
	handlerInitErr error

	cleanupCancel context.CancelFunc
}

// NewServer создает сервер со всеми сервисами
func NewServer(cfg *config.Config) *Server {
	taskService := services.NewTaskService(cfg.TempDir, processing.ProcessFile)
	cleanupService := services.NewCleanupService(cfg.TempDir, cfg.FileMaxAge, cfg.CleanupInterval)

	return &Server{
		config:         cfg,
		taskService:    taskService,
		cleanupService: cleanupService,
		taskHandler:    handlers.NewTaskHandler(taskService),
	}
}

// TaskService возвращает реестр задач (для тестов и утилит)
func (s *Server) TaskService() *services.TaskService {
	return s.taskService
}

// Start запускает HTTP сервер и фоновую очистку временных файлов
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Периодическая очистка устаревших артефактов, независимо от конвейера
	ctx, cancel := context.WithCancel(context.Background())
	s.cleanupCancel = cancel
	go s.cleanupService.Start(ctx)

	log.Printf("Сервер запускается на порту %s", s.config.Port)
	log.Printf("API доступно по адресу: http://localhost%s", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("не удалось запустить HTTP сервер на %s: %w", addr, err)
	}

	return nil
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}

	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// Режим Gin: release по умолчанию, переопределяется через GIN_MODE
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)

	s.registerRoutes(router)

	return router, nil
}

// registerRoutes регистрирует маршруты API
func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "xlsx-processing-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	uploadLimiter := middleware.NewUploadRateLimiter(rate.Limit(s.config.UploadRatePerSec), s.config.UploadBurst)

	router.POST("/upload",
		uploadLimiter.Middleware(),
		s.limitBodySize(),
		s.taskHandler.HandleUploadGin,
	)
	router.GET("/status/:task_id", s.taskHandler.HandleStatusGin)
	router.GET("/result/:task_id", s.taskHandler.HandleResultGin)
}

// limitBodySize ограничивает размер тела запроса загрузки
func (s *Server) limitBodySize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxUploadSize)
		c.Next()
	}
}

// ServeHTTP реализует http.Handler для тестов и вспомогательных утилит
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cleanupCancel != nil {
		s.cleanupCancel()
	}

	if s.httpServer == nil {
		return nil
	}

	log.Println("Initiating graceful shutdown...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}
