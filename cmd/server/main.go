// @title XLSX Processing API
// @version 1.0
// @description API обработки отчетов о закупках: нормализация числовых колонок и поиск расхождений заявка-приход.

// @host localhost:8000
// @BasePath /
// @schemes http

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DxTea/XLSX-Processing-API/internal/config"
	"github.com/DxTea/XLSX-Processing-API/server"
	"github.com/DxTea/XLSX-Processing-API/server/services"
)

func main() {
	log.Println("🚀 Запуск XLSX Processing API...")

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Ошибка загрузки конфигурации: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	// Создаем директорию для временных файлов
	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: не удалось создать директорию %s: %v", cfg.TempDir, err)
	}

	// Удаляем устаревшие файлы, оставшиеся с прошлого запуска
	startupCleanup := services.NewCleanupService(cfg.TempDir, cfg.FileMaxAge, cfg.CleanupInterval)
	if removed, err := startupCleanup.RunOnce(); err != nil {
		log.Printf("Предупреждение: стартовая очистка не выполнена: %v", err)
	} else if removed > 0 {
		log.Printf("Стартовая очистка: удалено файлов: %d", removed)
	}

	srv := server.NewServer(cfg)

	// Запускаем сервер в отдельной горутине
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Ошибка запуска сервера: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Получен сигнал завершения, останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Ошибка остановки сервера: %v", err)
	}

	log.Println("✓ Сервер остановлен")
}
