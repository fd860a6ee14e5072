package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Временные файлы
	TempDir         string        `json:"temp_dir"`
	FileMaxAge      time.Duration `json:"file_max_age"`
	CleanupInterval time.Duration `json:"cleanup_interval"`

	// Загрузка файлов
	MaxUploadSize    int64   `json:"max_upload_size"`
	UploadRatePerSec float64 `json:"upload_rate_per_sec"`
	UploadBurst      int     `json:"upload_burst"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "8000"),

		// Временные файлы
		TempDir:         getEnv("TEMP_DIR", "temp"),
		FileMaxAge:      getEnvDuration("FILE_MAX_AGE", time.Hour),
		CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", 10*time.Minute),

		// Загрузка файлов (максимальный размер 50MB)
		MaxUploadSize:    int64(getEnvInt("MAX_UPLOAD_SIZE", 50<<20)),
		UploadRatePerSec: getEnvFloat("UPLOAD_RATE_PER_SEC", 5),
		UploadBurst:      getEnvInt("UPLOAD_BURST", 10),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает переменную окружения как float64 или возвращает значение по умолчанию
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
