package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация временной директории
	if c.TempDir == "" {
		errors = append(errors, "temp dir is required")
	}
	if c.FileMaxAge < time.Minute {
		errors = append(errors, "file max age must be at least 1 minute")
	}
	if c.CleanupInterval < time.Second {
		errors = append(errors, "cleanup interval must be at least 1 second")
	}

	// Валидация лимитов загрузки
	if c.MaxUploadSize < 1 {
		errors = append(errors, "max upload size must be positive")
	}
	if c.UploadRatePerSec <= 0 {
		errors = append(errors, "upload rate must be positive")
	}
	if c.UploadBurst < 1 {
		errors = append(errors, "upload burst must be at least 1")
	}

	// Валидация уровня логирования
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errors = append(errors, fmt.Sprintf("unknown log level: %s", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// SlogLevel возвращает уровень для log/slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
