package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/chanlloyd12/backend-repo/internal/domain"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Workflow WorkflowConfig
	Log      LogConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"8080" validate:"required,numeric"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `env:"DB_DRIVER" envDefault:"postgres" validate:"oneof=postgres sqlite"`
	Host            string `env:"DB_HOST" envDefault:"localhost"`
	Port            string `env:"DB_PORT" envDefault:"5432"`
	User            string `env:"DB_USER" envDefault:"postgres"`
	Password        string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName          string `env:"DB_NAME" envDefault:"hrflow"`
	SSLMode         string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath      string `env:"DB_SQLITE_PATH" envDefault:"hrflow.db"`
	ConnectAttempts uint64 `env:"DB_CONNECT_ATTEMPTS" envDefault:"30" validate:"min=1"`
}

// WorkflowConfig - настройки движка согласований
type WorkflowConfig struct {
	Retransition domain.RetransitionPolicy `env:"WORKFLOW_RETRANSITION" envDefault:"forbid" validate:"oneof=forbid allow"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
