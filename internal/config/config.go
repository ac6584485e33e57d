package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Поддерживаемые хранилища участников
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config содержит всю конфигурацию сервиса участников
type Config struct {
	Server   ServerConfig   // Настройки HTTP сервера
	Database DatabaseConfig // Настройки подключения к БД
	Log      LogConfig      // Настройки логирования
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port           string `envconfig:"SERVER_PORT" default:"8001"`
	Host           string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	AllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Origins возвращает список разрешенных CORS origin
func (s ServerConfig) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(s.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Storage  string `envconfig:"STORAGE" default:"postgres"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"dsc_club"`
	Password string `envconfig:"DB_PASSWORD" default:"dsc_club_pass"`
	Name     string `envconfig:"DB_NAME" default:"dsc_club"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// ClientConfig содержит настройки клиента rosterctl
type ClientConfig struct {
	BaseURL        string        `envconfig:"ROSTER_BASE_URL"`
	SplashDuration time.Duration `envconfig:"ROSTER_SPLASH_DURATION" default:"3s"`
	Log            LogConfig
}

// Load читает конфигурацию сервиса из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.Database.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Database.Storage)
	}

	return &cfg, nil
}

// LoadClient читает конфигурацию клиента из переменных окружения
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load client config: %w", err)
	}
	return &cfg, nil
}
