package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, если значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Engine        EngineConfig        `toml:"engine"`
	LessonService LessonServiceConfig `toml:"lesson_service"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EngineConfig ограничения движка слотов
type EngineConfig struct {
	PickGranularityMinutes int `toml:"pick_granularity_minutes"`
	MinDurationMinutes     int `toml:"min_duration_minutes"`
	MaxDurationMinutes     int `toml:"max_duration_minutes"`
	MaxRecurringDays       int `toml:"max_recurring_days"`
}

// Limits переводит настройки движка в доменные ограничения
func (e EngineConfig) Limits() domain.EngineLimits {
	return domain.EngineLimits{
		PickGranularityMinutes: e.PickGranularityMinutes,
		MinDurationMinutes:     e.MinDurationMinutes,
		MaxDurationMinutes:     e.MaxDurationMinutes,
		MaxRecurringDays:       e.MaxRecurringDays,
	}
}

// LessonServiceConfig настройки клиента каталога занятий
type LessonServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "availability-service",
		},
		Engine: EngineConfig{
			PickGranularityMinutes: domain.DefaultPickGranularityMinutes,
			MinDurationMinutes:     domain.DefaultMinDurationMinutes,
			MaxDurationMinutes:     domain.DefaultMaxDurationMinutes,
			MaxRecurringDays:       domain.DefaultMaxRecurringDays,
		},
		LessonService: LessonServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
	}
}

// applyEnv переопределяет секреты и порт из окружения
func (c *Config) applyEnv() error {
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		c.Database.Password = pass
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, port)
		}
		c.Server.HTTPPort = p
	}

	return nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.dbname and database.user are required", ErrInvalidConfig)
	}

	e := c.Engine
	if e.PickGranularityMinutes <= 0 || e.PickGranularityMinutes > domain.MinutesPerDay {
		return fmt.Errorf("%w: engine.pick_granularity_minutes must be in 1..%d", ErrInvalidConfig, domain.MinutesPerDay)
	}
	if e.MinDurationMinutes <= 0 {
		return fmt.Errorf("%w: engine.min_duration_minutes must be positive", ErrInvalidConfig)
	}
	if e.MaxDurationMinutes < e.MinDurationMinutes {
		return fmt.Errorf("%w: engine.max_duration_minutes must not be less than min_duration_minutes", ErrInvalidConfig)
	}
	if e.MaxRecurringDays <= 0 {
		return fmt.Errorf("%w: engine.max_recurring_days must be positive", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.LessonService.URL == "" || c.LessonService.Timeout <= 0 {
		return fmt.Errorf("%w: lesson_service.url and lesson_service.timeout are required", ErrInvalidConfig)
	}

	return nil
}
