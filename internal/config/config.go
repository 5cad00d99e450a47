package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server            ServerConfig      `toml:"server"`
	Logs              LogsConfig        `toml:"logs"`
	Metrics           MetricsConfig     `toml:"metrics"`
	Cache             CacheConfig       `toml:"cache"`
	Sessions          SessionsConfig    `toml:"sessions"`
	PriceTableService IntegrationConfig `toml:"pricetable_service"`
	CartService       IntegrationConfig `toml:"cart_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки кэша трансформированных расписаний
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	Size       int  `toml:"size"`        // максимум записей в LRU
	TTLSeconds int  `toml:"ttl_seconds"` // время жизни записи
}

// SessionsConfig настройки хранилища сессий
type SessionsConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalSeconds int `toml:"cleanup_interval_seconds"`
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "scheduling-service"
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = 512
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 600
	}
	if cfg.Sessions.TTLMinutes == 0 {
		cfg.Sessions.TTLMinutes = 60
	}
	if cfg.Sessions.CleanupIntervalSeconds == 0 {
		cfg.Sessions.CleanupIntervalSeconds = 60
	}
	if cfg.PriceTableService.Timeout == 0 {
		cfg.PriceTableService.Timeout = 5
	}
	if cfg.CartService.Timeout == 0 {
		cfg.CartService.Timeout = 5
	}
}

func validate(cfg *Config) error {
	if cfg.PriceTableService.URL == "" {
		return fmt.Errorf("config: pricetable_service.url is required")
	}
	if cfg.CartService.URL == "" {
		return fmt.Errorf("config: cart_service.url is required")
	}
	return nil
}
