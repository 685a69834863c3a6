package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Timeline TimelineConfig `toml:"timeline"`
}

// ServerConfig настройки HTTP сервера
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis (сессии администратора и кеш каталога услуг).
// При enabled = false используются in-memory реализации.
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig демо-аутентификация администратора.
// Пароль сравнивается в constant time; продакшен-защита вне скоупа сервиса.
type AdminConfig struct {
	Password          string `toml:"password"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// TimelineConfig параметры сетки расписания
type TimelineConfig struct {
	StartHour           int `toml:"start_hour"`
	EndHour             int `toml:"end_hour"`
	SlotIntervalMinutes int `toml:"slot_interval_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	if c.Admin.Password == "" {
		return fmt.Errorf("%w: admin.password is required", ErrInvalidConfig)
	}
	if c.Admin.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: admin.session_ttl_minutes must be positive", ErrInvalidConfig)
	}

	tl := c.Timeline
	if tl.SlotIntervalMinutes <= 0 || 60%tl.SlotIntervalMinutes != 0 {
		return fmt.Errorf("%w: timeline.slot_interval_minutes must divide 60 evenly", ErrInvalidConfig)
	}
	if tl.StartHour < 0 || tl.EndHour > 24 || tl.StartHour >= tl.EndHour {
		return fmt.Errorf("%w: timeline hours must satisfy 0 <= start_hour < end_hour <= 24", ErrInvalidConfig)
	}

	return nil
}
