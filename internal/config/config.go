package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	SendGrid SendGridConfig `toml:"sendgrid"`
	CORS     CORSConfig     `toml:"cors"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки аутентификации
// AdminPasswordHash - bcrypt хэш пароля администратора
type AuthConfig struct {
	JWTSecret         string `toml:"jwt_secret"`
	TokenTTLHours     int    `toml:"token_ttl_hours"`
	AdminEmail        string `toml:"admin_email"`
	AdminPasswordHash string `toml:"admin_password_hash"`
}

// TokenTTL возвращает время жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// SendGridConfig настройки уведомлений владельцу через SendGrid
// Если APIKey или OwnerEmail пустые - уведомления отключены
type SendGridConfig struct {
	APIKey     string `toml:"api_key"`
	FromEmail  string `toml:"from_email"`
	FromName   string `toml:"from_name"`
	OwnerEmail string `toml:"owner_email"`
}

// Enabled сообщает, настроена ли отправка уведомлений
func (s SendGridConfig) Enabled() bool {
	return s.APIKey != "" && s.OwnerEmail != ""
}

// CORSConfig настройки CORS для браузерного фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// BusinessConfig бизнес-правила расписания барбершопа
// Все политики генерации слотов заданы здесь явно, а не зашиты в код:
// таймзона заведения, шаг сетки слотов и дефолтное окно работы,
// используемое для дней недели без настроенных окон
type BusinessConfig struct {
	Timezone         string `toml:"timezone"`
	SlotStepMinutes  int    `toml:"slot_step_minutes"`
	FallbackStartMin int    `toml:"fallback_start_min"`
	FallbackEndMin   int    `toml:"fallback_end_min"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
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
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "barber-booking-service"
	}
	if cfg.Business.Timezone == "" {
		cfg.Business.Timezone = "America/Toronto"
	}
	if cfg.Business.SlotStepMinutes == 0 {
		cfg.Business.SlotStepMinutes = 15
	}
	if cfg.Business.FallbackStartMin == 0 && cfg.Business.FallbackEndMin == 0 {
		cfg.Business.FallbackStartMin = 600 // 10:00
		cfg.Business.FallbackEndMin = 1140  // 19:00
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if cfg.Business.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: business.slot_step_minutes must be positive")
	}
	if cfg.Business.FallbackEndMin <= cfg.Business.FallbackStartMin {
		return fmt.Errorf("config: business fallback window end must be after start")
	}
	if _, err := time.LoadLocation(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("config: invalid business.timezone %q: %w", cfg.Business.Timezone, err)
	}
	return nil
}
