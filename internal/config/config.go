package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zarechye/booking-engine/internal/domain"
)

// ErrInvalidConfig конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	CRM     CRMConfig     `toml:"crm"`
	Rooms   RoomsConfig   `toml:"rooms"`
}

// ServerConfig параметры HTTP сервера. Таймауты задаются в секундах.
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	StaticDir       string   `toml:"static_dir"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// LogsConfig параметры логирования.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры prometheus метрик.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CRMConfig параметры подключения к CRM. Адрес REST API хранится в
// зашифрованном виде (AES-CBC, base64); ключ и вектор инициализации
// поступают только из переменных окружения и в файл не попадают.
type CRMConfig struct {
	EncryptedURL  string `toml:"encrypted_url"`
	Timeout       int    `toml:"timeout"`
	StayFromField string `toml:"stay_from_field"`
	StayToField   string `toml:"stay_to_field"`

	Secrets CRMSecrets `toml:"-"`
}

// CRMSecrets секреты расшифровки адреса CRM, читаются из окружения при
// загрузке конфигурации.
type CRMSecrets struct {
	Key string `envconfig:"CRM_SECRET_KEY"`
	IV  string `envconfig:"CRM_SECRET_IV"`
}

// RoomsConfig реестр категорий номерного фонда.
type RoomsConfig struct {
	Types []RoomTypeConfig `toml:"types"`
}

// RoomTypeConfig одна категория номерного фонда: код пользовательского поля
// сделки в CRM и тарифные параметры.
type RoomTypeConfig struct {
	Code                string  `toml:"code"`
	Label               string  `toml:"label"`
	BasePrice           float64 `toml:"base_price"`
	OccupancyMultiplier float64 `toml:"occupancy_multiplier"`
}

// Load читает конфигурацию из toml файла, накладывает секреты из переменных
// окружения и валидирует результат.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := envconfig.Process("", &cfg.CRM.Secrets); err != nil {
		return nil, fmt.Errorf("config: read CRM secrets from environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-engine"
	}
	if c.CRM.Timeout == 0 {
		c.CRM.Timeout = 30
	}
}

// Validate проверяет обязательные поля конфигурации.
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in range 1..65535", ErrInvalidConfig)
	}
	if c.CRM.EncryptedURL == "" {
		return fmt.Errorf("%w: crm.encrypted_url is required", ErrInvalidConfig)
	}
	if c.CRM.StayFromField == "" || c.CRM.StayToField == "" {
		return fmt.Errorf("%w: crm.stay_from_field and crm.stay_to_field are required", ErrInvalidConfig)
	}
	if c.CRM.Secrets.Key == "" || c.CRM.Secrets.IV == "" {
		return fmt.Errorf("%w: CRM_SECRET_KEY and CRM_SECRET_IV environment variables are required", ErrInvalidConfig)
	}
	if len(c.Rooms.Types) == 0 {
		return fmt.Errorf("%w: rooms.types must not be empty", ErrInvalidConfig)
	}
	return nil
}

// RoomTypes преобразует секцию rooms в доменные категории, сохраняя порядок
// из файла конфигурации.
func (c *Config) RoomTypes() []domain.RoomType {
	types := make([]domain.RoomType, 0, len(c.Rooms.Types))
	for _, t := range c.Rooms.Types {
		types = append(types, domain.RoomType{
			Code:                t.Code,
			Label:               t.Label,
			BasePrice:           t.BasePrice,
			OccupancyMultiplier: t.OccupancyMultiplier,
		})
	}
	return types
}
