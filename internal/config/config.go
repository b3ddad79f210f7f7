package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Identity  IdentityConfig  `toml:"identity"`
	Session   SessionConfig   `toml:"session"`
	Redis     RedisConfig     `toml:"redis"`
	CORS      CORSConfig      `toml:"cors"`
	Inventory InventoryConfig `toml:"inventory"`
	Occupancy OccupancyConfig `toml:"occupancy"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IdentityConfig внешний провайдер аутентификации
type IdentityConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// SessionConfig параметры сессионных токенов
type SessionConfig struct {
	Secret   string `toml:"secret"`
	TTLHours int    `toml:"ttl_hours"`
	Issuer   string `toml:"issuer"`
}

// TTL время жизни токена
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// RedisConfig хранилище отозванных токенов. При Enabled=false используется память процесса
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// InventoryConfig фиксированный набор номеров
type InventoryConfig struct {
	Rooms      []string `toml:"rooms"`
	Apartments []string `toml:"apartments"`
}

// OccupancyConfig правило выезда: после CutoffHour по времени Timezone
// выезжающий гость больше не занимает номер
type OccupancyConfig struct {
	CutoffHour int    `toml:"cutoff_hour"`
	Timezone   string `toml:"timezone"`
}

// Location загружает часовой пояс
func (o OccupancyConfig) Location() (*time.Location, error) {
	return time.LoadLocation(o.Timezone)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// 0 допустимое значение часа, поэтому значение по умолчанию ставится только при отсутствии ключа
	if !md.IsDefined("occupancy", "cutoff_hour") {
		cfg.Occupancy.CutoffHour = DefaultCutoffHour
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "frontdesk-service"
	}

	if c.Identity.Timeout == 0 {
		c.Identity.Timeout = 10
	}

	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 12
	}
	if c.Session.Issuer == "" {
		c.Session.Issuer = "frontdesk-service"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if len(c.Inventory.Rooms) == 0 {
		c.Inventory.Rooms = append([]string(nil), DefaultRooms...)
	}
	if len(c.Inventory.Apartments) == 0 {
		c.Inventory.Apartments = append([]string(nil), DefaultApartments...)
	}

	if c.Occupancy.Timezone == "" {
		c.Occupancy.Timezone = DefaultTimezone
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("%w: session.secret is required", ErrInvalidConfig)
	}

	if c.Occupancy.CutoffHour < 0 || c.Occupancy.CutoffHour > 23 {
		return fmt.Errorf("%w: occupancy.cutoff_hour must be in 0..23, got %d", ErrInvalidConfig, c.Occupancy.CutoffHour)
	}
	if _, err := c.Occupancy.Location(); err != nil {
		return fmt.Errorf("%w: occupancy.timezone: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]string)
	for _, u := range c.Inventory.Rooms {
		if _, dup := seen[u]; dup {
			return fmt.Errorf("%w: inventory unit %q listed twice", ErrInvalidConfig, u)
		}
		seen[u] = "rooms"
	}
	for _, u := range c.Inventory.Apartments {
		if _, dup := seen[u]; dup {
			return fmt.Errorf("%w: inventory unit %q listed twice", ErrInvalidConfig, u)
		}
		seen[u] = "apartments"
	}

	return nil
}
