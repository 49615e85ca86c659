package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	Storage  StorageConfig
	DB       DBConfig
	Redis    RedisConfig
	Dispatch DispatchConfig

	TraceStdout bool `envconfig:"TRACE_STDOUT" default:"false"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"file"`
	Dir    string `envconfig:"STORAGE_DIR" default:".reddy-infra"`
	Key    string `envconfig:"STORAGE_KEY" default:"reddy-infra-storage"`
}

type DBConfig struct {
	URL      string `envconfig:"DB_URL"`
	Host     string `envconfig:"DB_HOST"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type DispatchConfig struct {
	Timezone          string        `envconfig:"DISPATCH_TIMEZONE" default:"Asia/Kolkata"`
	CountdownInterval time.Duration `envconfig:"COUNTDOWN_INTERVAL" default:"60s"`
}

// LoadConfig reads an optional .env file and then the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.Key == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	if c.Dispatch.CountdownInterval <= 0 {
		return errors.New("COUNTDOWN_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.Dispatch.Timezone); err != nil {
		return fmt.Errorf("DISPATCH_TIMEZONE: %w", err)
	}

	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.Dir == "" {
			return errors.New("STORAGE_DIR is required for the file driver")
		}
	case DriverPostgres:
		if c.DB.URL == "" && c.DB.Host == "" {
			return errors.New("DB_URL or DB_HOST is required for the postgres driver")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// DSN returns DB_URL when set, otherwise a URL assembled from the DB_* parts.
func (d DBConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// Location returns the dispatch time zone. Validate has already checked it loads.
func (d DispatchConfig) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
