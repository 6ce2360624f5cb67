package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/dmehra/clinicdesk/internal/storage"
)

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Backend   string         `mapstructure:"backend"`
	Dir       string         `mapstructure:"dir"`
	Namespace string         `mapstructure:"namespace"`
	Redis     RedisConfig    `mapstructure:"redis"`
	Postgres  PostgresConfig `mapstructure:"postgres"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// StorageOptions maps the config onto the storage factory.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.Storage.Backend,
		Dir:         c.Storage.Dir,
		RedisURL:    c.Storage.Redis.URL,
		PostgresDSN: c.Storage.Postgres.DSN(),
		Namespace:   c.Storage.Namespace,
	}
}

// Load reads config.yaml (from . or ./config, optional) and then applies
// CLINICDESK_* environment overrides.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("clinicdesk", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env overrides: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.shutdown_timeout", "5s")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.dir", "data")
	viper.SetDefault("storage.namespace", "clinicdesk")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", false)
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("cors.allow_origins", []string{"*"})
}
