// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	Permify struct {
		Host   string `json:"host"`
		Tenant string `json:"tenant"`
	} `json:"permify"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Cache struct {
		Backend       string        `json:"backend"`
		TTL           time.Duration `json:"ttl"`
		Size          int           `json:"size"`
		RoleTTL       time.Duration `json:"role_ttl"`
		RedisAddr     string        `json:"redis_addr"`
		RedisPassword string        `json:"redis_password"`
	} `json:"cache"`
	Audit struct {
		QueueSize int `json:"queue_size"`
	} `json:"audit"`
	LogLevel string `json:"log_level"`
}

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

func defaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "goodworks")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SCHEMA", "public")

	v.SetDefault("PERMIFY_HOST", "")
	v.SetDefault("PERMIFY_TENANT", "t1")

	v.SetDefault("JWT_SECRET", "your-secret-key")
	v.SetDefault("JWT_EXPIRY", 24*time.Hour)

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)

	v.SetDefault("CACHE_BACKEND", CacheMemory)
	v.SetDefault("CACHE_TTL", 5*time.Minute)
	v.SetDefault("CACHE_SIZE", 4096)
	v.SetDefault("ROLE_CACHE_TTL", 30*time.Second)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")

	v.SetDefault("AUDIT_QUEUE_SIZE", 1024)
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads configuration from the environment and, when CONFIG_FILE is
// set, from that file. Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if p := os.Getenv("CONFIG_FILE"); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", p, err)
		}
	}

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetString("DB_PORT")
	cfg.Database.User = v.GetString("DB_USER")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Name = v.GetString("DB_NAME")
	cfg.Database.SSLMode = v.GetString("DB_SSLMODE")
	cfg.Database.SearchPath = v.GetString("DB_SCHEMA")

	// Permify relationship mirror, disabled when no host is set
	cfg.Permify.Host = v.GetString("PERMIFY_HOST")
	cfg.Permify.Tenant = v.GetString("PERMIFY_TENANT")

	// JWT configuration
	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.ExpiryPeriod = v.GetDuration("JWT_EXPIRY")

	// Server configuration
	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")

	// Query cache
	cfg.Cache.Backend = strings.ToLower(v.GetString("CACHE_BACKEND"))
	cfg.Cache.TTL = v.GetDuration("CACHE_TTL")
	cfg.Cache.Size = v.GetInt("CACHE_SIZE")
	cfg.Cache.RoleTTL = v.GetDuration("ROLE_CACHE_TTL")
	cfg.Cache.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.Cache.RedisPassword = v.GetString("REDIS_PASSWORD")

	cfg.Audit.QueueSize = v.GetInt("AUDIT_QUEUE_SIZE")
	cfg.LogLevel = v.GetString("LOG_LEVEL")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", CacheMemory, CacheRedis, c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 || c.Cache.RoleTTL <= 0 {
		return fmt.Errorf("CACHE_TTL and ROLE_CACHE_TTL must be positive")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
