package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageTypePostgres = "postgres"
	StorageTypeMemory   = "memory"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Storage       StorageConfig
	Logging       LoggingConfig
	Notification  NotificationConfig
	Matching      MatchingConfig
	ReferenceData ReferenceDataConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret string
	Issuer       string
}

type StorageConfig struct {
	Type string
	// SeedPath is a YAML/JSON users file loaded into memory storage.
	SeedPath string
}

type LoggingConfig struct {
	Level string
}

type NotificationConfig struct {
	QueueKey string
	Workers  int
	Buffer   int
	Timeout  time.Duration
}

// MatchingConfig holds the request policies that are product decisions
// rather than fixed rules.
type MatchingConfig struct {
	AllowDuplicatePending     bool
	AllowRerequestAfterReject bool
}

type ReferenceDataConfig struct {
	// Path to a YAML/JSON taxonomy file. Empty means the built-in taxonomy.
	Path string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()
	setDefaults(v)

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = v.ReadInConfig()

	config := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetInt("SERVER_PORT"),
			Env:          v.GetString("ENV"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			Issuer:       v.GetString("JWT_ISSUER"),
		},
		Storage: StorageConfig{
			Type:     strings.ToLower(v.GetString("STORAGE_TYPE")),
			SeedPath: v.GetString("USERS_SEED_PATH"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Notification: NotificationConfig{
			QueueKey: v.GetString("NOTIFICATION_QUEUE_KEY"),
			Workers:  v.GetInt("NOTIFICATION_WORKERS"),
			Buffer:   v.GetInt("NOTIFICATION_BUFFER"),
			Timeout:  v.GetDuration("NOTIFICATION_TIMEOUT"),
		},
		Matching: MatchingConfig{
			AllowDuplicatePending:     v.GetBool("MATCH_ALLOW_DUPLICATE_PENDING"),
			AllowRerequestAfterReject: v.GetBool("MATCH_ALLOW_REREQUEST_AFTER_REJECT"),
		},
		ReferenceData: ReferenceDataConfig{
			Path: v.GetString("REFERENCE_DATA_PATH"),
		},
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ENV", "local")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("STORAGE_TYPE", StorageTypePostgres)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("NOTIFICATION_QUEUE_KEY", "notifications:mentor_requests")
	v.SetDefault("NOTIFICATION_WORKERS", 2)
	v.SetDefault("NOTIFICATION_BUFFER", 64)
	v.SetDefault("NOTIFICATION_TIMEOUT", 5*time.Second)
	v.SetDefault("MATCH_ALLOW_DUPLICATE_PENDING", true)
	v.SetDefault("MATCH_ALLOW_REREQUEST_AFTER_REJECT", true)
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageTypePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
	case StorageTypeMemory:
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.Notification.Timeout <= 0 {
		return fmt.Errorf("notification timeout must be positive")
	}
	if c.Notification.Workers <= 0 {
		return fmt.Errorf("notification workers must be positive")
	}
	if c.Redis.Enabled && c.Notification.QueueKey == "" {
		return fmt.Errorf("notification queue key is required when redis is enabled")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
