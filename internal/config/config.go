package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// RedisConfig holds the token revocation store settings. An empty Addr
// keeps revoked tokens in process memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var defaults = map[string]interface{}{
	"APP_PORT":                   8080,
	"APP_ENV":                    "development",
	"LOG_LEVEL":                  "info",
	"CORS_ALLOWED_ORIGINS":       "http://localhost:3000",
	"DB_HOST":                    "localhost",
	"DB_PORT":                    5432,
	"DB_USER":                    "postgres",
	"DB_PASSWORD":                "",
	"DB_NAME":                    "attendance",
	"DB_SSL_MODE":                "disable",
	"DB_MAX_CONNS":               25,
	"DB_MIN_CONNS":               5,
	"JWT_SECRET_KEY":             "",
	"JWT_ACCESS_EXPIRATION_TIME": "24h",
	"REDIS_ADDR":                 "",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
}

// Load reads .env (if present), an optional YAML file and the process
// environment, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	config := &Config{}

	config.Database = DatabaseConfig{
		Host:     v.GetString("DB_HOST"),
		Port:     v.GetInt("DB_PORT"),
		User:     v.GetString("DB_USER"),
		Password: v.GetString("DB_PASSWORD"),
		Name:     v.GetString("DB_NAME"),
		SSLMode:  v.GetString("DB_SSL_MODE"),
		MaxConns: v.GetInt32("DB_MAX_CONNS"),
		MinConns: v.GetInt32("DB_MIN_CONNS"),
	}

	config.App = AppConfig{
		Port:           v.GetInt("APP_PORT"),
		Env:            v.GetString("APP_ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	config.JWT = JWTConfig{
		Secret:           v.GetString("JWT_SECRET_KEY"),
		AccessExpiration: v.GetString("JWT_ACCESS_EXPIRATION_TIME"),
	}

	config.Redis = RedisConfig{
		Addr:     v.GetString("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("invalid APP_PORT: %d", c.App.Port)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS cannot be greater than DB_MAX_CONNS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string with credentials escaped.
func (c *Config) DatabaseURL() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
