// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
)

// Config represents the application configuration.
// Every variable is required; loading fails closed if any is unset, so the
// process can never start with a missing or defaulted signing secret.
type Config struct {
	APIName          string `env:"GUIDE_API_APP_NAME"`
	APIVersion       string `env:"GUIDE_API_APP_VERSION"`
	ServerPort       string `env:"GUIDE_API_SERVER_PORT"`
	ServerEnv        string `env:"GUIDE_API_SERVER_ENV"`
	ServerLogLevel   string `env:"GUIDE_API_SERVER_LOG_LEVEL"`
	JWTSecret        string `env:"GUIDE_API_JWT_SECRET"`
	PostgresDsn      string `env:"GUIDE_API_PG_DSN"`
	PostgresLogLevel string `env:"GUIDE_API_PG_LOG_LEVEL"`
	RedisHost        string `env:"GUIDE_API_REDIS_HOST"`
	RedisPort        string `env:"GUIDE_API_REDIS_PORT"`
	RedisPassword    string `env:"GUIDE_API_REDIS_PASSWORD"`
}

var (
	instance *Config
	once     sync.Once
	err      error
)

// Get returns the application configuration
func Get() (*Config, error) {
	once.Do(func() {
		instance, err = loadConfig()
	})
	return instance, err
}

// IsProduction reports whether the server runs in the production environment
func (c *Config) IsProduction() bool {
	return c.ServerEnv == "production"
}

// loadConfig loads configuration from environment variables
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() error {
	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(c).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" {
			return fmt.Errorf("missing env tag for field %s", field.Name)
		}

		value := os.Getenv(envTag)
		if value == "" {
			return fmt.Errorf("env variable %s is required but not set", envTag)
		}

		v.Field(i).SetString(value)
	}

	return nil
}

// String returns the configuration as a string, masking sensitive values
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n--------------------------------------\n")
	sb.WriteString("Configuration:\n")
	sb.WriteString("--------------------------------------\n")

	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(*c)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i).String()
		value = maskSensitiveField(field.Name, value)
		sb.WriteString(fmt.Sprintf("  %s:  %s\n", field.Name, value))
	}

	sb.WriteString("--------------------------------------\n")

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitiveFields := []string{"secret", "dsn", "password", "token"}

	fieldNameLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldNameLower, sensitive) {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	if len(value) <= 3 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
