package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// LogFile controls the optional rotated log file.
	LogFile LogFileConfig `mapstructure:",squash"`

	// Database holds the database configuration.
	Database DatabaseConfig `mapstructure:",squash"`

	// Redis holds the cache connection.
	Redis RedisConfig `mapstructure:",squash"`

	// Auth holds the bearer token verification settings.
	Auth AuthConfig `mapstructure:",squash"`

	// Session holds the visitor session cookie settings.
	Session SessionConfig `mapstructure:",squash"`
}

// LogFileConfig configures the rotated log file written next to stdout.
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"LOG_FILE_ENABLED" default:"false"`
	Path       string `mapstructure:"LOG_FILE_PATH" default:"logs/announcements.log"`
	MaxSize    int    `mapstructure:"LOG_FILE_MAX_SIZE" default:"100"` // megabytes
	MaxBackups int    `mapstructure:"LOG_FILE_MAX_BACKUPS" default:"7"`
	MaxAge     int    `mapstructure:"LOG_FILE_MAX_AGE" default:"30"` // days
	Compress   bool   `mapstructure:"LOG_FILE_COMPRESS" default:"false"`
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	// Driver selects the gorm dialector: "postgres" or "mysql".
	Driver string `mapstructure:"DB_DRIVER" default:"postgres"`
	// DSN is the driver specific connection string.
	DSN string `mapstructure:"DB_DSN" required:"true"`
	// MaxOpenConns caps the pool size.
	MaxOpenConns int `mapstructure:"DB_MAX_OPEN_CONNS" default:"20"`
	// MaxIdleConns caps idle pooled connections.
	MaxIdleConns int `mapstructure:"DB_MAX_IDLE_CONNS" default:"10"`
	// AutoMigrate creates or updates the schema on startup.
	AutoMigrate bool `mapstructure:"DB_AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds the Redis connection URL.
type RedisConfig struct {
	// URL has the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// AuthConfig holds the shared secret used to verify visitor tokens.
type AuthConfig struct {
	JWTSecret string `mapstructure:"JWT_SECRET" required:"true"`
}

// SessionConfig holds the session cookie settings.
type SessionConfig struct {
	CookieName string        `mapstructure:"SESSION_COOKIE_NAME" default:"announcements_session"`
	Expiration time.Duration `mapstructure:"SESSION_EXPIRATION" default:"24h"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its environment variable and registers its default.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
