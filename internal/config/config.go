package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps APP_ENV to the log level used across the application
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Application information
	AppName        string `json:"app_name"`
	AppDescription string `json:"app_description"`
	Version        string `json:"version"`
	Debug          bool   `json:"debug"`

	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     int    `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBURL      string `json:"db_url"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Fill the platos table with the sample catalog when it is empty
	SeedOnEmpty bool `json:"seed_on_empty"`

	// CORS allow-lists
	AllowedHosts   []string `json:"allowed_hosts"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`

	// Logging configuration
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{AppName: %s, Version: %s, Debug: %t, Host: %s, Port: %d, DBDriver: %s, DBHost: %s, DBPort: %d, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBURL: %s, DBPath: %s, AllowedHosts: %v, LogLevel: %s}",
		c.AppName, c.Version, c.Debug, c.Host, c.Port, c.DBDriver, c.DBHost, c.DBPort, c.DBName, c.DBUser,
		maskDatabaseURL(c.DBURL), c.DBPath, c.AllowedHosts, c.LogLevel)
}

// Summary is the sanitized view of Config exposed by the diagnostics endpoint
type Summary struct {
	AppName        string   `json:"app_name"`
	AppDescription string   `json:"app_description"`
	Version        string   `json:"version"`
	Debug          bool     `json:"debug"`
	Address        string   `json:"address"`
	DBDriver       string   `json:"db_driver"`
	DatabaseURL    string   `json:"database_url,omitempty"`
	DBPath         string   `json:"db_path,omitempty"`
	SeedOnEmpty    bool     `json:"seed_on_empty"`
	AllowedHosts   []string `json:"allowed_hosts"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`
	LogLevel       string   `json:"log_level"`
}

// Summary returns the configuration with every secret removed.
// Only the store in use is described: the masked URL for postgres, the file for sqlite.
func (c *Config) Summary() Summary {
	s := Summary{
		AppName:        c.AppName,
		AppDescription: c.AppDescription,
		Version:        c.Version,
		Debug:          c.Debug,
		Address:        c.Address(),
		DBDriver:       c.DBDriver,
		SeedOnEmpty:    c.SeedOnEmpty,
		AllowedHosts:   c.AllowedHosts,
		AllowedMethods: c.AllowedMethods,
		AllowedHeaders: c.AllowedHeaders,
		LogLevel:       c.LogLevel,
	}
	if c.DBDriver == "sqlite" {
		s.DBPath = c.DBPath
	} else {
		s.DatabaseURL = c.MaskedDatabaseURL()
	}
	return s
}

// Level returns the configured log level, falling back to info when LogLevel is unset
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Address returns the host:port pair the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseURL returns the postgres connection URL.
// DB_URL wins when set; otherwise the URL is assembled from the individual
// settings with user and password percent-encoded as URL userinfo.
func (c *Config) DatabaseURL() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	u := &url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}

// MaskedDatabaseURL is DatabaseURL with the password replaced, safe for logs and responses
func (c *Config) MaskedDatabaseURL() string {
	return maskDatabaseURL(c.DatabaseURL())
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if a numeric variable cannot be parsed or DB_URL / DB_DRIVER / LOG_LEVEL are invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("SERVER_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	dbPort, err := strconv.Atoi(GetEnvWithDefault("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DB_URL", "")
	if dbURL != "" {
		// validate URL with net/url
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DB_URL format: %w", err)
		}
	}

	logLevel := GetEnvWithDefault("LOG_LEVEL", LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")).String())
	if _, err := logrus.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "postgres"))
	switch driver {
	case "postgres", "postgresql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: postgres, sqlite)", driver)
	}

	config := &Config{
		AppName:        GetEnvWithDefault("APP_NAME", "Restaurante API"),
		AppDescription: GetEnvWithDefault("APP_DESCRIPTION", "API para gestionar platos, clientes y pedidos"),
		Version:        GetEnvWithDefault("APP_VERSION", "0.1.0"),
		Debug:          GetEnvAsType("DEBUG", true),
		Port:           port,
		Host:           GetEnvWithDefault("SERVER_HOST", "0.0.0.0"),
		DBDriver:       driver,
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         dbPort,
		DBName:         GetEnvWithDefault("DB_NAME", "restaurante"),
		DBUser:         GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBURL:          dbURL,
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:         GetEnvWithDefault("DB_PATH", "restaurante.sqlite"),
		SeedOnEmpty:    GetEnvAsType("SEED_ON_EMPTY", false),
		AllowedHosts:   GetEnvAsList("ALLOWED_HOSTS", []string{"*"}),
		AllowedMethods: GetEnvAsList("ALLOWED_METHODS", []string{"*"}),
		AllowedHeaders: GetEnvAsList("ALLOWED_HEADERS", []string{"*"}),
		LogLevel:       logLevel,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Warnf("Environment variable %s is not an int, using default", key)
			return defaultValue
		}
		return any(intValue).(T)
	case float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Warnf("Environment variable %s is not a float, using default", key)
			return defaultValue
		}
		return any(floatValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Warnf("Environment variable %s is not a bool, using default", key)
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}

// GetEnvAsList splits a comma-separated environment variable, dropping empty entries
func GetEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
