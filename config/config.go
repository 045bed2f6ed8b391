package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa */

// Supported values of DB_DRIVER
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverTurso    = "turso"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	DBDriver string `mapstructure:"DB_DRIVER"`

	SQLitePath string `mapstructure:"SQLITE_PATH"`

	DBName           string `mapstructure:"DBNAME"`
	TursoDatabaseURL string `mapstructure:"TURSO_DATABASE_URL"`
	TursoAuthToken   string `mapstructure:"TURSO_AUTH_TOKEN"`

	PostgresHost               string `mapstructure:"POSTGRES_HOST"`
	PostgresPort               string `mapstructure:"POSTGRES_PORT"`
	PostgresUser               string `mapstructure:"POSTGRES_USER"`
	PostgresPassword           string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB                 string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode            string `mapstructure:"POSTGRES_SSLMODE"`
	PostgresMaxOpenConns       int    `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PostgresMaxIdleConns       int    `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`
	PostgresConnMaxLifeMinutes int    `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogJSON  bool   `mapstructure:"LOG_JSON"`

	// SeedFile, when set, is loaded at startup into an empty catalog only.
	// cmd/seed applies a file unconditionally
	SeedFile string `mapstructure:"SEED_FILE"`
}

// AutomaticEnv only overrides keys viper already knows, so every key gets a default
var defaults = map[string]any{
	"PORT":                           "8000",
	"DB_DRIVER":                      DriverSQLite,
	"SQLITE_PATH":                    "locallibrary.db",
	"DBNAME":                         "locallibrary.db",
	"TURSO_DATABASE_URL":             "",
	"TURSO_AUTH_TOKEN":               "",
	"POSTGRES_HOST":                  "localhost",
	"POSTGRES_PORT":                  "5432",
	"POSTGRES_USER":                  "postgres",
	"POSTGRES_PASSWORD":              "",
	"POSTGRES_DB":                    "locallibrary",
	"POSTGRES_SSLMODE":               "disable",
	"POSTGRES_MAX_OPEN_CONNS":        25,
	"POSTGRES_MAX_IDLE_CONNS":        5,
	"POSTGRES_CONN_MAX_LIFE_MINUTES": 5,
	"LOG_LEVEL":                      "info",
	"LOG_JSON":                       true,
	"SEED_FILE":                      "",
}

// GetConfig reads ./.env (TOML) when present; environment variables win over the file
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load is GetConfig reading .env from dir
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	err = v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that the selected driver has what it needs
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverTurso:
		if c.TursoDatabaseURL == "" || c.DBName == "" {
			return errors.New("TURSO_DATABASE_URL and DBNAME are required for the turso driver")
		}
	case DriverPostgres:
		return c.ValidatePostgres()
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want %s, %s or %s)", c.DBDriver, DriverPostgres, DriverSQLite, DriverTurso)
	}
	return nil
}

func (c *Config) ValidatePostgres() error {
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresUser == "" || c.PostgresDB == "" {
		return errors.New("POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER and POSTGRES_DB are required for the postgres driver")
	}
	return nil
}

// PostgresConnectionString builds a lib/pq URL; credentials are escaped
func (c *Config) PostgresConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     c.PostgresHost + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: url.Values{"sslmode": {c.PostgresSSLMode}}.Encode(),
	}
	return u.String()
}
