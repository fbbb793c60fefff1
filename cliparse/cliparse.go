package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

var (
	ErrInvalidPort         = errors.New("invalid port")
	ErrUnknownDatabaseType = errors.New("database type must be postgres or sqlite")
	ErrMissingPassword     = errors.New("PASSWORD required (or use -d / DATABASE_URL)")
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DBHost       string
	DBPort       int
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string
	StaticDir    string
}

// ParseFlags loads .env, parses flags and fills the gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// Existing environment variables win over .env entries
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	fs := flag.NewFlagSet("permalist", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (overrides the db-* settings)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")

	fs.StringVar(&cfg.DBHost, "db-host", "", "Database host")
	fs.IntVar(&cfg.DBPort, "db-port", 0, "Database port")
	fs.StringVar(&cfg.DBName, "db-name", "", "Database name")
	fs.StringVar(&cfg.DBUser, "db-user", "", "Database user")
	fs.StringVar(&cfg.DBSSLMode, "db-sslmode", "", "Postgres sslmode")

	fs.StringVar(&cfg.StaticDir, "static", "", "Static asset directory")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.Port, err = intSetting(cfg.Port, "PORT", 3000); err != nil {
		return Config{}, err
	}
	if cfg.DBPort, err = intSetting(cfg.DBPort, "DB_PORT", 5432); err != nil {
		return Config{}, err
	}

	cfg.DatabaseType = stringSetting(cfg.DatabaseType, "DATABASE_TYPE", DatabasePostgres)
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownDatabaseType, cfg.DatabaseType)
	}

	cfg.DBHost = stringSetting(cfg.DBHost, "DB_HOST", "localhost")
	cfg.DBName = stringSetting(cfg.DBName, "DB_NAME", "permalist")
	cfg.DBUser = stringSetting(cfg.DBUser, "DB_USER", "postgres")
	cfg.DBSSLMode = stringSetting(cfg.DBSSLMode, "DB_SSLMODE", "disable")
	cfg.StaticDir = stringSetting(cfg.StaticDir, "STATIC_DIR", "public")

	// Secret - env only
	cfg.DBPassword = os.Getenv("PASSWORD")

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case DatabaseSQLite:
			cfg.DatabaseURL = "permalist.db"
		default:
			if cfg.DBPassword == "" {
				return Config{}, ErrMissingPassword
			}
			cfg.DatabaseURL = cfg.PostgresURL()
		}
	}

	return cfg, nil
}

// PostgresURL builds a connection URL from the individual db settings
func (c Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func stringSetting(flagValue, envKey, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func intSetting(flagValue int, envKey string, fallback int) (int, error) {
	if flagValue != 0 {
		if flagValue < 0 || flagValue > 65535 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidPort, flagValue)
		}
		return flagValue, nil
	}
	v := os.Getenv(envKey)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > 65535 {
		return 0, fmt.Errorf("%w: invalid %s env variable %q", ErrInvalidPort, envKey, v)
	}
	return n, nil
}
