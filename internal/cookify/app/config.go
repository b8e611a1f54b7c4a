package app

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/cookify/pkg/cryptox"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
	"github.com/aussiebroadwan/cookify/pkg/mealdb"
	"github.com/spf13/viper"
)

// Supported DATABASE_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite file (default: cookify.db)
	DatabaseURL    string // Postgres DSN, required for the postgres driver

	JWTSecret          string        // HS256 signing secret, required outside dev
	JWTExpires         time.Duration // Access token lifetime (JWT_EXPIRES_MIN, default: 30)
	PasswordHashScheme string        // bcrypt or argon2id (default: bcrypt)
	BcryptCost         int           // bcrypt cost for new hashes (default: 10)

	CORSOrigins       []string // CORS_ORIGIN plus CORS_ORIGINS
	CORSOriginPattern string   // Regular expression for extra allowed origins

	MealDBBaseURL   string        // TheMealDB endpoint
	UpstreamTimeout time.Duration // Timeout for TheMealDB calls (default: 10s)
	GeminiAPIKey    string        // Optional: AI recipes are disabled without it
	GeminiModel     string        // Gemini model name
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", "10s")

	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_FILE", "cookify.db")
	v.SetDefault("DATABASE_URL", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRES_MIN", 30)
	v.SetDefault("PASSWORD_HASH_SCHEME", cryptox.SchemeBcrypt)
	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("CORS_ORIGIN_PATTERN", `^https://[a-zA-Z0-9\-]+\.(ngrok-free\.app|ngrok\.io|netlify\.app)$`)

	v.SetDefault("MEALDB_BASE_URL", mealdb.DefaultBaseURL)
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash-lite")
}

// LoadConfig reads the environment, falling back to an optional .env file in
// the working directory and then to defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read .env: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	origins := httpx.SplitOrigins(v.GetString("CORS_ORIGIN") + "," + v.GetString("CORS_ORIGINS"))

	expires := v.GetInt("JWT_EXPIRES_MIN")
	if expires <= 0 {
		expires = 30
	}

	return Config{
		Env:                 strings.ToLower(v.GetString("ENV")),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		Port:                v.GetInt("PORT"),
		ShutdownGracePeriod: v.GetDuration("SHUTDOWN_GRACE_PERIOD"),

		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseFile:   v.GetString("DATABASE_FILE"),
		DatabaseURL:    v.GetString("DATABASE_URL"),

		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTExpires:         time.Duration(expires) * time.Minute,
		PasswordHashScheme: v.GetString("PASSWORD_HASH_SCHEME"),
		BcryptCost:         v.GetInt("BCRYPT_COST"),

		CORSOrigins:       origins,
		CORSOriginPattern: v.GetString("CORS_ORIGIN_PATTERN"),

		MealDBBaseURL:   v.GetString("MEALDB_BASE_URL"),
		UpstreamTimeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
	}
}

// IsDev reports whether the service runs in the dev environment.
func (c Config) IsDev() bool { return c.Env == "" || c.Env == "dev" }

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" && !c.IsDev() {
		errs = append(errs, errors.New("JWT_SECRET is required outside dev"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.CORSOriginPattern != "" {
		if _, err := regexp.Compile(c.CORSOriginPattern); err != nil {
			errs = append(errs, fmt.Errorf("CORS_ORIGIN_PATTERN: %w", err))
		}
	}

	return errors.Join(errs...)
}

// CORS builds the middleware config. Validate has already checked the pattern.
func (c Config) CORS() httpx.CORSConfig {
	cfg := httpx.CORSConfig{AllowedOrigins: c.CORSOrigins}
	if c.CORSOriginPattern != "" {
		cfg.OriginPattern = regexp.MustCompile(c.CORSOriginPattern)
	}
	return cfg
}
