package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment
	LogLevel    string

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration. DatabaseURL wins over the discrete fields.
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTExpiry time.Duration

	// Recipe API
	SpoonacularAPIKey  string
	SpoonacularBaseURL string
	RecipeAPITimeout   time.Duration
	RecipeAPIRPS       float64

	// Vision model
	VisionProvider string
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIBaseURL  string
	OpenAIAPIKey   string
	OpenAIModel    string
	VisionTimeout  time.Duration
	ImageMaxDim    uint

	// Limits
	FavoritesConcurrency int
	ImageRateLimit       int
	ImageRateWindow      time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	VisionGemini = "gemini"
	VisionOpenAI = "openai"
)

// LoadConfig reads .env (when present), then environment variables, then
// secret files, and validates the result for the current environment.
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	env := GetEnvironment()
	cfg := &Config{Environment: env}

	switch env {
	case CI, Development, Test, Production:
		load(cfg, env)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func load(cfg *Config, env Environment) {
	local := env.Local()

	cfg.LogLevel = lookup("LOG_LEVEL", "", "")
	cfg.ServerHost = lookup("SERVER_HOST", "server_host", "0.0.0.0")
	cfg.ServerPort = lookup("SERVER_PORT", "server_port", "8080")
	cfg.CORSOrigins = splitList(lookup("CORS_ALLOWED_ORIGINS", "", "*"))

	defaultDriver := DriverPostgres
	if local {
		defaultDriver = DriverSQLite
	}
	cfg.DBDriver = lookup("DB_DRIVER", "", defaultDriver)
	cfg.DatabaseURL = lookup("DATABASE_URL", "database_url", "")
	cfg.DBHost = lookup("DB_HOST", "db_host", "localhost")
	cfg.DBPort = lookup("DB_PORT", "db_port", "5432")
	cfg.DBUser = lookup("DB_USER", "db_user", "postgres")
	cfg.DBPassword = lookup("DB_PASSWORD", "db_password", "")
	cfg.DBName = lookup("DB_NAME", "db_name", "coolpotato")
	cfg.DBSSLMode = lookup("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.SQLitePath = lookup("SQLITE_PATH", "", "coolpotato.db")

	cfg.RedisHost = lookup("REDIS_HOST", "redis_host", "")
	cfg.RedisPort = lookup("REDIS_PORT", "redis_port", "6379")
	cfg.RedisPassword = lookup("REDIS_PASSWORD", "redis_password", "")
	cfg.RedisDB = lookupInt("REDIS_DB", 0)
	cfg.RedisURL = lookup("REDIS_URL", "redis_url", "")

	defaultSecret := ""
	if local {
		defaultSecret = "development-secret"
	}
	cfg.JWTSecret = lookup("JWT_SECRET", "jwt_secret", defaultSecret)
	cfg.JWTExpiry = lookupDuration("JWT_EXPIRY", time.Hour)

	cfg.SpoonacularAPIKey = lookup("SPOONACULAR_API_KEY", "spoonacular_api_key", "")
	cfg.SpoonacularBaseURL = lookup("SPOONACULAR_BASE_URL", "", "https://api.spoonacular.com")
	cfg.RecipeAPITimeout = lookupDuration("RECIPE_API_TIMEOUT", 8*time.Second)
	cfg.RecipeAPIRPS = lookupFloat("RECIPE_API_RPS", 5)

	cfg.VisionProvider = strings.ToLower(lookup("VISION_PROVIDER", "", VisionGemini))
	cfg.GeminiAPIKey = lookup("GEMINI_API_KEY", "gemini_api_key", "")
	cfg.GeminiModel = lookup("GEMINI_MODEL", "", "gemini-1.5-flash")
	cfg.OpenAIBaseURL = lookup("OPENAI_BASE_URL", "", "https://api.openai.com/v1")
	cfg.OpenAIAPIKey = lookup("OPENAI_API_KEY", "openai_api_key", "")
	cfg.OpenAIModel = lookup("OPENAI_MODEL", "", "gpt-4o-mini")
	cfg.VisionTimeout = lookupDuration("VISION_TIMEOUT", 20*time.Second)
	cfg.ImageMaxDim = uint(lookupInt("IMAGE_MAX_DIM", 1024))

	cfg.FavoritesConcurrency = lookupInt("FAVORITES_CONCURRENCY", 4)
	cfg.ImageRateLimit = lookupInt("IMAGE_RATE_LIMIT", 10)
	cfg.ImageRateWindow = lookupDuration("IMAGE_RATE_WINDOW", time.Minute)
}

// PostgresDSN returns the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a redis connection is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// lookup returns the environment variable, then the secret file, then def.
func lookup(envKey, secret, def string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if secret != "" {
		if v := readSecret(secret); v != "" {
			return v
		}
	}
	return def
}

func lookupInt(envKey string, def int) int {
	v, err := strconv.Atoi(lookup(envKey, "", ""))
	if err != nil {
		return def
	}
	return v
}

func lookupFloat(envKey string, def float64) float64 {
	v, err := strconv.ParseFloat(lookup(envKey, "", ""), 64)
	if err != nil {
		return def
	}
	return v
}

func lookupDuration(envKey string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(lookup(envKey, "", ""))
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
