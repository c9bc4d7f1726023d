package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requirement is a named check against a loaded config.
type requirement struct {
	field string
	ok    func(*Config) bool
}

var (
	needJWTSecret = requirement{"JWT_SECRET", func(c *Config) bool { return c.JWTSecret != "" }}
	needDatabase  = requirement{"DATABASE_URL", func(c *Config) bool {
		return c.DBDriver == DriverSQLite || c.DatabaseURL != "" || (c.DBHost != "" && c.DBPassword != "")
	}}
	needRecipeKey = requirement{"SPOONACULAR_API_KEY", func(c *Config) bool { return c.SpoonacularAPIKey != "" }}
	needVisionKey = requirement{"GEMINI_API_KEY", func(c *Config) bool {
		return c.VisionProvider != VisionGemini || c.GeminiAPIKey != ""
	}}

	// Environment-specific requirements
	requirements = map[Environment][]requirement{
		Development: {needJWTSecret},
		Test:        {needJWTSecret},
		CI:          {needJWTSecret, needDatabase},
		Production:  {needJWTSecret, needDatabase, needRecipeKey, needVisionKey},
	}
)

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs []string

	for _, req := range requirements[cfg.Environment] {
		if !req.ok(cfg) {
			errs = append(errs, ValidationError{Field: req.field, Message: "is required"}.Error())
		}
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: "must be postgres or sqlite"}.Error())
	}
	switch cfg.VisionProvider {
	case VisionGemini, VisionOpenAI:
	default:
		errs = append(errs, ValidationError{Field: "VISION_PROVIDER", Message: "must be gemini or openai"}.Error())
	}
	if cfg.FavoritesConcurrency < 1 {
		errs = append(errs, ValidationError{Field: "FAVORITES_CONCURRENCY", Message: "must be at least 1"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
