package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret     = "a-very-secret-key-should-be-longer-and-random"
	defaultAdviceBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultAdviceModel   = "gemini-2.0-flash"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Remote backend; both must be set for remote mode.
	BackendURL string
	BackendKey string

	LocalStorePath string
	SeedDefaults   bool

	// Advice
	APIKey        string
	AdviceBaseURL string
	AdviceModel   string
	AdviceTimeout time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule limiter format, e.g. "10-M"
	AdviceRateLimit    string

	AMQPURL       string
	AMQPExchange  string
	PosthogAPIKey string
}

// RemoteEnabled reports whether both remote backend settings are present.
func (c *Config) RemoteEnabled() bool {
	return c.BackendURL != "" && c.BackendKey != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("BACKEND_URL", "")
	viper.SetDefault("BACKEND_KEY", "")
	viper.SetDefault("LOCAL_STORE_PATH", "./data/local_store.db")
	viper.SetDefault("SEED_DEFAULTS", false)
	viper.SetDefault("API_KEY", "")
	viper.SetDefault("ADVICE_BASE_URL", defaultAdviceBaseURL)
	viper.SetDefault("ADVICE_MODEL", defaultAdviceModel)
	viper.SetDefault("ADVICE_TIMEOUT", "30s")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "expense-tracker")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("ADVICE_RATE_LIMIT", "5-M")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "expense_tracker.changes")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		BackendURL:      strings.TrimSpace(viper.GetString("BACKEND_URL")),
		BackendKey:      strings.TrimSpace(viper.GetString("BACKEND_KEY")),
		LocalStorePath:  viper.GetString("LOCAL_STORE_PATH"),
		SeedDefaults:    viper.GetBool("SEED_DEFAULTS"),
		APIKey:          strings.TrimSpace(viper.GetString("API_KEY")),
		AdviceBaseURL:   viper.GetString("ADVICE_BASE_URL"),
		AdviceModel:     viper.GetString("ADVICE_MODEL"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		LoginRateLimit:  viper.GetString("LOGIN_RATE_LIMIT"),
		AdviceRateLimit: viper.GetString("ADVICE_RATE_LIMIT"),
		AMQPURL:         viper.GetString("AMQP_URL"),
		AMQPExchange:    viper.GetString("AMQP_EXCHANGE"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.AdviceTimeout = parseDuration("ADVICE_TIMEOUT", 30*time.Second)

	if cfg.BackendURL != "" && cfg.BackendKey == "" {
		log.Println("Warning: BACKEND_URL is set without BACKEND_KEY. Falling back to local storage.")
	}
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY not set. Financial advice will return a configuration notice.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// parseDuration reads key as a duration (e.g. "60m", "1h"), using fallback when invalid.
func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
