package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultBaseCurrency   = "AED"
	defaultTaxThreshold   = "375000"
	defaultTaxRate        = "0.09"
	defaultLockExpiry     = 10 * time.Second
	defaultRateLimit      = "100-M"
	defaultMigrationsPath = "file://migrations"
	defaultAllowedOrigins = "http://localhost:3000"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Posting engine
	BaseCurrency          string
	CorporateTaxThreshold decimal.Decimal
	CorporateTaxRate      decimal.Decimal

	// Optional Redis for the per-reference posting lock; empty disables it
	RedisURL          string
	PostingLockExpiry time.Duration

	RateLimit          string
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("BASE_CURRENCY", defaultBaseCurrency)
	viper.SetDefault("CORPORATE_TAX_THRESHOLD", defaultTaxThreshold)
	viper.SetDefault("CORPORATE_TAX_RATE", defaultTaxRate)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("POSTING_LOCK_EXPIRY", defaultLockExpiry.String())
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.BaseCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("BASE_CURRENCY")))
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to %s.\n", cfg.BaseCurrency, defaultBaseCurrency)
		cfg.BaseCurrency = defaultBaseCurrency
	}

	cfg.CorporateTaxThreshold = decimalSetting("CORPORATE_TAX_THRESHOLD", defaultTaxThreshold)
	cfg.CorporateTaxRate = decimalSetting("CORPORATE_TAX_RATE", defaultTaxRate)

	cfg.RedisURL = viper.GetString("REDIS_URL")

	lockExpiryStr := viper.GetString("POSTING_LOCK_EXPIRY")
	lockExpiry, err := time.ParseDuration(lockExpiryStr)
	if err != nil || lockExpiry <= 0 {
		lockExpiry = defaultLockExpiry
		log.Printf("Warning: Invalid value for POSTING_LOCK_EXPIRY ('%s'). Defaulting to %s.\n", lockExpiryStr, lockExpiry.String())
	}
	cfg.PostingLockExpiry = lockExpiry

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	return cfg, nil
}

func decimalSetting(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return decimal.RequireFromString(fallback)
	}
	return value
}
