package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported credential store backends.
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendMongoDB  = "mongodb"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Credential store
	StoreBackend    string
	DatabaseURL     string
	MongoDBURI      string
	MongoDBDatabase string
	RedisURL        string

	// Tokens
	AccessTokenSecret          string
	AccessTokenExpiryDuration  time.Duration
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration
	JWTIssuer                  string

	// Cookies
	CookieSecure bool
	CookieDomain string

	CORSOrigins    []string
	LoginRateLimit string
	BcryptCost     int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		StoreBackend:    strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		MongoDBURI:      v.GetString("MONGODB_URI"),
		MongoDBDatabase: v.GetString("MONGODB_DATABASE"),
		RedisURL:        v.GetString("REDIS_URL"),

		AccessTokenSecret:  v.GetString("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: v.GetString("REFRESH_TOKEN_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),

		CookieSecure:   v.GetBool("COOKIE_SECURE"),
		CookieDomain:   v.GetString("COOKIE_DOMAIN"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		BcryptCost:     v.GetInt("BCRYPT_COST"),
	}

	var err error
	if cfg.AccessTokenExpiryDuration, err = parseDuration(v, "ACCESS_TOKEN_EXPIRY", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenExpiryDuration, err = parseDuration(v, "REFRESH_TOKEN_EXPIRY", 240*time.Hour); err != nil {
		return nil, err
	}

	if cfg.AccessTokenSecret, err = secretOrRandom(cfg.AccessTokenSecret, "ACCESS_TOKEN_SECRET", cfg.IsProduction); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenSecret, err = secretOrRandom(cfg.RefreshTokenSecret, "REFRESH_TOKEN_SECRET", cfg.IsProduction); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		log.Printf("Warning: Invalid value for BCRYPT_COST (%d). Defaulting to %d.\n", cfg.BcryptCost, bcrypt.DefaultCost)
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that cannot be expressed as defaults.
func (c *Config) Validate() error {
	var errs []error
	if c.AccessTokenSecret == c.RefreshTokenSecret {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ"))
	}
	if c.AccessTokenExpiryDuration <= 0 || c.RefreshTokenExpiryDuration <= 0 {
		errs = append(errs, errors.New("token expiry durations must be positive"))
	} else if c.AccessTokenExpiryDuration >= c.RefreshTokenExpiryDuration {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_EXPIRY (%s) must be shorter than REFRESH_TOKEN_EXPIRY (%s)",
			c.AccessTokenExpiryDuration, c.RefreshTokenExpiryDuration))
	}
	switch c.StoreBackend {
	case StoreBackendMemory:
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("PGSQL_URL is required when STORE_BACKEND=postgres"))
		}
	case StoreBackendMongoDB:
		if c.MongoDBURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required when STORE_BACKEND=mongodb"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_BACKEND", StoreBackendMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "videotube")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ACCESS_TOKEN_EXPIRY", "15m")
	v.SetDefault("REFRESH_TOKEN_EXPIRY", "240h")
	v.SetDefault("JWT_ISSUER", "videotube-backend")
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
}

// secretOrRandom returns secret, or a random per-process secret outside production.
func secretOrRandom(secret, key string, isProduction bool) (string, error) {
	if secret != "" {
		return secret, nil
	}
	if isProduction {
		return "", fmt.Errorf("%s must be set in production", key)
	}
	generated, err := utils.RandomSecret(utils.DevSecretBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", key, err)
	}
	log.Printf("Warning: %s is not set, using a random secret. Tokens will not survive a restart.\n", key)
	return generated, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
