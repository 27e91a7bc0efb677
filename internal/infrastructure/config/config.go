package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr                 string
	LogLevel             string
	LogFormat            string
	MemberTypesSeed      string
	CompositePolicy      string
	SubscriptionDepth    int
	MaxSubscriptionDepth int
	CORSOrigins          string
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:            getenv("SOCIAL_ADDR", ":8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
		MemberTypesSeed: os.Getenv("MEMBER_TYPES_SEED"),
		CompositePolicy: strings.ToLower(getenv("COMPOSITE_POLICY", "partial")),
		CORSOrigins:     getenv("CORS_ORIGINS", "*"),
	}

	var err error
	if cfg.SubscriptionDepth, err = getint("SUBSCRIPTION_DEPTH", 2); err != nil {
		return Config{}, err
	}
	if cfg.MaxSubscriptionDepth, err = getint("MAX_SUBSCRIPTION_DEPTH", 4); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address is empty")
	}
	switch c.CompositePolicy {
	case "partial", "strict":
	default:
		return fmt.Errorf("COMPOSITE_POLICY must be partial or strict, got %q", c.CompositePolicy)
	}
	if c.SubscriptionDepth < 0 {
		return fmt.Errorf("SUBSCRIPTION_DEPTH must not be negative, got %d", c.SubscriptionDepth)
	}
	if c.MaxSubscriptionDepth < 1 {
		return fmt.Errorf("MAX_SUBSCRIPTION_DEPTH must be at least 1, got %d", c.MaxSubscriptionDepth)
	}
	if c.SubscriptionDepth > c.MaxSubscriptionDepth {
		return fmt.Errorf("SUBSCRIPTION_DEPTH %d exceeds MAX_SUBSCRIPTION_DEPTH %d", c.SubscriptionDepth, c.MaxSubscriptionDepth)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
