package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	RedisAddress    string
	PublicBaseURL   string
	CoinbaseAPIKey  string
	CoinbaseAPIURL  string
	WebhookSecret   string
	SessionSecret   string
	SessionTTL      time.Duration
	Currency        string
	ChargeTimeout   time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultRedisAddress    = "localhost:6379"
	defaultPublicBaseURL   = "http://localhost:8080"
	defaultCoinbaseAPIURL  = "https://api.commerce.coinbase.com"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultCurrency        = "RUB"
	defaultChargeTimeout   = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		RedisAddress:    getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		PublicBaseURL:   getString(lookup, "PUBLIC_BASE_URL", defaultPublicBaseURL),
		CoinbaseAPIKey:  getString(lookup, "COINBASE_API_KEY", ""),
		CoinbaseAPIURL:  getString(lookup, "COINBASE_API_URL", defaultCoinbaseAPIURL),
		WebhookSecret:   getString(lookup, "COINBASE_WEBHOOK_SECRET", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		Currency:        getString(lookup, "PRICE_CURRENCY", defaultCurrency),
		ChargeTimeout:   getDuration(lookup, "CHARGE_TIMEOUT", defaultChargeTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		chargeTimeoutStr   = cfg.ChargeTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for session carts")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", cfg.PublicBaseURL, "Externally reachable base URL for payment callbacks")
	fs.StringVar(&cfg.CoinbaseAPIURL, "coinbase-url", cfg.CoinbaseAPIURL, "Coinbase Commerce API base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "Display currency code for charges")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Idle lifetime of session carts")
	fs.StringVar(&chargeTimeoutStr, "charge-timeout", chargeTimeoutStr, "Timeout for outbound payment provider calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ChargeTimeout, err = time.ParseDuration(chargeTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid charge timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := loadSecretFile(lookup, "COINBASE_API_KEY_FILE", &cfg.CoinbaseAPIKey); err != nil {
		return nil, err
	}
	if err := loadSecretFile(lookup, "COINBASE_WEBHOOK_SECRET_FILE", &cfg.WebhookSecret); err != nil {
		return nil, err
	}
	if err := loadSecretFile(lookup, "SESSION_SECRET_FILE", &cfg.SessionSecret); err != nil {
		return nil, err
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ChargeTimeout <= 0 {
		cfg.ChargeTimeout = defaultChargeTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RedisAddress == "" {
		return nil, fmt.Errorf("redis address must be provided")
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return cfg, nil
}

// PaymentsEnabled reports whether checkout is available. An absent API key
// disables crypto payments without failing startup.
func (c *Config) PaymentsEnabled() bool {
	return c.CoinbaseAPIKey != ""
}

// WebhookEnabled reports whether inbound provider callbacks can be verified.
// Without a shared secret the webhook endpoint refuses all traffic.
func (c *Config) WebhookEnabled() bool {
	return c.WebhookSecret != ""
}

func loadSecretFile(lookup envLookup, key string, target *string) error {
	path, ok := lookup(key)
	if !ok || path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read secret file %s: %w", key, err)
	}
	*target = strings.TrimSpace(string(content))
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
