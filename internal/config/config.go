// Package config loads the storefront service configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/23prakashjha/Grocery-App/pkg/config"
)

// Config is the storefront session service configuration.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8007"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	CatalogServiceURL string `env:"CATALOG_SERVICE_URL" envDefault:"http://localhost:8001"`
	AddressServiceURL string `env:"ADDRESS_SERVICE_URL" envDefault:"http://localhost:8004"`
	OrderServiceURL   string `env:"ORDER_SERVICE_URL" envDefault:"http://localhost:8005"`
	ClientTimeout     time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`

	// TaxRatePercent is applied to the cart subtotal at checkout.
	TaxRatePercent float64 `env:"TAX_RATE_PERCENT" envDefault:"2"`
	// Currency is the display label for amounts; no conversion happens.
	Currency string `env:"CURRENCY" envDefault:"INR"`

	// CatalogRefreshInterval is how often the catalog snapshot is re-fetched.
	CatalogRefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" envDefault:"5m"`

	// SessionTTL is how long an idle session is kept before being purged.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`

	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32" envSeparator:","`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.TaxRatePercent < 0 {
		return fmt.Errorf("TAX_RATE_PERCENT must not be negative, got %v", c.TaxRatePercent)
	}
	for name, url := range map[string]string{
		"CATALOG_SERVICE_URL": c.CatalogServiceURL,
		"ADDRESS_SERVICE_URL": c.AddressServiceURL,
		"ORDER_SERVICE_URL":   c.OrderServiceURL,
	} {
		if url == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
