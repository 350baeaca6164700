package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8007, cfg.HTTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 2.0, cfg.TaxRatePercent)
	assert.Equal(t, "INR", cfg.Currency)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("TAX_RATE_PERCENT", "18")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, 18.0, cfg.TaxRatePercent)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NegativeTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE_PERCENT", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EmptyServiceURL(t *testing.T) {
	t.Setenv("ORDER_SERVICE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}
