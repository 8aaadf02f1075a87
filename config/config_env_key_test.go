package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "aurelise",
			},
		},
		"stripe": map[string]any{
			"webhookSecret": "",
		},
		"worker": map[string]any{
			"pullEnabled": false,
		},
		"database": map[string]any{
			"slowQueryThreshold": "200ms",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "WORKER_PULLENABLED", want: "worker.pullEnabled"},
		{envKey: "DATABASE_SLOWQUERYTHRESHOLD", want: "database.slowQueryThreshold"},
		{envKey: "ORDERS_NUMBERPREFIX", want: "orders.numberprefix"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Orders)
	assert.Equal(t, "AUR", cfg.Orders.NumberPrefix)
	assert.Equal(t, 20, cfg.Orders.DefaultPageSize)
	require.NotNil(t, cfg.Stripe)
	assert.Equal(t, "GBP", cfg.Stripe.Currency)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Worker)
	assert.False(t, cfg.Worker.PullEnabled)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Orders:   &OrdersConfig{NumberPrefix: "BAK", DefaultPageSize: 50},
		Stripe:   &StripeConfig{Currency: "EUR"},
		Database: &DatabaseConfig{SlowQueryThreshold: time.Second, AutoMigrate: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, "BAK", cfg.Orders.NumberPrefix)
	assert.Equal(t, 50, cfg.Orders.DefaultPageSize)
	assert.Equal(t, "EUR", cfg.Stripe.Currency)
	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
	assert.True(t, cfg.Database.AutoMigrate)
}
