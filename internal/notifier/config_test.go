package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NOTIFIER_API_URL", "http://api:8080")
	t.Setenv("PIPELINE_API_KEY", "secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "Frota <avarias@example.com>")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 20, cfg.BatchSize)
	assert.Equal(t, rate.Limit(1), cfg.RateLimit)
	assert.Equal(t, 1, cfg.RateBurst)
	assert.Equal(t, "Frota", cfg.CompanyName)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	for _, key := range []string{"NOTIFIER_API_URL", "PIPELINE_API_KEY"} {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	for _, key := range []string{"SMTP_HOST", "SMTP_FROM"} {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, "")

			cfg, err := LoadConfig()
			require.NoError(t, err)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}

	t.Run("dry run needs no SMTP", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SMTP_HOST", "")
		t.Setenv("SMTP_FROM", "")
		t.Setenv("NOTIFIER_DRY_RUN", "1")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.DryRun)
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"NOTIFIER_REQUEST_TIMEOUT": "-5s",
		"NOTIFIER_DRY_RUN":         "maybe",
		"SMTP_PORT":                "smtp",
		"NOTIFIER_BATCH_SIZE":      "0",
		"NOTIFIER_RATE_LIMIT":      "3/d",
		"NOTIFIER_RATE_BURST":      "-1",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want rate.Limit
	}{
		{"", 1},
		{"5", 5},
		{"2/s", 2},
		{"30/m", 0.5},
		{"3600/h", 1},
	}
	for _, tt := range tests {
		got, err := parseRate(tt.in, 1)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, float64(tt.want), float64(got), 1e-9, tt.in)
	}

	for _, bad := range []string{"abc", "0", "-1/s", "1/x"} {
		_, err := parseRate(bad, 1)
		assert.Error(t, err, bad)
	}
}
