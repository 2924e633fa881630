package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "postgres", cfg.DB().Driver)
	require.False(t, cfg.Otel.Enabled)
	require.Equal(t, "something-core", cfg.Otel.ServiceName)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "things.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SAMPLER_RATIO", "0.5")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key:abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, "sqlite", cfg.DB().Driver)
	require.Equal(t, "things.db", cfg.DB().SQLitePath)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	require.True(t, cfg.MetricsEnabled)
	require.True(t, cfg.Otel.Enabled)
	require.InDelta(t, 0.5, cfg.Otel.SampleRatio, 1e-9)
	require.Equal(t, map[string]string{"x-api-key": "abc"}, cfg.Otel.Headers)
}
