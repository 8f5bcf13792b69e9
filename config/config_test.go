package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
		"LLM_PROVIDER", "LLM_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "LLM_MODEL",
		"LLM_BASE_URL", "LLM_TIMEOUT", "LLM_MAX_RETRIES", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "ADVICE_CACHE_TTL", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "CURRENCY_SYMBOL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-pro", cfg.LLM.Model)
	assert.False(t, cfg.LLM.Enabled())
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1, cfg.LLM.MaxRetries)
	assert.Equal(t, time.Hour, cfg.AdviceCacheTTL)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://loans.example.com")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("LLM_MAX_RETRIES", "0")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://loans.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.True(t, cfg.LLM.Enabled())
	assert.Equal(t, 3*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0, cfg.LLM.MaxRetries)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestFromEnv_GenericKeyWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("LLM_API_KEY", "generic-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "generic-key", cfg.LLM.APIKey)
}

func TestFromEnv_ProviderNoneDisablesGenerator(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "none")
	t.Setenv("LLM_API_KEY", "key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.LLM.Enabled())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad port":       {"PORT", "eighty"},
		"port range":     {"PORT", "70000"},
		"bad timeout":    {"LLM_TIMEOUT", "soon"},
		"bad provider":   {"LLM_PROVIDER", "palm"},
		"bad gin mode":   {"GIN_MODE", "production"},
		"negative retry": {"LLM_MAX_RETRIES", "-1"},
		"bad window":     {"RATE_LIMIT_WINDOW", "0s"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := FromEnv()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), kv[0])
		})
	}
}
