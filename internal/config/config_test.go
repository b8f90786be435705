package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearServerEnv(t *testing.T) {
	for _, key := range []string{"PORT", "SERVER_PORT", "APP_PORT", "HOST", "SUPABASE_URL", "SUPABASE_KEY"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, _ := LoadConfig()

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.False(t, cfg.HasStoreCredentials())
}

func TestLoadConfig_PortFallbackChain(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("APP_PORT", "9000")

	cfg, _ := LoadConfig()
	assert.Equal(t, "9000", cfg.ServerPort)

	t.Setenv("SERVER_PORT", "8080")
	cfg, _ = LoadConfig()
	assert.Equal(t, "8080", cfg.ServerPort)

	// PORT имеет высший приоритет
	t.Setenv("PORT", "4000")
	cfg, _ = LoadConfig()
	assert.Equal(t, "4000", cfg.ServerPort)
}

func TestLoadConfig_StoreCredentials(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")

	cfg, _ := LoadConfig()
	assert.False(t, cfg.HasStoreCredentials())

	t.Setenv("SUPABASE_KEY", "service-key")
	cfg, _ = LoadConfig()
	assert.True(t, cfg.HasStoreCredentials())
	assert.Equal(t, "https://example.supabase.co", cfg.SupabaseURL)
}
