package config

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_PATH", "CONTENT_FILE", "ADMIN_USERNAME", "ADMIN_PASSWORD", "SETTLE_DELAY_MS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Empty(t, cfg.ContentFile)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 100, cfg.SettleDelayMS)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTENT_FILE", "/srv/content.yaml")
	t.Setenv("ADMIN_USERNAME", "sophia")
	t.Setenv("SETTLE_DELAY_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/content.yaml", cfg.ContentFile)
	assert.Equal(t, "sophia", cfg.AdminUsername)
	assert.Equal(t, 250, cfg.SettleDelayMS)
}

func TestLoadRejectsBadDelay(t *testing.T) {
	t.Setenv("SETTLE_DELAY_MS", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIsQuiet(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "commands that never serve should not warn")
	assert.Len(t, cfg.Warnings(), 2)
}

func TestWarnings(t *testing.T) {
	cfg := Config{AdminUsername: "sophia", AdminPassword: DefaultAdminPassword}
	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ADMIN_PASSWORD")

	cfg.AdminPassword = "long and private"
	assert.Empty(t, cfg.Warnings())
}
