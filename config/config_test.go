package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gsf?sslmode=disable")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres://localhost:5432/gsf?sslmode=disable", cfg.DatabaseURL)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gsf")

	for _, port := range []string{"abc", "0", "-1", "70000"} {
		t.Setenv("SERVER_PORT", port)
		_, err := Load()
		assert.Error(t, err, "port %q should be rejected", port)
	}
}
