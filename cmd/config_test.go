package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"commandes/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults_and_environment", func(t *testing.T) {
		t.Setenv("DB_USER", "app")
		t.Setenv("DB_NAME", "commandes")
		t.Setenv("NOTIFY_CONCURRENCY", "8")

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, 5*time.Second, cfg.NotifySendTimeout)
		assert.Equal(t, 8, cfg.NotifyConcurrency)
		assert.False(t, cfg.IsProduction())
		assert.Contains(t, cfg.DSN(), "dbname=commandes")
	})

	t.Run("env_file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile,
			[]byte("DB_USER=file_user\nDB_NAME=file_db\nNOTIFY_SEND_TIMEOUT=2s\n"), 0o600))
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")
		t.Setenv("NOTIFY_SEND_TIMEOUT", "")
		require.NoError(t, os.Unsetenv("DB_USER"))
		require.NoError(t, os.Unsetenv("DB_NAME"))
		require.NoError(t, os.Unsetenv("NOTIFY_SEND_TIMEOUT"))

		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "file_user", cfg.DBUser)
		assert.Equal(t, 2*time.Second, cfg.NotifySendTimeout)
	})

	t.Run("production_requires_jwt_secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_USER", "app")
		t.Setenv("DB_NAME", "commandes")
		t.Setenv("JWT_SECRET", "")

		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.ErrorContains(t, err, "JWT_SECRET")
	})
}
