package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(map[string]string{"RESEND_API_KEY": "re_test"})

	require.NoError(t, err)
	require.Equal(t, "re_test", cfg.Resend.APIKey)
	require.Empty(t, cfg.Resend.DefaultFrom)
	require.Equal(t, 30*time.Second, cfg.Resend.Timeout)
	require.Equal(t, "stdio", cfg.Server.Transport)
	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "info", cfg.Logger.Level)
	require.Equal(t, "production", cfg.Logger.Sentry.Environment)
}

func TestParseConfig_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(map[string]string{
		"RESEND_API_KEY":          "re_test",
		"RESEND_DEFAULT_FROM":     "team@example.com",
		"RESEND_DEFAULT_REPLY_TO": "support@example.com",
		"RESEND_TIMEOUT":          "5s",
		"MCP_TRANSPORT":           "http",
		"MCP_HTTP_ADDRESS":        "127.0.0.1:9090",
		"LOG_LEVEL":               "debug",
	})

	require.NoError(t, err)
	require.Equal(t, "team@example.com", cfg.Resend.DefaultFrom)
	require.Equal(t, "support@example.com", cfg.Resend.DefaultReplyTo)
	require.Equal(t, 5*time.Second, cfg.Resend.Timeout)
	require.Equal(t, "http", cfg.Server.Transport)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Address)
	require.Equal(t, "debug", cfg.Logger.Level)
}

func TestParseConfig_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, err := parseConfig(map[string]string{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "RESEND_API_KEY")
}

func TestParseConfig_InvalidDuration(t *testing.T) {
	t.Parallel()

	_, err := parseConfig(map[string]string{
		"RESEND_API_KEY": "re_test",
		"RESEND_TIMEOUT": "soon",
	})
	require.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, loadDotenv(filepath.Join(t.TempDir(), "nope.env")))
		require.NoError(t, loadDotenv(""))
	})

	t.Run("loads variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("RESEND_MCP_TEST_VAR=from-dotenv\n"), 0o600))
		t.Setenv("RESEND_MCP_TEST_VAR", "")
		require.NoError(t, os.Unsetenv("RESEND_MCP_TEST_VAR"))

		require.NoError(t, loadDotenv(path))
		require.Equal(t, "from-dotenv", os.Getenv("RESEND_MCP_TEST_VAR"))
	})
}
