package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 15*time.Minute, cfg.SlotReconcileGrace)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Equal(t, "0 */5 * * * *", cfg.InvitationExpirySchedule)
	assert.True(t, cfg.OpenAPIValidation)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SLOT_RECONCILE_GRACE", "2m")
	t.Setenv("OPENAPI_VALIDATION", "false")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 2*time.Minute, cfg.SlotReconcileGrace)
	assert.False(t, cfg.OpenAPIValidation)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=frontdesk\n"), 0o600))
	// godotenv writes into the process environment; restore it after the test.
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_NAME"))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "frontdesk", cfg.DBName)
}

func TestLoadConfig_RejectsNonPositiveGrace(t *testing.T) {
	t.Setenv("SLOT_RECONCILE_GRACE", "0s")

	_, err := LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SLOT_RECONCILE_GRACE")
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
