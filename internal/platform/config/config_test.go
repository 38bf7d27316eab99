package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "workly-crm", cfg.JWTIssuer)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.True(t, cfg.TaskSelfServiceEnabled)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 50, cfg.TenantCodeMaxAttempts)
	assert.Empty(t, cfg.AdminSharedSecret)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_EXPIRY_DURATION", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.workly.io, https://admin.workly.io")
	t.Setenv("TASK_SELF_SERVICE_ENABLED", "false")
	t.Setenv("ADMIN_SHARED_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://app.workly.io", "https://admin.workly.io"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.TaskSelfServiceEnabled)
	assert.Equal(t, "s3cret", cfg.AdminSharedSecret)
}

func TestLoadConfigInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("PGSQL_URL", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("default secret in production", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
