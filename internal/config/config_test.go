package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.Dev())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "interventions.db", cfg.StoreDSN)
	assert.Equal(t, RemoteREST, cfg.RemoteDriver)
	assert.Equal(t, 30*time.Second, cfg.SyncTimeout)
	assert.Equal(t, "it", cfg.Lang)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REMOTE_DRIVER", "postgres")
	t.Setenv("REMOTE_URL", "postgres://sync@db:5432/interventions")
	t.Setenv("REMOTE_KEY", "s3cret")
	t.Setenv("SYNC_TIMEOUT", "2m")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Dev())
	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, RemotePostgres, cfg.RemoteDriver)
	assert.Equal(t, "s3cret", cfg.RemoteKey)
	assert.Equal(t, 2*time.Minute, cfg.SyncTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"unknown store driver", map[string]string{"STORE_DRIVER": "mongo"}, "STORE_DRIVER must be one of"},
		{"redis without url", map[string]string{"STORE_DRIVER": "redis"}, "REDIS_URL is required"},
		{"unknown remote driver", map[string]string{"REMOTE_DRIVER": "graphql"}, "REMOTE_DRIVER must be one of"},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT must be json or console"},
		{"bad duration", map[string]string{"SYNC_TIMEOUT": "soon"}, "failed to load environment variables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
