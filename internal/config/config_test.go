package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CornerStoreDbConnectionString", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, PlaceholderConnectionString, cfg.DBConnectionString)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.HTTPSRedirect)
}

func TestLoad_PrefixedEnv(t *testing.T) {
	t.Setenv("CORNERSTORE_PORT", "9090")
	t.Setenv("CORNERSTORE_ENV", "production")
	t.Setenv("CORNERSTORE_DB_DRIVER", "sqlite")
	t.Setenv("CORNERSTORE_DB_CONNECTION_STRING", "file:cornerstore.db")
	t.Setenv("CORNERSTORE_HTTPS_REDIRECT", "true")
	t.Setenv("CORNERSTORE_SEED", "false")
	t.Setenv("CORNERSTORE_SHUTDOWN_TIMEOUT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:cornerstore.db", cfg.DBConnectionString)
	assert.True(t, cfg.HTTPSRedirect)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 3, cfg.ShutdownTimeout)
}

func TestLoad_LegacyConnectionString(t *testing.T) {
	t.Setenv("CornerStoreDbConnectionString", "host=db user=cs dbname=cornerstore")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db user=cs dbname=cornerstore", cfg.DBConnectionString)

	//prefix付きが優先
	t.Setenv("CORNERSTORE_DB_CONNECTION_STRING", "host=other")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "host=other", cfg.DBConnectionString)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CORNERSTORE_DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid config")
}
