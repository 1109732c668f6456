package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
)

var configKeys = []string{
	"LOG_LEVEL", "LOG_PRETTY", "CATALOG_PATH", "CATALOG_SOURCE", "PROFILES_PATH",
	"POSTGRES_DSN", "SQLITE_PATH", "PSU_SAFETY_MARGIN", "BASE_SYSTEM_POWER",
	"MAX_DOWNGRADE_ITERATIONS", "TELEGRAM_BOT_TOKEN", "GEMINI_API_KEY", "ALLOW_EMPTY_SECRETS",
}

// clearEnv t.Setenv restores the previous values after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, SourceFile, cfg.CatalogSource)
	assert.Equal(t, "data/parts-data.json", cfg.CatalogPath)
	assert.Equal(t, constants.DefaultPSUSafetyMargin, cfg.PSUSafetyMargin)
	assert.Equal(t, constants.DefaultBaseSystemPower, cfg.BaseSystemPower)
	assert.Equal(t, constants.DefaultMaxDowngradeIterations, cfg.MaxDowngradeIterations)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("CATALOG_SOURCE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/parts.db")
	t.Setenv("PSU_SAFETY_MARGIN", "1.5")
	t.Setenv("BASE_SYSTEM_POWER", "80")
	t.Setenv("MAX_DOWNGRADE_ITERATIONS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, SourceSQLite, cfg.CatalogSource)
	assert.Equal(t, "/tmp/parts.db", cfg.SQLitePath)
	assert.Equal(t, 1.5, cfg.PSUSafetyMargin)
	assert.Equal(t, 80, cfg.BaseSystemPower)
	assert.Equal(t, 5, cfg.MaxDowngradeIterations)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"CATALOG_SOURCE":           "mongodb",
		"PSU_SAFETY_MARGIN":        "0.8",
		"BASE_SYSTEM_POWER":        "lots",
		"MAX_DOWNGRADE_ITERATIONS": "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestRequireBotSecrets(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireBotSecrets())

	cfg.AllowEmptySecrets = true
	assert.NoError(t, cfg.RequireBotSecrets())

	cfg = &Config{TelegramToken: "123:abc"}
	assert.NoError(t, cfg.RequireBotSecrets())
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("X_FLAG", "off")
	assert.False(t, getEnvBool("X_FLAG", true))
	t.Setenv("X_FLAG", "maybe")
	assert.True(t, getEnvBool("X_FLAG", true))
}
