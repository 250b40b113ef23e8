package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/pkg/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvServiceEnv,
		config.EnvServiceShutdownTimeout,
		config.EnvServerHost,
		config.EnvServerPort,
		config.EnvServerReadTimeout,
		config.EnvServerWriteTimeout,
		config.EnvServerIdleTimeout,
		config.EnvServerMaxHeaderSize,
		config.EnvSiteName,
		"LOGGING_LEVEL",
		"LOGGING_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_BaseConfig(t *testing.T) {
	clearEnv(t)
	t.Chdir("../..")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeoutDuration())
	assert.Equal(t, logging.LevelInfo, cfg.Logging.Level)
	assert.Equal(t, "Storefront", cfg.Site.Name)
	assert.Equal(t, 1000000, cfg.Server.MaxHeaderBytes())
	assert.Equal(t, "local", cfg.Env())
}

func TestLoad_WithOverlay(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	base, err := os.ReadFile("../../config.toml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.BaseConfigFile), base, 0644))

	overlay := `shutdown_timeout = "60s"

[server]
port = 9090

[site]
name = "Corner Shop"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.test.toml"), []byte(overlay), 0644))

	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "60s", cfg.ShutdownTimeout)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "Corner Shop", cfg.Site.Name)
	assert.Equal(t, "test", cfg.Env())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir("../..")

	t.Setenv(config.EnvServerPort, "3000")
	t.Setenv(config.EnvServerMaxHeaderSize, "64KB")
	t.Setenv(config.EnvSiteName, "Env Shop")
	t.Setenv("LOGGING_FORMAT", "JSON")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 64000, cfg.Server.MaxHeaderBytes())
	assert.Equal(t, "Env Shop", cfg.Site.Name)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.BaseConfigFile), []byte("[server\nport = "), 0644))
	t.Chdir(dir)

	_, err := config.Load()
	assert.Error(t, err)
}

func TestFinalize_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := &config.Config{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "30s", cfg.ShutdownTimeout)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeoutDuration())
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeoutDuration())
	assert.Equal(t, logging.FormatText, cfg.Logging.Format)
	assert.Equal(t, "Storefront", cfg.Site.Name)
}

func TestFinalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"negative shutdown timeout", config.Config{ShutdownTimeout: "-1s"}},
		{"read timeout", config.Config{Server: config.ServerConfig{ReadTimeout: "fast"}}},
		{"port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"max header size", config.Config{Server: config.ServerConfig{MaxHeaderSize: "lots"}}},
		{"log level", config.Config{Logging: logging.Config{Level: "trace"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := tt.cfg
			assert.Error(t, cfg.Finalize())
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := &config.Config{
		ShutdownTimeout: "30s",
		Server:          config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Site:            config.SiteConfig{Name: "Base"},
	}

	cfg.Merge(&config.Config{
		Server: config.ServerConfig{Port: 9000, MaxHeaderSize: "2MB"},
	})

	assert.Equal(t, "30s", cfg.ShutdownTimeout)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "2MB", cfg.Server.MaxHeaderSize)
	assert.Equal(t, "Base", cfg.Site.Name)
}
