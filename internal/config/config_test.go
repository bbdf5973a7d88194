package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "envelope", cfg.Shape)
	assert.False(t, cfg.StrictInput)
	assert.False(t, cfg.ZeroExitOnFailure)
	assert.Equal(t, 15, cfg.HTTPConfig.ConnectTimeoutSecs)
	assert.Equal(t, 0, cfg.HTTPConfig.TimeoutSecs)
	assert.True(t, cfg.HTTPConfig.FollowRedirects)
	assert.Equal(t, "disabled", cfg.LogConfig.LogLevel)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestHTTPConfig_ClientConfig(t *testing.T) {
	cfg := NewDefaultHTTPConfig()
	cfg.TimeoutSecs = 30
	cfg.MaxBodyBytes = 2048

	clientCfg := cfg.ClientConfig()
	assert.Equal(t, 15*time.Second, clientCfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, clientCfg.Timeout)
	assert.Equal(t, int64(2048), clientCfg.MaxBodyBytes)
	assert.True(t, clientCfg.FollowRedirects)
	assert.True(t, clientCfg.EnableHTTP2)
}

func TestLoadConfig_NoConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{
		"shape": "object",
		"strict_input": true,
		"log_config": {
			"log_level": "debug"
		},
		"http_config": {
			"connect_timeout_secs": 3,
			"follow_redirects": false,
			"enable_http2": true
		}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "object", cfg.Shape)
	assert.True(t, cfg.StrictInput)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "console", cfg.LogConfig.LogFormat)
	assert.Equal(t, 3, cfg.HTTPConfig.ConnectTimeoutSecs)
	assert.False(t, cfg.HTTPConfig.FollowRedirects)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
shape: pairs
zero_exit_on_failure: true
http_config:
  timeout_secs: 60
  max_body_bytes: 4096
log_config:
  log_level: info
  log_format: json
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "pairs", cfg.Shape)
	assert.True(t, cfg.ZeroExitOnFailure)
	assert.Equal(t, 60, cfg.HTTPConfig.TimeoutSecs)
	assert.Equal(t, int64(4096), cfg.HTTPConfig.MaxBodyBytes)
	assert.Equal(t, 15, cfg.HTTPConfig.ConnectTimeoutSecs)
	assert.True(t, cfg.HTTPConfig.FollowRedirects)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("shape: array\n"), 0644))
	t.Setenv(ConfigPathEnv, configFile)

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "array", cfg.Shape)
}

func TestLoadConfig_InvalidContent(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte("{not json"), 0644))

	_, err := LoadConfig(configFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config content")
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(ConfigPathEnv, "/from/env.yaml")

	assert.Equal(t, "/from/flag.yaml", GetConfigPath("/from/flag.yaml"))
	assert.Equal(t, "/from/env.yaml", GetConfigPath(""))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{"defaults", func(cfg *Config) {}, ""},
		{"alias shape", func(cfg *Config) { cfg.Shape = "flat" }, ""},
		{"unknown shape", func(cfg *Config) { cfg.Shape = "xml" }, "rule 'shape'"},
		{"zero connect timeout", func(cfg *Config) { cfg.HTTPConfig.ConnectTimeoutSecs = 0 }, "HTTPConfig.ConnectTimeoutSecs"},
		{"negative body cap", func(cfg *Config) { cfg.HTTPConfig.MaxBodyBytes = -1 }, "HTTPConfig.MaxBodyBytes"},
		{"bad proxy", func(cfg *Config) { cfg.HTTPConfig.Proxy = "not a url" }, "rule 'url'"},
		{"bad log level", func(cfg *Config) { cfg.LogConfig.LogLevel = "loud" }, "rule 'loglevel'"},
		{"bad log format", func(cfg *Config) { cfg.LogConfig.LogFormat = "xml" }, "rule 'logformat'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
