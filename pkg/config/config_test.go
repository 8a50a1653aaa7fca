package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("FEEDSYNC_TEST_TOKEN", "secret-token")
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
fetch:
  max_concurrent: 5
  timeout: 20s
  retries: 2
  retry_delay: 500ms
  cors_relay:
    url: https://relay.example.com/?url=
    domains: [blocked.example.com]
extraction:
  min_excerpt_length: 150
  rate_limit: 1s
images:
  validate: true
  head_timeout: 3s
  anti_hotlink_domains: [cdn.example.com]
proxy:
  enabled: true
  url: https://sync.example.com
  token: ${FEEDSYNC_TEST_TOKEN}
  image_compression: medium
  limit: 50
schedule:
  update_interval: 10m
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 5, cfg.Fetch.MaxConcurrent)
		assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, 2, cfg.Fetch.Retries)
		assert.Equal(t, 500*time.Millisecond, cfg.Fetch.RetryDelay)
		assert.Equal(t, RelayConfig{URL: "https://relay.example.com/?url=", Domains: []string{"blocked.example.com"}},
			cfg.Fetch.CORSRelay)
		assert.Equal(t, 150, cfg.Extraction.MinExcerptLength)
		assert.Equal(t, time.Second, cfg.Extraction.RateLimit)
		assert.True(t, cfg.Images.Validate)
		assert.Equal(t, 3*time.Second, cfg.Images.HeadTimeout)
		assert.Equal(t, []string{"cdn.example.com"}, cfg.Images.AntiHotlinkDomains)
		assert.True(t, cfg.Proxy.Enabled)
		assert.Equal(t, "secret-token", cfg.Proxy.Token)
		assert.Equal(t, "medium", cfg.Proxy.ImageCompression)
		assert.Equal(t, 50, cfg.Proxy.Limit)
		assert.Equal(t, 30*time.Second, cfg.Proxy.Timeout)
		assert.Equal(t, 10*time.Minute, cfg.Schedule.UpdateInterval)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Contains(t, cfg.Database.DSN, "feedsync.db")
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime())
		assert.Equal(t, 3, cfg.Fetch.MaxConcurrent)
		assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, 3, cfg.Fetch.Retries)
		assert.Equal(t, time.Second, cfg.Fetch.RetryDelay)
		assert.Equal(t, 200, cfg.Extraction.MinExcerptLength)
		assert.Equal(t, 15*time.Second, cfg.Extraction.Timeout)
		assert.Equal(t, 2*time.Second, cfg.Images.HeadTimeout)
		assert.False(t, cfg.Proxy.Enabled)
		assert.Equal(t, "none", cfg.Proxy.ImageCompression)
		assert.Equal(t, 30*time.Minute, cfg.Schedule.UpdateInterval)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "invalid yaml content\n  with bad indentation\n    and no structure\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name   string
			config string
			errMsg string
		}{
			{name: "short server timeout", config: "server:\n  timeout: 100ms\n", errMsg: "server timeout"},
			{name: "negative concurrency", config: "fetch:\n  max_concurrent: -1\n", errMsg: "fetch.max_concurrent"},
			{name: "relay not http", config: "fetch:\n  cors_relay:\n    url: ftp://relay\n", errMsg: "fetch.cors_relay.url"},
			{name: "proxy without url", config: "proxy:\n  enabled: true\n", errMsg: "proxy.url is required"},
			{name: "proxy bad compression", config: "proxy:\n  enabled: true\n  url: https://a.com\n  image_compression: ultra\n",
				errMsg: "proxy.image_compression"},
			{name: "short interval", config: "schedule:\n  update_interval: 10s\n", errMsg: "schedule.update_interval"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tt.config))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			})
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Listen)
	assert.True(t, cfg.Images.Validate)
	require.NoError(t, validate(cfg))
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Listen: ":9090", Timeout: 45 * time.Second}}
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}
