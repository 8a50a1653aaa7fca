package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "missing server listen", modify: func(c *Config) { c.Server.Listen = "" }, wantErr: true,
			errMsg: "server.listen is required"},
		{name: "missing dsn", modify: func(c *Config) { c.Database.DSN = "" }, wantErr: true,
			errMsg: "database.dsn is required"},
		{name: "below minimum", modify: func(c *Config) { c.Fetch.MaxConcurrent = 0 }, wantErr: true,
			errMsg: "fetch.max_concurrent is 0, minimum is 1"},
		{name: "enum violation", modify: func(c *Config) { c.Proxy.ImageCompression = "ultra" }, wantErr: true,
			errMsg: `proxy.image_compression value "ultra" is not allowed`},
		{name: "proxy enabled without url", modify: func(c *Config) { c.Proxy.Enabled = true }, wantErr: true,
			errMsg: "proxy.url is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	schemaStr := string(data)
	for _, s := range []string{"Config", "server", "fetch", "cors_relay", "extraction", "images", "proxy", "schedule"} {
		assert.Contains(t, schemaStr, s)
	}
}
