package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Local API server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Fetch      FetchConfig      `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full content extraction configuration"`
	Images     ImagesConfig     `yaml:"images" json:"images" jsonschema:"description=Image selection configuration"`
	Proxy      ProxyConfig      `yaml:"proxy" json:"proxy" jsonschema:"description=Aggregation server (proxy) configuration"`
	Schedule   ScheduleConfig   `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
}

// ServerConfig holds local API settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=127.0.0.1:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedsync.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// FetchConfig holds direct feed fetching settings
type FetchConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=3,minimum=1,description=Maximum sources fetched concurrently"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed request timeout"`
	Retries       int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Fetch attempts per source"`
	RetryDelay    time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1s,description=Initial delay between attempts (doubled on each retry)"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests (browser-like default if empty)"`
	CORSRelay     RelayConfig   `yaml:"cors_relay" json:"cors_relay" jsonschema:"description=Relay used for feeds of listed domains"`
}

// RelayConfig defines the relay endpoint and domains routed through it
type RelayConfig struct {
	URL     string   `yaml:"url" json:"url" jsonschema:"description=Relay url prefix (the feed url is appended query-escaped)"`
	Domains []string `yaml:"domains" json:"domains" jsonschema:"description=Feed domains fetched through the relay"`
}

// ExtractionConfig holds full content extraction settings
type ExtractionConfig struct {
	MinExcerptLength int           `yaml:"min_excerpt_length" json:"min_excerpt_length" jsonschema:"default=200,description=Feed content shorter than this (plain text) is treated as an excerpt"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Article page request timeout"`
	RateLimit        time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=500ms,description=Minimal interval between article page requests"`
	UserAgent        string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for article pages (random mobile browser if empty)"`
}

// ImagesConfig holds image selection settings
type ImagesConfig struct {
	Validate           bool          `yaml:"validate" json:"validate" jsonschema:"default=true,description=Check candidate images with HEAD requests"`
	HeadTimeout        time.Duration `yaml:"head_timeout" json:"head_timeout" jsonschema:"default=2s,description=Image HEAD request timeout"`
	AntiHotlinkDomains []string      `yaml:"anti_hotlink_domains" json:"anti_hotlink_domains" jsonschema:"description=Image domains rejecting requests without a referer (accepted without a check)"`
}

// ProxyConfig holds aggregation server settings
type ProxyConfig struct {
	Enabled          bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable proxy sources and server sync"`
	URL              string        `yaml:"url" json:"url" jsonschema:"description=Aggregation server base url"`
	Token            string        `yaml:"token" json:"token" jsonschema:"description=Bearer token (can use environment variable)"`
	ImageCompression string        `yaml:"image_compression" json:"image_compression" jsonschema:"default=none,enum=none,enum=low,enum=medium,enum=high,description=Image compression requested from the server"`
	Limit            int           `yaml:"limit" json:"limit" jsonschema:"default=200,minimum=1,description=Maximum items per sync request"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Proxy request timeout"`
}

// ScheduleConfig holds periodic refresh settings
type ScheduleConfig struct {
	UpdateInterval time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=30m,description=Interval between scheduled refreshes"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary, warn only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Images.Validate = true
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = "127.0.0.1:8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedsync.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// fetch
	if c.Fetch.MaxConcurrent == 0 {
		c.Fetch.MaxConcurrent = 3
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.Retries == 0 {
		c.Fetch.Retries = 3
	}
	if c.Fetch.RetryDelay == 0 {
		c.Fetch.RetryDelay = time.Second
	}

	// extraction
	if c.Extraction.MinExcerptLength == 0 {
		c.Extraction.MinExcerptLength = 200
	}
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 15 * time.Second
	}
	if c.Extraction.RateLimit == 0 {
		c.Extraction.RateLimit = 500 * time.Millisecond
	}

	// images
	if c.Images.HeadTimeout == 0 {
		c.Images.HeadTimeout = 2 * time.Second
	}

	// proxy
	if c.Proxy.ImageCompression == "" {
		c.Proxy.ImageCompression = "none"
	}
	if c.Proxy.Limit == 0 {
		c.Proxy.Limit = 200
	}
	if c.Proxy.Timeout == 0 {
		c.Proxy.Timeout = 30 * time.Second
	}

	// schedule
	if c.Schedule.UpdateInterval == 0 {
		c.Schedule.UpdateInterval = 30 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Fetch.MaxConcurrent < 1 {
		return fmt.Errorf("fetch.max_concurrent must be at least 1")
	}
	if cfg.Fetch.Retries < 1 {
		return fmt.Errorf("fetch.retries must be at least 1")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.CORSRelay.URL != "" {
		if err := checkURL(cfg.Fetch.CORSRelay.URL); err != nil {
			return fmt.Errorf("fetch.cors_relay.url: %w", err)
		}
	}

	if cfg.Extraction.MinExcerptLength < 0 {
		return fmt.Errorf("extraction.min_excerpt_length must be non-negative")
	}
	if cfg.Extraction.RateLimit < 0 {
		return fmt.Errorf("extraction.rate_limit must be non-negative")
	}

	if cfg.Proxy.Enabled {
		if cfg.Proxy.URL == "" {
			return fmt.Errorf("proxy.url is required when proxy is enabled")
		}
		if err := checkURL(cfg.Proxy.URL); err != nil {
			return fmt.Errorf("proxy.url: %w", err)
		}
		switch cfg.Proxy.ImageCompression {
		case "none", "low", "medium", "high":
		default:
			return fmt.Errorf("proxy.image_compression must be one of none, low, medium, high")
		}
		if cfg.Proxy.Limit < 1 {
			return fmt.Errorf("proxy.limit must be at least 1")
		}
	}

	if cfg.Schedule.UpdateInterval < time.Minute {
		return fmt.Errorf("schedule.update_interval must be at least 1 minute")
	}
	return nil
}

func checkURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("parse %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%q must be an http(s) url", u)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// ConnMaxLifetime returns database connection lifetime as a duration
func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.Database.ConnMaxLifetime) * time.Second
}
