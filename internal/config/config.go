package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataFile    string   // path to the screenshots.json catalog snapshot
	UploadDir   string   // directory where uploaded images are stored
	AllowedExts []string // allowed upload extensions (without dot)

	RefreshInterval time.Duration // SEO profile staleness interval (default: 6h)

	// YouTube Data API
	YouTubeAPIKey  string        // empty => metadata lookups disabled, enrichment degrades
	YouTubeAPIURL  string        // base URL, overridable for tests
	YouTubeTimeout time.Duration // per-lookup timeout (default: 5s)

	// Rate limiting (mutating API routes)
	RateLimitBurst  int
	RateLimitPerMin int
	TrustProxy      bool // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

// fileConfig mirrors Config for the optional YAML overlay file.
// Only fields present in the file override the built-in defaults;
// environment variables always win over the file.
type fileConfig struct {
	ListenPort      *string        `yaml:"listen_port"`
	ShutdownTimeout *time.Duration `yaml:"shutdown_timeout"`
	LogLevel        *string        `yaml:"log_level"`
	PrettyLog       *bool          `yaml:"pretty_log"`
	DataFile        *string        `yaml:"data_file"`
	UploadDir       *string        `yaml:"upload_dir"`
	AllowedExts     []string       `yaml:"allowed_extensions"`
	RefreshInterval *time.Duration `yaml:"refresh_interval"`
	YouTubeAPIKey   *string        `yaml:"youtube_api_key"`
	YouTubeAPIURL   *string        `yaml:"youtube_api_url"`
	YouTubeTimeout  *time.Duration `yaml:"youtube_timeout"`
	RateLimitBurst  *int           `yaml:"rate_limit_burst"`
	RateLimitPerMin *int           `yaml:"rate_limit_per_min"`
	TrustProxy      *bool          `yaml:"trust_proxy"`
}

func Load() *Config {
	cfg := defaults()

	// Optional YAML overlay (CLIPSHELF_CONFIG_FILE)
	if path := os.Getenv("CLIPSHELF_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			panic(fmt.Sprintf("❌ FATAL: failed to load config file %s: %v", path, err))
		}
	}

	cfg.applyEnv()

	if cfg.RefreshInterval <= 0 {
		panic("❌ FATAL: CLIPSHELF_REFRESH_INTERVAL must be positive")
	}
	if cfg.YouTubeTimeout <= 0 {
		panic("❌ FATAL: CLIPSHELF_YOUTUBE_TIMEOUT must be positive")
	}

	return cfg
}

func defaults() *Config {
	return &Config{
		ListenPort:      ":8080",
		ShutdownTimeout: 5 * time.Second,

		LogLevel:  "info",
		PrettyLog: true,

		DataFile:    "data/screenshots.json",
		UploadDir:   "static/uploads",
		AllowedExts: []string{"png", "jpg", "jpeg", "gif"},

		RefreshInterval: 6 * time.Hour,

		YouTubeAPIURL:  "https://www.googleapis.com/youtube/v3",
		YouTubeTimeout: 5 * time.Second,

		RateLimitBurst:  10,
		RateLimitPerMin: 60,
		TrustProxy:      false,
	}
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	setIf(&c.ListenPort, fc.ListenPort)
	setIf(&c.ShutdownTimeout, fc.ShutdownTimeout)
	setIf(&c.LogLevel, fc.LogLevel)
	setIf(&c.PrettyLog, fc.PrettyLog)
	setIf(&c.DataFile, fc.DataFile)
	setIf(&c.UploadDir, fc.UploadDir)
	setIf(&c.RefreshInterval, fc.RefreshInterval)
	setIf(&c.YouTubeAPIKey, fc.YouTubeAPIKey)
	setIf(&c.YouTubeAPIURL, fc.YouTubeAPIURL)
	setIf(&c.YouTubeTimeout, fc.YouTubeTimeout)
	setIf(&c.RateLimitBurst, fc.RateLimitBurst)
	setIf(&c.RateLimitPerMin, fc.RateLimitPerMin)
	setIf(&c.TrustProxy, fc.TrustProxy)
	if len(fc.AllowedExts) > 0 {
		c.AllowedExts = fc.AllowedExts
	}

	return nil
}

func (c *Config) applyEnv() {
	c.ListenPort = getenv("CLIPSHELF_LISTEN_PORT", c.ListenPort)
	c.ShutdownTimeout = mustDuration("CLIPSHELF_SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	c.LogLevel = getenv("CLIPSHELF_LOG_LEVEL", c.LogLevel)
	c.PrettyLog = mustBool("CLIPSHELF_PRETTY_LOG", c.PrettyLog)

	c.DataFile = getenv("CLIPSHELF_DATA_FILE", c.DataFile)
	c.UploadDir = getenv("CLIPSHELF_UPLOAD_DIR", c.UploadDir)
	if v := os.Getenv("CLIPSHELF_ALLOWED_EXTENSIONS"); v != "" {
		c.AllowedExts = splitAndTrim(v)
	}

	c.RefreshInterval = mustDuration("CLIPSHELF_REFRESH_INTERVAL", c.RefreshInterval)

	c.YouTubeAPIKey = getenv("CLIPSHELF_YOUTUBE_API_KEY", c.YouTubeAPIKey)
	c.YouTubeAPIURL = getenv("CLIPSHELF_YOUTUBE_API_URL", c.YouTubeAPIURL)
	c.YouTubeTimeout = mustDuration("CLIPSHELF_YOUTUBE_TIMEOUT", c.YouTubeTimeout)

	c.RateLimitBurst = getenvInt("CLIPSHELF_RATE_LIMIT_BURST", c.RateLimitBurst)
	c.RateLimitPerMin = getenvInt("CLIPSHELF_RATE_LIMIT_PER_MIN", c.RateLimitPerMin)
	c.TrustProxy = mustBool("CLIPSHELF_TRUST_PROXY", c.TrustProxy)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
