package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/m3u"
	"github.com/alorle/iptv-curator/internal/textnorm"
	"github.com/alorle/iptv-curator/logging"
)

// Source represents a single upstream M3U playlist
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// StaticChannel is a channel emitted on every run without filtering or probing
type StaticChannel struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config holds the complete application configuration
type Config struct {
	// Upstream playlists, processed in order
	Sources []Source `yaml:"sources"`

	// Keyword lists. An empty priority list falls back to the include list.
	Keywords struct {
		Include  []string `yaml:"include"`
		Exclude  []string `yaml:"exclude"`
		Priority []string `yaml:"priority"`
	} `yaml:"keywords"`

	StaticChannels []StaticChannel `yaml:"static_channels"`

	// Glyph substitutions applied after script normalization.
	// Entries extend the built-in table.
	Substitutions map[string]string `yaml:"substitutions"`

	// Stream probe settings
	Probe struct {
		Workers   int           `yaml:"workers"`
		Timeout   time.Duration `yaml:"timeout"`
		RateLimit float64       `yaml:"rate_limit"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"probe"`

	// Source fetch settings
	Fetch struct {
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"fetch"`

	// Generated playlist settings
	Output struct {
		Path         string `yaml:"path"`
		EPGURL       string `yaml:"epg_url"`
		GroupTitle   string `yaml:"group_title"`
		LogoTemplate string `yaml:"logo_template"`
	} `yaml:"output"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

// PriorityKeywords returns the ranking keywords, highest priority first
func (c *Config) PriorityKeywords() []string {
	if len(c.Keywords.Priority) > 0 {
		return c.Keywords.Priority
	}
	return c.Keywords.Include
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	if len(c.Sources) == 0 && len(c.StaticChannels) == 0 {
		errors = append(errors, "At least one source or static channel is required")
	}
	for i, src := range c.Sources {
		if strings.TrimSpace(src.Name) == "" {
			errors = append(errors, fmt.Sprintf("Source %d: name is required", i))
		}
		if !isHTTPURL(src.URL) {
			errors = append(errors, fmt.Sprintf("Source %d (%s): URL must be http or https", i, src.Name))
		}
	}

	seen := make(map[string]bool, len(c.StaticChannels))
	for i, sc := range c.StaticChannels {
		if strings.TrimSpace(sc.Name) == "" {
			errors = append(errors, fmt.Sprintf("Static channel %d: name is required", i))
		}
		url := strings.TrimSpace(sc.URL)
		if !channel.HasStreamScheme(url) {
			errors = append(errors, fmt.Sprintf("Static channel %d (%s): URL has no supported stream scheme", i, sc.Name))
			continue
		}
		if seen[url] {
			errors = append(errors, fmt.Sprintf("Static channel %d (%s): duplicate URL %s", i, sc.Name, url))
		}
		seen[url] = true
	}

	if !hasNonBlank(c.Keywords.Include) {
		errors = append(errors, "At least one include keyword is required")
	}

	if c.Probe.Workers <= 0 {
		errors = append(errors, "Probe workers must be positive")
	}
	if c.Probe.Timeout <= 0 {
		errors = append(errors, "Probe timeout must be positive")
	}
	if c.Probe.RateLimit < 0 {
		errors = append(errors, "Probe rate limit cannot be negative")
	}
	if c.Fetch.Timeout <= 0 {
		errors = append(errors, "Fetch timeout must be positive")
	}

	if strings.TrimSpace(c.Output.Path) == "" {
		errors = append(errors, "Output path is required")
	}
	if !strings.Contains(c.Output.LogoTemplate, m3u.LogoNamePlaceholder) {
		errors = append(errors, fmt.Sprintf("Output logo template must contain %s", m3u.LogoNamePlaceholder))
	}

	if !logging.ValidLevel(c.LogLevel) {
		errors = append(errors, fmt.Sprintf("Unknown log level %q", c.LogLevel))
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		errors = append(errors, fmt.Sprintf("Unknown log format %q", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.Sources = []Source{
		{
			Name: "fanmingming",
			URL:  "https://raw.githubusercontent.com/fanmingming/live/main/tv/m3u/ipv6.m3u",
		},
		{
			Name: "yuanzl77",
			URL:  "https://raw.githubusercontent.com/yuanzl77/IPTV/main/live.m3u",
		},
		{
			Name: "live-television",
			URL:  "https://raw.githubusercontent.com/live-television/m3u/master/Hong%20Kong.m3u",
		},
	}

	cfg.Keywords.Include = []string{
		"ViuTV", "HOY", "RTHK", "Jade", "Pearl", "J2",
		"無線新聞", "有線新聞", "Now", "港台", "翡翠", "明珠",
	}

	cfg.StaticChannels = []StaticChannel{
		{Name: "RTHK 31", URL: "https://rthklive1-lh.akamaihd.net/i/rthk31_1@167495/index_2052_av-b.m3u8"},
		{Name: "RTHK 32", URL: "https://rthklive2-lh.akamaihd.net/i/rthk32_1@168450/index_2052_av-b.m3u8"},
	}

	cfg.Substitutions = maps.Clone(textnorm.DefaultSubstitutions)

	cfg.Probe.Workers = 16
	cfg.Probe.Timeout = 2 * time.Second
	cfg.Probe.UserAgent = "iptv-curator/1.0"

	cfg.Fetch.Timeout = 30 * time.Second
	cfg.Fetch.UserAgent = "iptv-curator/1.0"

	cfg.Output.Path = "hk_live.m3u"
	cfg.Output.EPGURL = "https://epg.112114.xyz/pp.xml"
	cfg.Output.GroupTitle = "Hong Kong"
	cfg.Output.LogoTemplate = "https://epg.112114.xyz/logo/{name}.png"

	cfg.LogLevel = "INFO"
	cfg.LogFormat = logging.FormatText

	return cfg
}

// Path returns the configuration file path from CONFIG_FILE, or config.yaml
func Path() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if present) and applies environment variable overrides
func Load() (*Config, error) {
	configPath := Path()

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		cfg.LogFormat = strings.ToLower(val)
	}

	if val := os.Getenv("OUTPUT_PATH"); val != "" {
		cfg.Output.Path = val
	}
	if val := os.Getenv("EPG_URL"); val != "" {
		cfg.Output.EPGURL = val
	}

	if val := os.Getenv("PROBE_WORKERS"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid PROBE_WORKERS: %w", err)
		}
		if n <= 0 {
			return fmt.Errorf("PROBE_WORKERS must be positive, got: %s", val)
		}
		cfg.Probe.Workers = n
	}
	if val := os.Getenv("PROBE_TIMEOUT"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid PROBE_TIMEOUT format (expected duration like '2s', '500ms'): %w", err)
		}
		if duration <= 0 {
			return fmt.Errorf("PROBE_TIMEOUT must be positive, got: %s", val)
		}
		cfg.Probe.Timeout = duration
	}
	if val := os.Getenv("PROBE_RATE_LIMIT"); val != "" {
		rps, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid PROBE_RATE_LIMIT: %w", err)
		}
		if rps < 0 {
			return fmt.Errorf("PROBE_RATE_LIMIT cannot be negative, got: %s", val)
		}
		cfg.Probe.RateLimit = rps
	}

	if val := os.Getenv("FETCH_TIMEOUT"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		if duration <= 0 {
			return fmt.Errorf("FETCH_TIMEOUT must be positive")
		}
		cfg.Fetch.Timeout = duration
	}

	if val := os.Getenv("METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}

	return nil
}

// LogValue renders the effective configuration as a log attribute group
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("sources", len(c.Sources)),
		slog.Int("static_channels", len(c.StaticChannels)),
		slog.Int("include_keywords", len(c.Keywords.Include)),
		slog.Int("exclude_keywords", len(c.Keywords.Exclude)),
		slog.Int("probe_workers", c.Probe.Workers),
		slog.Duration("probe_timeout", c.Probe.Timeout),
		slog.Float64("probe_rate_limit", c.Probe.RateLimit),
		slog.Duration("fetch_timeout", c.Fetch.Timeout),
		slog.String("output_path", c.Output.Path),
		slog.String("epg_url", c.Output.EPGURL),
		slog.String("metrics_textfile", c.Metrics.Textfile),
	)
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func hasNonBlank(list []string) bool {
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
