package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrDefaultFormatRequired = errors.New("filters config: default format is required")
var ErrDefaultFormatUnknown = errors.New("filters config: default format is not configured")
var ErrFormatIDRequired = errors.New("filters config: format id is required")
var ErrFormatDuplicate = errors.New("filters config: format id is duplicated")
var ErrFormatFilterIDRequired = errors.New("filters config: format filter id is required")
var ErrLoggingProviderRequired = errors.New("filters config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("filters config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("filters config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("filters config: logging format is invalid")

// ErrMetricsNamespaceInvalid indicates a namespace Prometheus would reject.
var ErrMetricsNamespaceInvalid = errors.New("filters config: metrics namespace is invalid")

var metricsNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config aggregates the text formats, translation and observability settings
// for the filter module.
type Config struct {
	DefaultLocale string            `yaml:"default_locale"`
	DefaultFormat string            `yaml:"default_format"`
	Formats       []FormatConfig    `yaml:"formats"`
	Translations  TranslationConfig `yaml:"translations"`
	Logging       LoggingConfig     `yaml:"logging"`
	Metrics       MetricsConfig     `yaml:"metrics"`
	Features      Features          `yaml:"features"`
}

// FormatConfig describes a text format: an ordered set of filters applied to
// user supplied text.
type FormatConfig struct {
	ID      string               `yaml:"id"`
	Name    string               `yaml:"name"`
	Filters []FormatFilterConfig `yaml:"filters"`
}

// FormatFilterConfig enables a filter inside a format.
type FormatFilterConfig struct {
	ID       string         `yaml:"id"`
	Status   bool           `yaml:"status"`
	Weight   int            `yaml:"weight"`
	Settings map[string]any `yaml:"settings"`
}

// TranslationConfig points at an optional JSON fixture overriding the
// embedded catalogue.
type TranslationConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// Features toggles module functionality.
type Features struct {
	Logger  bool `yaml:"logger"`
	Metrics bool `yaml:"metrics"`
}

// DefaultConfig returns a basic HTML format running the iframe filter and a
// markdown format that renders first and wraps afterwards.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		DefaultFormat: "basic_html",
		Formats: []FormatConfig{
			{
				ID:   "basic_html",
				Name: "Basic HTML",
				Filters: []FormatFilterConfig{
					{
						ID:     "filter_responsive_iframe",
						Status: true,
						Weight: 10,
						Settings: map[string]any{
							"wrapper_element": "figure",
							"wrapper_classes": "media-wrapper",
						},
					},
				},
			},
			{
				ID:   "markdown",
				Name: "Markdown",
				Filters: []FormatFilterConfig{
					{ID: "filter_markdown", Status: true, Weight: -10},
					{ID: "filter_responsive_iframe", Status: true, Weight: 10},
				},
			},
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
		Metrics: MetricsConfig{
			Namespace: "responsive_iframe",
		},
	}
}

// Load reads a YAML file and overlays it on DefaultConfig. Formats listed in
// the file replace the default formats entirely.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("filters config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over DefaultConfig.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("filters config: decode: %w", err)
	}
	return cfg, nil
}

// Format returns the format with the given ID.
func (cfg Config) Format(id string) (FormatConfig, bool) {
	key := normalizeID(id)
	for _, format := range cfg.Formats {
		if normalizeID(format.ID) == key {
			return format, true
		}
	}
	return FormatConfig{}, false
}

// WithFilterSettings returns a copy of cfg where every format that enables
// filterID has settings merged over its current values.
func (cfg Config) WithFilterSettings(filterID string, settings map[string]any) Config {
	key := normalizeID(filterID)
	formats := make([]FormatConfig, len(cfg.Formats))
	for i, format := range cfg.Formats {
		filters := make([]FormatFilterConfig, len(format.Filters))
		for j, filter := range format.Filters {
			if normalizeID(filter.ID) == key {
				merged := make(map[string]any, len(filter.Settings)+len(settings))
				for k, v := range filter.Settings {
					merged[k] = v
				}
				for k, v := range settings {
					merged[k] = v
				}
				filter.Settings = merged
			}
			filters[j] = filter
		}
		format.Filters = filters
		formats[i] = format
	}
	cfg.Formats = formats
	return cfg
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	defaultFormat := normalizeID(cfg.DefaultFormat)
	if defaultFormat == "" {
		return ErrDefaultFormatRequired
	}

	seen := make(map[string]struct{}, len(cfg.Formats))
	for i, format := range cfg.Formats {
		id := normalizeID(format.ID)
		if id == "" {
			return fmt.Errorf("%w: index %d", ErrFormatIDRequired, i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrFormatDuplicate, id)
		}
		seen[id] = struct{}{}
		for j, filter := range format.Filters {
			if normalizeID(filter.ID) == "" {
				return fmt.Errorf("%w: %s[%d]", ErrFormatFilterIDRequired, id, j)
			}
		}
	}
	if _, ok := seen[defaultFormat]; !ok {
		return fmt.Errorf("%w: %s", ErrDefaultFormatUnknown, defaultFormat)
	}

	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	if cfg.Features.Metrics {
		if ns := strings.TrimSpace(cfg.Metrics.Namespace); ns != "" && !metricsNamespacePattern.MatchString(ns) {
			return fmt.Errorf("%w: %s", ErrMetricsNamespaceInvalid, ns)
		}
	}
	return nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
