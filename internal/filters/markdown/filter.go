// Package markdown provides a markup-language filter that renders Markdown
// into HTML with goldmark. It runs ahead of HTML transforms in a text format
// so raw <iframe> embeds written in Markdown reach the iframe filter intact.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-responsive-iframe/internal/i18n"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// ID is the registry identifier of the filter.
const ID = "filter_markdown"

const (
	SettingExtensions = "extensions"
	SettingHardWraps  = "hard_wraps"
	SettingUnsafeHTML = "unsafe_html"
)

const tipsMessage = "Content is rendered from Markdown."

// Config controls the goldmark engine.
type Config struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
	HardWraps  bool     `json:"hard_wraps" yaml:"hard_wraps"`
	// UnsafeHTML lets raw HTML through. It defaults to true so embeds survive.
	UnsafeHTML bool `json:"unsafe_html" yaml:"unsafe_html"`
}

// DefaultConfig enables the GFM, linkify and task list extensions and raw HTML.
func DefaultConfig() Config {
	return Config{UnsafeHTML: true}
}

// ConfigFromSettings reads a Config from stored settings.
func ConfigFromSettings(settings interfaces.FilterSettings) Config {
	cfg := DefaultConfig()
	switch exts := settings[SettingExtensions].(type) {
	case []string:
		cfg.Extensions = append([]string(nil), exts...)
	case []any:
		for _, ext := range exts {
			if name, ok := ext.(string); ok {
				cfg.Extensions = append(cfg.Extensions, name)
			}
		}
	}
	if value, ok := settings[SettingHardWraps].(bool); ok {
		cfg.HardWraps = value
	}
	if value, ok := settings[SettingUnsafeHTML].(bool); ok {
		cfg.UnsafeHTML = value
	}
	return cfg
}

// Filter renders Markdown to HTML.
type Filter struct {
	config     Config
	engine     goldmark.Markdown
	translator interfaces.Translator
}

// New builds a markdown filter. A nil translator uses the no-op translator.
func New(cfg Config, translator interfaces.Translator) *Filter {
	if translator == nil {
		translator = i18n.NoOpTranslator()
	}
	return &Filter{config: cfg, engine: newEngine(cfg), translator: translator}
}

// Process renders text as Markdown.
func (f *Filter) Process(_ context.Context, text string, _ string) (string, error) {
	var buf bytes.Buffer
	if err := f.engine.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	return buf.String(), nil
}

// Tips describes the filter for the given locale.
func (f *Filter) Tips(locale string, _ bool) string {
	return i18n.Translate(f.translator, locale, tipsMessage)
}

var _ interfaces.Filter = (*Filter)(nil)

// Descriptor returns the registry entry for the filter.
func Descriptor() interfaces.FilterDescriptor {
	return interfaces.FilterDescriptor{
		ID:          ID,
		Title:       "Markdown",
		Description: "Renders Markdown into HTML.",
		Type:        interfaces.FilterTypeMarkupLanguage,
		Weight:      -10,
		DefaultSettings: interfaces.FilterSettings{
			SettingExtensions: []any{},
			SettingHardWraps:  false,
			SettingUnsafeHTML: true,
		},
		SettingsSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				SettingExtensions: map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				SettingHardWraps:  map[string]any{"type": "boolean"},
				SettingUnsafeHTML: map[string]any{"type": "boolean"},
			},
			"additionalProperties": false,
		},
		Factory: func(settings interfaces.FilterSettings, deps interfaces.FilterDependencies) (interfaces.Filter, error) {
			return New(ConfigFromSettings(settings), deps.Translator), nil
		},
	}
}

// newEngine builds the goldmark instance shared by every Process call.
// Unknown extension names are ignored.
func newEngine(cfg Config) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if cfg.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if cfg.UnsafeHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(collectExtensions(cfg.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}
