package iframe

import (
	"context"

	"github.com/goliatone/go-responsive-iframe/internal/i18n"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

const tipsMessage = "Wraps %iframe tags with a %wrapper tag."

// Filter is a configured responsive iframe filter. The wrapper markup is
// computed once at construction, so Process only scans text.
type Filter struct {
	config     Config
	wrapper    wrapper
	translator interfaces.Translator
}

// Option customises a Filter.
type Option func(*filterOptions)

type filterOptions struct {
	xss        interfaces.XSSFilter
	translator interfaces.Translator
}

// WithXSSFilter overrides the sanitizer applied to the wrapper element.
func WithXSSFilter(xss interfaces.XSSFilter) Option {
	return func(o *filterOptions) {
		if xss != nil {
			o.xss = xss
		}
	}
}

// WithTranslator sets the translator used for tips and form labels.
func WithTranslator(translator interfaces.Translator) Option {
	return func(o *filterOptions) {
		if translator != nil {
			o.translator = translator
		}
	}
}

// New builds a filter for cfg.
func New(cfg Config, opts ...Option) *Filter {
	options := filterOptions{
		xss:        defaultXSS,
		translator: i18n.NoOpTranslator(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Filter{
		config:     cfg,
		wrapper:    newWrapper(cfg, options.xss),
		translator: options.translator,
	}
}

// Config returns the settings the filter was built with.
func (f *Filter) Config() Config {
	return f.config
}

// Process wraps the iframes in text. It never fails.
func (f *Filter) Process(_ context.Context, text string, _ string) (string, error) {
	return f.wrapper.apply(text), nil
}

// Tips describes the filter for the given locale.
func (f *Filter) Tips(locale string, _ bool) string {
	return i18n.Translate(f.translator, locale, tipsMessage,
		"%iframe", "<iframe>",
		"%wrapper", "<"+f.wrapper.element+">",
	)
}

// SettingsForm describes the two text fields used to edit the filter.
func (f *Filter) SettingsForm(locale string) []interfaces.FormField {
	return SettingsForm(f.config, f.translator, locale)
}

// SettingsForm describes the settings inputs pre-filled with cfg.
func SettingsForm(cfg Config, translator interfaces.Translator, locale string) []interfaces.FormField {
	t := func(key string) string {
		return i18n.Translate(translator, locale, key)
	}
	return []interfaces.FormField{
		{
			Name:         SettingWrapperElement,
			Type:         "textfield",
			Title:        t("Wrapper element"),
			Description:  t("The element to wrap the responsive iframe (e.g. figure)"),
			Required:     true,
			DefaultValue: cfg.WrapperElement,
		},
		{
			Name:         SettingWrapperClasses,
			Type:         "textfield",
			Title:        t("Wrapper class(es)"),
			Description:  t("Any wrapper class(es) separated by spaces (e.g. media-wrapper)"),
			DefaultValue: cfg.WrapperClasses,
		},
	}
}

var (
	_ interfaces.Filter               = (*Filter)(nil)
	_ interfaces.SettingsFormProvider = (*Filter)(nil)
)
