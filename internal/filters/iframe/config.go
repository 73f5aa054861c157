package iframe

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

const (
	SettingWrapperElement = "wrapper_element"
	SettingWrapperClasses = "wrapper_classes"

	DefaultWrapperElement = "figure"
	DefaultWrapperClasses = "media-wrapper"
)

// Config holds the two settings of the filter.
type Config struct {
	// WrapperElement is the tag name of the container. It is XSS filtered
	// before use.
	WrapperElement string `json:"wrapper_element" yaml:"wrapper_element"`
	// WrapperClasses is a space separated class list placed verbatim (but
	// escaped) in the container's class attribute.
	WrapperClasses string `json:"wrapper_classes" yaml:"wrapper_classes"`
}

// DefaultConfig returns the settings used when none are stored.
func DefaultConfig() Config {
	return Config{
		WrapperElement: DefaultWrapperElement,
		WrapperClasses: DefaultWrapperClasses,
	}
}

// ConfigFromSettings reads a Config from stored settings. Missing keys keep
// their defaults; present keys are used as-is, even when empty.
func ConfigFromSettings(settings interfaces.FilterSettings) Config {
	cfg := DefaultConfig()
	if value, ok := settings[SettingWrapperElement]; ok {
		cfg.WrapperElement = stringValue(value)
	}
	if value, ok := settings[SettingWrapperClasses]; ok {
		cfg.WrapperClasses = stringValue(value)
	}
	return cfg
}

// Settings converts the config to its stored form.
func (c Config) Settings() interfaces.FilterSettings {
	return interfaces.FilterSettings{
		SettingWrapperElement: c.WrapperElement,
		SettingWrapperClasses: c.WrapperClasses,
	}
}

// Validate enforces the settings form rules: the wrapper element is required.
// Wrap itself never validates.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WrapperElement, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("filters.iframe.wrapper_element_required", "wrapper element is required")
			}
			return nil
		})),
	)
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
