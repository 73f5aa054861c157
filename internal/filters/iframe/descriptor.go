package iframe

import "github.com/goliatone/go-responsive-iframe/pkg/interfaces"

// ID is the registry identifier of the filter.
const ID = "filter_responsive_iframe"

// Descriptor returns the registry entry for the filter.
func Descriptor() interfaces.FilterDescriptor {
	return interfaces.FilterDescriptor{
		ID:              ID,
		Title:           "Responsive iFrame filter",
		Description:     "Wraps <iframe> tags with a configurable container element.",
		Type:            interfaces.FilterTypeTransformReversible,
		DefaultSettings: DefaultConfig().Settings(),
		SettingsSchema:  settingsSchema(),
		Factory:         factory,
	}
}

func settingsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			SettingWrapperElement: map[string]any{"type": "string", "minLength": 1},
			SettingWrapperClasses: map[string]any{"type": []any{"string", "null"}},
		},
		"required":             []any{SettingWrapperElement},
		"additionalProperties": false,
	}
}

func factory(settings interfaces.FilterSettings, deps interfaces.FilterDependencies) (interfaces.Filter, error) {
	cfg := ConfigFromSettings(settings)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg, WithXSSFilter(deps.XSS), WithTranslator(deps.Translator)), nil
}
