package interfaces

import (
	"context"
	"time"
)

// FilterType classifies what a filter does to text. Text formats use it to
// reason about the order filters run in; the registry only checks that the
// value is one of the known types.
type FilterType string

const (
	FilterTypeMarkupLanguage        FilterType = "markup_language"
	FilterTypeHTMLRestrictor        FilterType = "html_restrictor"
	FilterTypeTransformReversible   FilterType = "transform_reversible"
	FilterTypeTransformIrreversible FilterType = "transform_irreversible"
)

// FilterSettings holds the persisted configuration of a filter instance. Keys
// mirror the settings schema declared on the filter descriptor.
type FilterSettings map[string]any

// Filter is the capability every text filter implements. Implementations must
// be safe for concurrent use once constructed.
type Filter interface {
	// Process transforms text. The langcode is passed through for filters that
	// localise output; filters that do not care ignore it.
	Process(ctx context.Context, text string, langcode string) (string, error)
	// Tips returns the human readable description shown next to text inputs.
	Tips(locale string, long bool) string
}

// SettingsFormProvider is implemented by filters that expose editable settings.
type SettingsFormProvider interface {
	SettingsForm(locale string) []FormField
}

// FormField describes a single settings input. Rendering is left to the host.
type FormField struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Required     bool   `json:"required,omitempty"`
	DefaultValue any    `json:"default_value,omitempty"`
}

// FilterDependencies carries the shared collaborators handed to filter factories.
type FilterDependencies struct {
	XSS        XSSFilter
	Translator Translator
	Logger     Logger
}

// FilterFactory builds a filter instance from merged, validated settings.
type FilterFactory func(settings FilterSettings, deps FilterDependencies) (Filter, error)

// FilterDescriptor is the registry entry for a filter plugin.
type FilterDescriptor struct {
	ID              string
	Title           string
	Description     string
	Type            FilterType
	Weight          int
	DefaultSettings FilterSettings
	// SettingsSchema is a JSON schema applied to merged settings before the
	// factory runs. A nil schema skips validation.
	SettingsSchema map[string]any
	Factory        FilterFactory
}

// FilterManager describes the lifecycle contract for registering filter
// descriptors and creating configured instances. Implementations must be safe
// for concurrent use.
type FilterManager interface {
	// Register stores a descriptor and returns an error when the ID is taken
	// or the descriptor is invalid.
	Register(descriptor FilterDescriptor) error
	Get(id string) (FilterDescriptor, bool)
	List() []FilterDescriptor
	// Remove deletes a descriptor. Removing an unknown ID is a no-op.
	Remove(id string)
	// CreateInstance merges settings over the descriptor defaults, validates
	// them and builds the filter.
	CreateInstance(id string, settings FilterSettings) (Filter, error)
}

// FilterMetrics records filter execution telemetry.
type FilterMetrics interface {
	ObserveProcessDuration(filterID string, duration time.Duration)
	IncrementProcessError(filterID string)
}

// XSSFilter strips markup that could execute in a browser from a string.
type XSSFilter interface {
	Filter(input string) string
}
