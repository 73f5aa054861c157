package filters

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	schemavalidation "github.com/goliatone/go-responsive-iframe/internal/validation"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

var filterIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var knownFilterTypes = []any{
	interfaces.FilterTypeMarkupLanguage,
	interfaces.FilterTypeHTMLRestrictor,
	interfaces.FilterTypeTransformReversible,
	interfaces.FilterTypeTransformIrreversible,
}

// ValidateDescriptor checks the descriptor fields, compiles its settings
// schema and validates the default settings against it.
func ValidateDescriptor(desc interfaces.FilterDescriptor) error {
	err := validation.ValidateStruct(&desc,
		validation.Field(&desc.ID, validation.Required, validation.Match(filterIDPattern)),
		validation.Field(&desc.Title, validation.Required),
		validation.Field(&desc.Type, validation.Required, validation.In(knownFilterTypes...)),
		validation.Field(&desc.Factory, validation.NotNil),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, desc.ID, err)
	}

	if err := schemavalidation.ValidateSchema(desc.SettingsSchema); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDescriptor, desc.ID, err)
	}
	if err := schemavalidation.ValidatePayload(desc.SettingsSchema, desc.DefaultSettings); err != nil {
		return fmt.Errorf("%w: %s default settings: %w", ErrInvalidDescriptor, desc.ID, err)
	}
	return nil
}
