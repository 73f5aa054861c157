package filters

import (
	"fmt"

	"github.com/goliatone/go-responsive-iframe/internal/filters/iframe"
	"github.com/goliatone/go-responsive-iframe/internal/filters/markdown"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// BuiltInDescriptors returns the filters shipped with the module.
func BuiltInDescriptors() []interfaces.FilterDescriptor {
	return []interfaces.FilterDescriptor{
		iframe.Descriptor(),
		markdown.Descriptor(),
	}
}

// RegisterBuiltIns registers the built-in filters on manager. When ids is
// empty every built-in is registered.
func RegisterBuiltIns(manager interfaces.FilterManager, ids []string) error {
	if manager == nil {
		return fmt.Errorf("filters: manager is required")
	}

	available := make(map[string]interfaces.FilterDescriptor)
	for _, desc := range BuiltInDescriptors() {
		available[normalizeID(desc.ID)] = desc
	}

	if len(ids) == 0 {
		for _, desc := range BuiltInDescriptors() {
			if err := manager.Register(desc); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range ids {
		key := normalizeID(id)
		if key == "" {
			continue
		}
		desc, ok := available[key]
		if !ok {
			return fmt.Errorf("%w: built-in %q", ErrFilterNotFound, id)
		}
		if err := manager.Register(desc); err != nil {
			return err
		}
	}
	return nil
}
