package filters

import (
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-responsive-iframe/internal/i18n"
	"github.com/goliatone/go-responsive-iframe/internal/logging"
	"github.com/goliatone/go-responsive-iframe/internal/markup"
	schemavalidation "github.com/goliatone/go-responsive-iframe/internal/validation"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// Manager is the thread-safe in-memory implementation of interfaces.FilterManager.
type Manager struct {
	mu          sync.RWMutex
	descriptors map[string]interfaces.FilterDescriptor
	deps        interfaces.FilterDependencies
	logger      interfaces.Logger
}

// ManagerOption customises manager behaviour.
type ManagerOption func(*Manager)

// WithXSSFilter overrides the sanitizer handed to filter factories.
func WithXSSFilter(filter interfaces.XSSFilter) ManagerOption {
	return func(m *Manager) {
		if filter != nil {
			m.deps.XSS = filter
		}
	}
}

// WithTranslator overrides the translator handed to filter factories.
func WithTranslator(translator interfaces.Translator) ManagerOption {
	return func(m *Manager) {
		if translator != nil {
			m.deps.Translator = translator
		}
	}
}

// WithLogger attaches the logger used for registration diagnostics. Filter
// factories receive the same logger.
func WithLogger(logger interfaces.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
			m.deps.Logger = logger
		}
	}
}

// NewManager constructs an empty manager.
func NewManager(opts ...ManagerOption) *Manager {
	manager := &Manager{
		descriptors: make(map[string]interfaces.FilterDescriptor),
		deps: interfaces.FilterDependencies{
			XSS:        markup.NewXSSFilter(),
			Translator: i18n.NoOpTranslator(),
			Logger:     logging.NoOp(),
		},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(manager)
	}
	return manager
}

// Register stores a descriptor if it passes validation and the ID is free.
func (m *Manager) Register(desc interfaces.FilterDescriptor) error {
	desc.ID = normalizeID(desc.ID)
	if err := ValidateDescriptor(desc); err != nil {
		logging.WithFields(m.logger, map[string]any{
			"filter": desc.ID,
			"error":  err,
		}).Error("filters.manager.register_failed")
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.descriptors[desc.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFilter, desc.ID)
	}
	m.descriptors[desc.ID] = desc

	logging.WithFields(m.logger, map[string]any{
		"filter": desc.ID,
		"type":   string(desc.Type),
	}).Debug("filters.manager.registered")
	return nil
}

// Get returns the stored descriptor.
func (m *Manager) Get(id string) (interfaces.FilterDescriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	desc, ok := m.descriptors[normalizeID(id)]
	return desc, ok
}

// List returns all descriptors ordered by weight, then ID.
func (m *Manager) List() []interfaces.FilterDescriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]interfaces.FilterDescriptor, 0, len(m.descriptors))
	for _, desc := range m.descriptors {
		result = append(result, desc)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Weight != result[j].Weight {
			return result[i].Weight < result[j].Weight
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Remove deletes the descriptor if it exists.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.descriptors, normalizeID(id))
}

// CreateInstance merges settings over the descriptor defaults, validates the
// result against the settings schema and builds the filter.
func (m *Manager) CreateInstance(id string, settings interfaces.FilterSettings) (interfaces.Filter, error) {
	desc, ok := m.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFilterNotFound, id)
	}

	merged := mergeSettings(desc.DefaultSettings, settings)
	if err := schemavalidation.ValidatePayload(desc.SettingsSchema, merged); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, desc.ID, err)
	}

	filter, err := desc.Factory(merged, m.deps)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, desc.ID, err)
	}
	return filter, nil
}

var _ interfaces.FilterManager = (*Manager)(nil)

func mergeSettings(defaults, overrides interfaces.FilterSettings) interfaces.FilterSettings {
	merged := make(interfaces.FilterSettings, len(defaults)+len(overrides))
	maps.Copy(merged, defaults)
	maps.Copy(merged, overrides)
	return merged
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
