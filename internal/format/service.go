package format

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-responsive-iframe/internal/logging"
	"github.com/goliatone/go-responsive-iframe/internal/runtimeconfig"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

var (
	// ErrFormatNotFound is returned when an unknown format ID is requested.
	ErrFormatNotFound = errors.New("format: format not found")
	// ErrDuplicateFormat indicates a format ID was added twice.
	ErrDuplicateFormat = errors.New("format: duplicate format")
	// ErrFormatIDRequired indicates an empty format ID.
	ErrFormatIDRequired = errors.New("format: format id is required")
	// ErrFilterNotInFormat is returned when a format does not enable the requested filter.
	ErrFilterNotInFormat = errors.New("format: filter not enabled in format")
	// ErrManagerRequired indicates the service was built without a filter manager.
	ErrManagerRequired = errors.New("format: filter manager is required")
)

// Format is an ordered chain of filter instances.
type Format struct {
	ID      string
	Name    string
	filters []stage
}

// FilterIDs returns the enabled filter IDs in execution order.
func (f *Format) FilterIDs() []string {
	ids := make([]string, len(f.filters))
	for i, s := range f.filters {
		ids[i] = s.id
	}
	return ids
}

type stage struct {
	id     string
	weight int
	filter interfaces.Filter
}

// Service holds the configured formats and runs text through them.
type Service struct {
	mu      sync.RWMutex
	manager interfaces.FilterManager
	formats map[string]*Format
	logger  interfaces.Logger
	metrics interfaces.FilterMetrics
}

// Option customises the service.
type Option func(*Service)

// WithLogger sets the logger used for processing diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the recorder for per-filter timings and errors.
func WithMetrics(metrics interfaces.FilterMetrics) Option {
	return func(s *Service) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// NewService constructs an empty format service backed by manager.
func NewService(manager interfaces.FilterManager, opts ...Option) (*Service, error) {
	if manager == nil {
		return nil, ErrManagerRequired
	}
	svc := &Service{
		manager: manager,
		formats: make(map[string]*Format),
		logger:  logging.NoOp(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// AddFormat instantiates the enabled filters of cfg through the manager and
// stores the format. Filters run in ascending weight; ties keep config order.
func (s *Service) AddFormat(cfg runtimeconfig.FormatConfig) (*Format, error) {
	id := normalizeID(cfg.ID)
	if id == "" {
		return nil, ErrFormatIDRequired
	}

	stages := make([]stage, 0, len(cfg.Filters))
	for _, filterCfg := range cfg.Filters {
		if !filterCfg.Status {
			continue
		}
		instance, err := s.manager.CreateInstance(filterCfg.ID, filterCfg.Settings)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", id, err)
		}
		stages = append(stages, stage{
			id:     normalizeID(filterCfg.ID),
			weight: filterCfg.Weight,
			filter: instance,
		})
	}
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].weight < stages[j].weight
	})

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = id
	}
	format := &Format{ID: id, Name: name, filters: stages}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.formats[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateFormat, id)
	}
	s.formats[id] = format

	logging.WithFields(s.logger, map[string]any{
		"format":  id,
		"filters": format.FilterIDs(),
	}).Debug("filters.format.added")
	return format, nil
}

// Format returns the stored format.
func (s *Service) Format(id string) (*Format, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	format, ok := s.formats[normalizeID(id)]
	return format, ok
}

// Filter returns the instance of filterID configured inside formatID.
func (s *Service) Filter(formatID, filterID string) (interfaces.Filter, error) {
	format, ok := s.Format(formatID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatNotFound, formatID)
	}
	key := normalizeID(filterID)
	for _, st := range format.filters {
		if st.id == key {
			return st.filter, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrFilterNotInFormat, format.ID, filterID)
}

// Formats lists the configured format IDs in lexical order.
func (s *Service) Formats() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.formats))
	for id := range s.formats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Process runs text through every filter of the format. Whitespace-only text
// is returned unchanged without invoking any filter.
func (s *Service) Process(ctx context.Context, formatID, text, langcode string) (string, error) {
	format, ok := s.Format(formatID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFormatNotFound, formatID)
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.FromContext(ctx, s.logger)
	for _, st := range format.filters {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		started := time.Now()
		out, err := st.filter.Process(ctx, text, langcode)
		elapsed := time.Since(started)
		s.metrics.ObserveProcessDuration(st.id, elapsed)

		filterLogger := logging.WithFilterContext(logger, format.ID, st.id, langcode)
		if err != nil {
			s.metrics.IncrementProcessError(st.id)
			logging.WithFields(filterLogger, map[string]any{
				"error": err,
			}).Error("filters.format.process_failed")
			return "", fmt.Errorf("format %s: filter %s: %w", format.ID, st.id, err)
		}
		logging.WithFields(filterLogger, map[string]any{
			"duration_ms": elapsed.Milliseconds(),
		}).Debug("filters.format.filter_applied")
		text = out
	}

	logging.WithFields(logger, map[string]any{
		"format":   format.ID,
		"langcode": langcode,
	}).Debug("filters.format.process_completed")
	return text, nil
}

// Tips returns each filter's tips in execution order, skipping empty ones.
func (s *Service) Tips(formatID, locale string, long bool) ([]string, error) {
	format, ok := s.Format(formatID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatNotFound, formatID)
	}
	tips := make([]string, 0, len(format.filters))
	for _, st := range format.filters {
		if tip := st.filter.Tips(locale, long); tip != "" {
			tips = append(tips, tip)
		}
	}
	return tips, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveProcessDuration(string, time.Duration) {}

func (noopMetrics) IncrementProcessError(string) {}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
