package responsiveiframe

import (
	"context"
	"strings"

	"github.com/goliatone/go-responsive-iframe/internal/commands"
	"github.com/goliatone/go-responsive-iframe/internal/di"
	"github.com/goliatone/go-responsive-iframe/internal/format"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// Option customises module wiring.
type Option = di.Option

var (
	WithLoggerProvider    = di.WithLoggerProvider
	WithTranslator        = di.WithTranslator
	WithXSSFilter         = di.WithXSSFilter
	WithMetrics           = di.WithMetrics
	WithMetricsRegisterer = di.WithMetricsRegisterer
)

// ErrFormatNotFound is returned when processing an unknown text format.
var ErrFormatNotFound = format.ErrFormatNotFound

// ProcessTextCommand runs text through a format and writes the result.
type ProcessTextCommand = commands.ProcessTextCommand

// Module represents the text filter runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Manager returns the filter registry.
func (m *Module) Manager() interfaces.FilterManager {
	return m.container.FilterManager()
}

// Process runs text through formatID. An empty formatID selects the default format.
func (m *Module) Process(ctx context.Context, formatID, text, langcode string) (string, error) {
	return m.container.FormatService().Process(ctx, m.resolveFormat(formatID), text, langcode)
}

// Tips returns the filter tips of formatID.
func (m *Module) Tips(formatID, locale string, long bool) ([]string, error) {
	return m.container.FormatService().Tips(m.resolveFormat(formatID), locale, long)
}

// Formats lists configured format IDs.
func (m *Module) Formats() []string {
	return m.container.FormatService().Formats()
}

// Execute dispatches a ProcessTextCommand through the command handler.
func (m *Module) Execute(ctx context.Context, cmd ProcessTextCommand) error {
	if strings.TrimSpace(cmd.FormatID) == "" {
		cmd.FormatID = m.container.Config.DefaultFormat
	}
	return m.container.ProcessTextHandler().Execute(ctx, cmd)
}

// SettingsForm describes the settings inputs of filterID as configured
// inside formatID. Filters without settings return nil.
func (m *Module) SettingsForm(formatID, filterID, locale string) ([]interfaces.FormField, error) {
	instance, err := m.container.FormatService().Filter(m.resolveFormat(formatID), filterID)
	if err != nil {
		return nil, err
	}
	provider, ok := instance.(interfaces.SettingsFormProvider)
	if !ok {
		return nil, nil
	}
	return provider.SettingsForm(locale), nil
}

func (m *Module) resolveFormat(formatID string) string {
	if strings.TrimSpace(formatID) == "" {
		return m.container.Config.DefaultFormat
	}
	return formatID
}
