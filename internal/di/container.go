package di

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-responsive-iframe/internal/commands"
	"github.com/goliatone/go-responsive-iframe/internal/filters"
	"github.com/goliatone/go-responsive-iframe/internal/format"
	"github.com/goliatone/go-responsive-iframe/internal/i18n"
	"github.com/goliatone/go-responsive-iframe/internal/logging"
	"github.com/goliatone/go-responsive-iframe/internal/logging/gologger"
	"github.com/goliatone/go-responsive-iframe/internal/runtimeconfig"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// Container wires the filter manager, text formats and their collaborators
// from runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	translator     interfaces.Translator
	xss            interfaces.XSSFilter
	metrics        interfaces.FilterMetrics
	registerer     prometheus.Registerer

	manager     *filters.Manager
	formats     *format.Service
	processText *commands.ProcessTextHandler
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider derived from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTranslator overrides the embedded translation catalogue.
func WithTranslator(translator interfaces.Translator) Option {
	return func(c *Container) {
		c.translator = translator
	}
}

// WithXSSFilter overrides the sanitizer applied to wrapper elements.
func WithXSSFilter(xss interfaces.XSSFilter) Option {
	return func(c *Container) {
		c.xss = xss
	}
}

// WithMetrics supplies a custom metrics recorder.
func WithMetrics(metrics interfaces.FilterMetrics) Option {
	return func(c *Container) {
		c.metrics = metrics
	}
}

// WithMetricsRegisterer selects where Prometheus collectors are registered
// when the metrics feature is enabled.
func WithMetricsRegisterer(registerer prometheus.Registerer) Option {
	return func(c *Container) {
		c.registerer = registerer
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureTranslator(); err != nil {
		return nil, err
	}
	if err := c.configureMetrics(); err != nil {
		return nil, err
	}
	if err := c.configureFormats(); err != nil {
		return nil, err
	}

	c.processText = commands.NewProcessTextHandler(
		c.formats,
		commands.CommandLogger(c.loggerProvider, "format"),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logger: %w", err)
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureTranslator() error {
	if c.translator != nil {
		return nil
	}

	var (
		fixture *i18n.Fixture
		err     error
	)
	if path := strings.TrimSpace(c.Config.Translations.Path); path != "" {
		fixture, err = i18n.NewLoader(path).Load(context.Background())
	} else {
		fixture, err = i18n.DefaultFixture()
	}
	if err != nil {
		return fmt.Errorf("di: configure translations: %w", err)
	}
	if locale := strings.TrimSpace(c.Config.DefaultLocale); locale != "" {
		fixture.Config.DefaultLocale = locale
	}
	c.translator = i18n.NewCatalog(fixture)
	return nil
}

func (c *Container) configureMetrics() error {
	if c.metrics != nil {
		return nil
	}
	if !c.Config.Features.Metrics {
		c.metrics = filters.NoOpMetrics()
		return nil
	}
	registerer := c.registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	metrics, err := filters.NewPrometheusMetrics(registerer, c.Config.Metrics.Namespace)
	if err != nil {
		return fmt.Errorf("di: configure metrics: %w", err)
	}
	c.metrics = metrics
	return nil
}

func (c *Container) configureFormats() error {
	managerOpts := []filters.ManagerOption{
		filters.WithTranslator(c.translator),
		filters.WithLogger(logging.ManagerLogger(c.loggerProvider)),
	}
	if c.xss != nil {
		managerOpts = append(managerOpts, filters.WithXSSFilter(c.xss))
	}
	c.manager = filters.NewManager(managerOpts...)
	if err := filters.RegisterBuiltIns(c.manager, nil); err != nil {
		return fmt.Errorf("di: register filters: %w", err)
	}

	formats, err := format.NewService(c.manager,
		format.WithLogger(logging.FormatLogger(c.loggerProvider)),
		format.WithMetrics(c.metrics),
	)
	if err != nil {
		return err
	}
	for _, formatCfg := range c.Config.Formats {
		if _, err := formats.AddFormat(formatCfg); err != nil {
			return fmt.Errorf("di: configure formats: %w", err)
		}
	}
	c.formats = formats
	return nil
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) Translator() interfaces.Translator {
	return c.translator
}

func (c *Container) Metrics() interfaces.FilterMetrics {
	return c.metrics
}

func (c *Container) FilterManager() *filters.Manager {
	return c.manager
}

func (c *Container) FormatService() *format.Service {
	return c.formats
}

func (c *Container) ProcessTextHandler() *commands.ProcessTextHandler {
	return c.processText
}
