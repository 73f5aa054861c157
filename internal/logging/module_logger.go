package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

const (
	rootModule     = "filters"
	managerModule  = "filters.manager"
	formatModule   = "filters.format"
	commandsModule = "filters.commands"
)

const (
	fieldFormat   = "format"
	fieldFilter   = "filter"
	fieldLangcode = "langcode"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ManagerLogger returns the logger namespace reserved for the filter manager.
func ManagerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, managerModule)
}

// FormatLogger returns the logger namespace reserved for text format pipelines.
func FormatLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, formatModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithFilterContext enriches the logger with format, filter and langcode
// fields. Empty values are ignored.
func WithFilterContext(logger interfaces.Logger, format, filter, langcode string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(format); trimmed != "" {
		fields[fieldFormat] = trimmed
	}
	if trimmed := strings.TrimSpace(filter); trimmed != "" {
		fields[fieldFilter] = trimmed
	}
	if trimmed := strings.TrimSpace(langcode); trimmed != "" {
		fields[fieldLangcode] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
