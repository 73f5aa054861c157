package commands

import (
	"strings"

	"github.com/goliatone/go-responsive-iframe/internal/logging"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// CommandLogger returns a logger scoped to a command module with consistent
// structured fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.CommandsLogger(provider)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
