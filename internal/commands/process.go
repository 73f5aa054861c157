package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-responsive-iframe/internal/logging"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

const (
	processTextMessageType = "filters.format.process_text"
	processTextOperation   = "format.process_text"
)

// TextProcessor runs text through a configured text format.
type TextProcessor interface {
	Process(ctx context.Context, formatID, text, langcode string) (string, error)
}

// ProcessTextCommand runs Text through the FormatID pipeline and writes the
// result to Output.
type ProcessTextCommand struct {
	FormatID string    `json:"format_id"`
	Text     string    `json:"text"`
	Langcode string    `json:"langcode,omitempty"`
	Output   io.Writer `json:"-"`
}

// Type implements command.Message.
func (ProcessTextCommand) Type() string { return processTextMessageType }

// Validate ensures a format and a destination are present before handlers execute.
func (cmd ProcessTextCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.FormatID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("filters.format.process_text.format_required", "format id is required")
			}
			return nil
		})),
		validation.Field(&cmd.Output, validation.NotNil),
	)
}

var _ command.Commander[ProcessTextCommand] = (*ProcessTextHandler)(nil)

// ProcessTextHandler executes ProcessTextCommand against a TextProcessor.
type ProcessTextHandler struct {
	inner *Handler[ProcessTextCommand]
}

// NewProcessTextHandler binds the handler to processor.
func NewProcessTextHandler(processor TextProcessor, logger interfaces.Logger, opts ...HandlerOption[ProcessTextCommand]) *ProcessTextHandler {
	if processor == nil {
		panic("commands: text processor cannot be nil")
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ProcessTextCommand) error {
		out, err := processor.Process(ctx, strings.TrimSpace(msg.FormatID), msg.Text, msg.Langcode)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(msg.Output, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logging.WithFields(logger, map[string]any{
			"format":   msg.FormatID,
			"langcode": msg.Langcode,
			"bytes":    len(out),
		}).Debug("filters.format.process_text.written")
		return nil
	}

	baseOpts := []HandlerOption[ProcessTextCommand]{
		WithLogger[ProcessTextCommand](logger),
		WithOperation[ProcessTextCommand](processTextOperation),
	}
	baseOpts = append(baseOpts, opts...)

	return &ProcessTextHandler{inner: NewHandler(exec, baseOpts...)}
}

// Execute satisfies command.Commander[ProcessTextCommand].
func (h *ProcessTextHandler) Execute(ctx context.Context, msg ProcessTextCommand) error {
	return h.inner.Execute(ctx, msg)
}
