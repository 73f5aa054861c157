package responsiveiframe

import "github.com/goliatone/go-responsive-iframe/internal/filters/iframe"

// Settings configures the wrapper element and its class attribute.
type Settings = iframe.Config

// DefaultSettings returns the figure/media-wrapper configuration.
func DefaultSettings() Settings {
	return iframe.DefaultConfig()
}

// Transform wraps every iframe in text with the configured wrapper element.
// The language code is accepted for parity with other filters and ignored.
func Transform(text, langcode string, settings Settings) string {
	return iframe.Transform(text, langcode, settings)
}
