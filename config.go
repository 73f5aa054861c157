package responsiveiframe

import "github.com/goliatone/go-responsive-iframe/internal/runtimeconfig"

var (
	ErrDefaultFormatRequired   = runtimeconfig.ErrDefaultFormatRequired
	ErrDefaultFormatUnknown    = runtimeconfig.ErrDefaultFormatUnknown
	ErrFormatIDRequired        = runtimeconfig.ErrFormatIDRequired
	ErrFormatDuplicate         = runtimeconfig.ErrFormatDuplicate
	ErrFormatFilterIDRequired  = runtimeconfig.ErrFormatFilterIDRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrMetricsNamespaceInvalid = runtimeconfig.ErrMetricsNamespaceInvalid
)

type (
	Config             = runtimeconfig.Config
	FormatConfig       = runtimeconfig.FormatConfig
	FormatFilterConfig = runtimeconfig.FormatFilterConfig
	TranslationConfig  = runtimeconfig.TranslationConfig
	LoggingConfig      = runtimeconfig.LoggingConfig
	MetricsConfig      = runtimeconfig.MetricsConfig
	Features           = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML configuration file layered over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}

// ParseConfig decodes YAML configuration layered over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	return runtimeconfig.Parse(data)
}
