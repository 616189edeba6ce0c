package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt         = "read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %v"
	ConfigResolveHomeErrFmt   = "resolve home dir: %w"
	ConfigExpandPathErrFmt    = "expand config path %s: %w"

	ConfigSizePositiveFmt  = "%s: %s must be positive (got %d)"
	ConfigTierInvalidFmt   = "%s: load.tiers entry %q must be one of small, medium, big"
	ConfigTierDuplicateFmt = "%s: load.tiers lists %q more than once"
	ConfigColorInvalidFmt  = "%s: output.color %q must be one of auto, always, never"
	ConfigFormatInvalidFmt = "%s: output.format %q must be one of text, json"
)
