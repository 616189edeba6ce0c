package config

// Load tier names, smallest first.
const (
	TierSmall  = "small"
	TierMedium = "medium"
	TierBig    = "big"
)

// Color modes for [output] color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Report formats for [output] format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the ownerbench configuration file.
type Config struct {
	Load   LoadConfig   `toml:"load"`
	Output OutputConfig `toml:"output"`
}

// LoadConfig sizes the load cases.
type LoadConfig struct {
	Small  int      `toml:"small"`
	Medium int      `toml:"medium"`
	Big    int      `toml:"big"`
	Tiers  []string `toml:"tiers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Color    string `toml:"color"`
	Progress *bool  `toml:"progress"`
	Format   string `toml:"format"`
}

// Default returns the built-in configuration with every load tier enabled.
func Default() *Config {
	progress := true
	return &Config{
		Load: LoadConfig{
			Small:  1_000,
			Medium: 100_000,
			Big:    10_000_000,
			Tiers:  []string{TierSmall, TierMedium, TierBig},
		},
		Output: OutputConfig{
			Color:    ColorAuto,
			Progress: &progress,
			Format:   FormatText,
		},
	}
}

// Size returns the element count for tier, or 0 for an unknown tier.
func (l LoadConfig) Size(tier string) int {
	switch tier {
	case TierSmall:
		return l.Small
	case TierMedium:
		return l.Medium
	case TierBig:
		return l.Big
	default:
		return 0
	}
}

// ProgressEnabled reports whether progress bars were requested.
func (o OutputConfig) ProgressEnabled() bool {
	return o.Progress == nil || *o.Progress
}
