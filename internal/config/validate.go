package config

import (
	"fmt"

	"github.com/conn-castle/ownerbench/internal/messages"
)

var validTiers = map[string]struct{}{
	TierSmall:  {},
	TierMedium: {},
	TierBig:    {},
}

var validColorModes = map[string]struct{}{
	ColorAuto:   {},
	ColorAlways: {},
	ColorNever:  {},
}

var validFormats = map[string]struct{}{
	FormatText: {},
	FormatJSON: {},
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	sizes := []struct {
		key   string
		value int
	}{
		{"load.small", c.Load.Small},
		{"load.medium", c.Load.Medium},
		{"load.big", c.Load.Big},
	}
	for _, size := range sizes {
		if size.value <= 0 {
			return fmt.Errorf(messages.ConfigSizePositiveFmt, path, size.key, size.value)
		}
	}

	seen := make(map[string]struct{}, len(c.Load.Tiers))
	for _, tier := range c.Load.Tiers {
		if _, ok := validTiers[tier]; !ok {
			return fmt.Errorf(messages.ConfigTierInvalidFmt, path, tier)
		}
		if _, dup := seen[tier]; dup {
			return fmt.Errorf(messages.ConfigTierDuplicateFmt, path, tier)
		}
		seen[tier] = struct{}{}
	}

	if _, ok := validColorModes[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigColorInvalidFmt, path, c.Output.Color)
	}
	if _, ok := validFormats[c.Output.Format]; !ok {
		return fmt.Errorf(messages.ConfigFormatInvalidFmt, path, c.Output.Format)
	}
	return nil
}
