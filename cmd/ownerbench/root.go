package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/ownerbench/internal/config"
	"github.com/conn-castle/ownerbench/internal/messages"
)

const (
	flagConfig  = "config"
	flagNoColor = "no-color"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	cmd.PersistentFlags().String(flagConfig, "", messages.RootConfigFlag)
	cmd.PersistentFlags().Bool(flagNoColor, false, messages.RootNoColorFlag)

	cmd.AddCommand(
		newRunCmd(),
		newSuitesCmd(),
		newMenuCmd(),
	)
	return cmd
}

// loadSettings resolves and loads the config file named by --config, then
// applies the colour mode. --no-color wins over the config.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	flagValue, _ := cmd.Flags().GetString(flagConfig)
	path, explicit, err := config.ResolvePath(flagValue)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadFailedFmt, err)
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigLoadFailedFmt, err)
	}

	noColor, _ := cmd.Flags().GetBool(flagNoColor)
	applyColorMode(cfg.Output.Color, noColor)
	return cfg, nil
}

// applyColorMode sets the fatih/color global. auto keeps the library's own
// terminal detection.
func applyColorMode(mode string, noColor bool) {
	switch {
	case noColor || mode == config.ColorNever:
		color.NoColor = true
	case mode == config.ColorAlways:
		color.NoColor = false
	}
}
