package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/ownerbench/internal/harness"
	"github.com/conn-castle/ownerbench/internal/menu"
	"github.com/conn-castle/ownerbench/internal/messages"
)

var newMenuUI = func() menu.UI { return menu.NewHuhUI() }

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.MenuUse,
		Short: messages.MenuShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			tiers, err := harness.TiersFromConfig(cfg.Load)
			if err != nil {
				return err
			}
			catalog := harness.Catalog(tiers)
			choices := make([]menu.Choice, len(catalog))
			for i, s := range catalog {
				choices[i] = menu.Choice{Key: s.Name, Label: s.Title}
			}

			// A failing suite is reported and the menu keeps going.
			return menu.Run(newMenuUI(), choices, func(key string) error {
				s, _ := harness.Lookup(catalog, key)
				_, err := runSuites(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, []harness.Suite{s})
				return err
			})
		},
	}
}
