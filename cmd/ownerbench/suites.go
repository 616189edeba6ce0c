package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ownerbench/internal/harness"
	"github.com/conn-castle/ownerbench/internal/messages"
)

func newSuitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SuitesUse,
		Short: messages.SuitesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range harness.Catalog(nil) {
				_, _ = fmt.Fprintf(out, messages.SuitesLineFmt, s.Name, s.Title)
			}
			return nil
		},
	}
}
