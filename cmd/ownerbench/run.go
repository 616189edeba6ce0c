package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ownerbench/internal/config"
	"github.com/conn-castle/ownerbench/internal/harness"
	"github.com/conn-castle/ownerbench/internal/messages"
	"github.com/conn-castle/ownerbench/internal/progress"
	"github.com/conn-castle/ownerbench/internal/terminal"
)

var isTerminalWriter = terminal.IsTerminalWriter

const (
	flagTiers      = "tiers"
	flagFormat     = "format"
	flagNoProgress = "no-progress"
	flagNoLoad     = "no-load"
)

type runOptions struct {
	tiers      []string
	format     string
	noProgress bool
	noLoad     bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return err
			}
			suites, err := selectSuites(cfg, args)
			if err != nil {
				return err
			}
			failed, err := runSuites(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, suites)
			if err != nil {
				return err
			}
			if failed {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&opts.tiers, flagTiers, nil, messages.RunFlagTiers)
	cmd.Flags().StringVar(&opts.format, flagFormat, "", messages.RunFlagFormat)
	cmd.Flags().BoolVar(&opts.noProgress, flagNoProgress, false, messages.RunFlagNoProgress)
	cmd.Flags().BoolVar(&opts.noLoad, flagNoLoad, false, messages.RunFlagNoLoad)
	return cmd
}

// apply layers command-line overrides over cfg and revalidates it.
func (o runOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed(flagTiers) {
		cfg.Load.Tiers = o.tiers
	}
	if o.noLoad {
		cfg.Load.Tiers = []string{}
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.noProgress {
		off := false
		cfg.Output.Progress = &off
	}
	if err := cfg.Validate(messages.RunFlagsSource); err != nil {
		return fmt.Errorf("%w: %w", config.ErrConfigValidation, err)
	}
	return nil
}

// selectSuites returns the named suites in the given order, or every suite
// when names is empty.
func selectSuites(cfg *config.Config, names []string) ([]harness.Suite, error) {
	tiers, err := harness.TiersFromConfig(cfg.Load)
	if err != nil {
		return nil, err
	}
	catalog := harness.Catalog(tiers)
	if len(names) == 0 {
		return catalog, nil
	}
	selected := make([]harness.Suite, 0, len(names))
	for _, name := range names {
		s, ok := harness.Lookup(catalog, name)
		if !ok {
			return nil, fmt.Errorf(messages.RunUnknownSuite, name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// runSuites runs suites and writes the report to out. Progress bars go to
// errOut, and only when it is a terminal. It reports whether any case failed.
func runSuites(out, errOut io.Writer, cfg *config.Config, suites []harness.Suite) (bool, error) {
	runner := &harness.Runner{}
	var bar *progress.Bar
	if cfg.Output.ProgressEnabled() && isTerminalWriter(errOut) {
		bar = progress.New(errOut, progress.DefaultWidth)
		runner.Progress = bar.Update
	}

	asJSON := cfg.Output.Format == config.FormatJSON
	var all []harness.Result
	for _, s := range suites {
		results := make([]harness.Result, 0, len(s.Cases))
		for _, c := range s.Cases {
			results = append(results, runner.RunCase(s.Name, c))
			if bar != nil {
				bar.Clear()
			}
		}
		if !asJSON {
			writeTextSuite(out, s.Title, results)
		}
		all = append(all, results...)
	}

	failed := harness.Failed(all)
	if asJSON {
		return failed, writeJSONReport(out, all)
	}
	writeTextSummary(out, failed)
	return failed, nil
}
