package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/check"
	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/logging"
)

// commandContext carries the resolved global configuration and logger into
// every subcommand.
type commandContext struct {
	cfg *config.Config
	log *logging.Logger
}

func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()
	ctx := &commandContext{cfg: &cfg}

	var colorMode string
	var policy string

	root := &cobra.Command{
		Use:   "vid2world",
		Short: "Assemble comparison and showcase videos for the vid2world page",
		Long: "vid2world composes prediction and ground-truth clips into the grid,\n" +
			"aggregate, comparison, and action-conditioned videos embedded in the\n" +
			"project page, plus figure rasterization from PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ColorMode = config.ColorMode(colorMode)
			if cmd.Flags().Changed("policy") {
				p, err := config.ParsePolicy(policy)
				if err != nil {
					return err
				}
				cfg.Policy = p
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			ctx.log = log
			display.PrintBanner()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ctx.log != nil {
				_ = ctx.log.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging and the sources table")
	pf.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "resolve and report without encoding")
	pf.StringVar(&colorMode, "color", string(config.ColorAuto), "color output: auto, always, never")
	pf.StringVar(&cfg.LogFile, "log", "", "also append log output to this file")
	pf.StringVarP(&cfg.ScenarioFile, "config", "c", "", "TOML file overriding scenario settings")
	pf.StringVar(&policy, "policy", "", "source exhaustion policy: hold or loop")

	root.AddCommand(
		newGridCommand(ctx),
		newAggregateCommand(ctx),
		newCompareCommand(ctx),
		newActionsCommand(ctx),
		newRasterizeCommand(ctx),
		newCheckCommand(ctx),
	)
	return root
}

// applyScenarioFile merges the optional TOML override into the pre-wired
// scenario pointers of sf.
func (c *commandContext) applyScenarioFile(sf *config.ScenarioFile) error {
	if c.cfg.ScenarioFile == "" {
		return nil
	}
	return config.ApplyScenarioFile(c.cfg.ScenarioFile, sf)
}

// ensureDeps validates ffmpeg availability before an encoding run. Skipped
// for dry runs, which never invoke ffmpeg.
func (c *commandContext) ensureDeps() error {
	if c.cfg.DryRun {
		return nil
	}
	if err := check.CheckDeps(); err != nil {
		return fmt.Errorf("dependency check: %w", err)
	}
	return nil
}

// overridePolicy applies a --policy flag passed on the command line on top of
// the scenario's own default.
func (c *commandContext) overridePolicy(cmd *cobra.Command, p *config.ExhaustPolicy) {
	if cmd.Flags().Changed("policy") || cmd.InheritedFlags().Changed("policy") {
		*p = c.cfg.Policy
	}
}
