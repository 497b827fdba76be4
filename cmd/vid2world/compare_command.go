package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/pipeline"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	s := config.DefaultCompareScenario()
	outputDir := s.OutputDir

	cmd := &cobra.Command{
		Use:   "compare <root>",
		Short: "Build one method comparison strip per subdirectory",
		Long: "Treats each subdirectory of the root as one comparison set: its\n" +
			"suffix-tagged clips (_gt, _ours, _fast, _hq) become labeled columns\n" +
			"of a single strip, ordered ground truth first. Directories fail\n" +
			"independently.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.applyScenarioFile(&config.ScenarioFile{Compare: &s}); err != nil {
				return err
			}
			s.Root = config.NormalizeDirArg(args[0])
			if cmd.Flags().Changed("output-dir") {
				s.OutputDir = outputDir
			}
			ctx.overridePolicy(cmd, &s.Policy)

			if err := ctx.ensureDeps(); err != nil {
				return err
			}
			plans, err := pipeline.BuildCompare(ctx.cfg, ctx.log, s)
			if errors.Is(err, pipeline.ErrNoSources) {
				ctx.log.Warn("No comparison sets found under %s", s.Root)
				return nil
			}
			if err != nil {
				return err
			}
			stats := pipeline.RunBatch(cmd.Context(), ctx.cfg, ctx.log, plans)
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d comparison strips failed", stats.Failed, stats.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", outputDir, "output directory relative to the root")
	return cmd
}
