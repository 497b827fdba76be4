package main

import (
	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/pipeline"
)

func newGridCommand(ctx *commandContext) *cobra.Command {
	s := config.DefaultGridScenario()
	output := s.Output
	csgoCount := s.CSGOCount

	cmd := &cobra.Command{
		Use:   "grid <root>",
		Short: "Build the 4x4 showcase grid with blank slots",
		Long: "Arranges appendix prediction clips on the outer rows and csgo clips\n" +
			"on the middle-row edges of a tiled grid, leaving the remaining slots\n" +
			"black. Exhausted clips loop by default.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.applyScenarioFile(&config.ScenarioFile{Grid: &s}); err != nil {
				return err
			}
			s.Root = config.NormalizeDirArg(args[0])
			if cmd.Flags().Changed("output") {
				s.Output = output
			}
			if cmd.Flags().Changed("csgo-count") {
				s.CSGOCount = csgoCount
			}
			ctx.overridePolicy(cmd, &s.Policy)

			if err := ctx.ensureDeps(); err != nil {
				return err
			}
			p, err := pipeline.BuildGrid(ctx.cfg, ctx.log, s)
			if err != nil {
				return err
			}
			_, err = pipeline.Run(cmd.Context(), ctx.cfg, ctx.log, p)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "output path relative to the root")
	cmd.Flags().IntVar(&csgoCount, "csgo-count", csgoCount, "max csgo clips placed on the middle rows")
	return cmd
}
