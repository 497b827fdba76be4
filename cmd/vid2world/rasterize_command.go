package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/pdf"
)

func newRasterizeCommand(ctx *commandContext) *cobra.Command {
	s := config.DefaultRasterizeScenario()
	dpi := s.DPI

	cmd := &cobra.Command{
		Use:   "rasterize <dir>",
		Short: "Convert figure PDFs to PNG (first page)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.applyScenarioFile(&config.ScenarioFile{Rasterize: &s}); err != nil {
				return err
			}
			s.Dir = config.NormalizeDirArg(args[0])
			if cmd.Flags().Changed("dpi") {
				s.DPI = dpi
			}
			if err := s.Validate(); err != nil {
				return err
			}

			stats, err := pdf.RasterizeDir(cmd.Context(), ctx.log, s.Dir, s.DPI, ctx.cfg.DryRun)
			if err != nil {
				return err
			}
			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d PDFs failed", stats.Failed, stats.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&dpi, "dpi", dpi, "rasterization resolution")
	return cmd
}
