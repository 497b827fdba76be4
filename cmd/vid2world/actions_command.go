package main

import (
	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/pipeline"
)

func newActionsCommand(ctx *commandContext) *cobra.Command {
	s := config.DefaultActionsScenario()
	output := s.Output

	cmd := &cobra.Command{
		Use:   "actions <root>",
		Short: "Build the action-conditioned prediction grid",
		Long: "Composes the eight pred_video_<key>.mp4 clips (w, a, s, d, up,\n" +
			"down, l, r) into a captioned grid next to the shared conditioned\n" +
			"frame. All eight clips are required.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.applyScenarioFile(&config.ScenarioFile{Actions: &s}); err != nil {
				return err
			}
			s.Root = config.NormalizeDirArg(args[0])
			if cmd.Flags().Changed("output") {
				s.Output = output
			}
			ctx.overridePolicy(cmd, &s.Policy)

			if err := ctx.ensureDeps(); err != nil {
				return err
			}
			p, err := pipeline.BuildActions(ctx.cfg, ctx.log, s)
			if err != nil {
				return err
			}
			_, err = pipeline.Run(cmd.Context(), ctx.cfg, ctx.log, p)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "output path relative to the root")
	return cmd
}
