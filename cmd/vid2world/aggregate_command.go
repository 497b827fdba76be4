package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/pipeline"
)

func newAggregateCommand(ctx *commandContext) *cobra.Command {
	s := config.DefaultAggregateScenario()
	output := s.Output
	var preset string
	var widescreen bool

	cmd := &cobra.Command{
		Use:   "aggregate <root>",
		Short: "Build the labeled GT-row/prediction-row composite",
		Long: "Walks the root for gt_video.mp4/pred_video.mp4 pairs and composes\n" +
			"every ground truth on the top row and every prediction below it,\n" +
			"with a label column on the left. The rt1 preset switches to robot\n" +
			"footage geometry and pads the canvas to 16:9.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("preset") {
				switch config.CropPreset(preset) {
				case config.PresetCSGO:
					// Defaults already match.
				case config.PresetRT1:
					crop := config.CropFor(config.PresetRT1)
					s.Preset = config.PresetRT1
					s.TileWidth = crop.Width
					s.TileHeight = crop.Height
					s.PadWidescreen = true
					s.Output = "combined/all_combined_2.mp4"
					output = s.Output
				default:
					return errors.New("invalid preset (use 'csgo' or 'rt1')")
				}
			}
			if err := ctx.applyScenarioFile(&config.ScenarioFile{Aggregate: &s}); err != nil {
				return err
			}
			s.Root = config.NormalizeDirArg(args[0])
			if cmd.Flags().Changed("output") {
				s.Output = output
			}
			if cmd.Flags().Changed("widescreen") {
				s.PadWidescreen = widescreen
			}
			ctx.overridePolicy(cmd, &s.Policy)

			if err := ctx.ensureDeps(); err != nil {
				return err
			}
			p, err := pipeline.BuildAggregate(ctx.cfg, ctx.log, s)
			if errors.Is(err, pipeline.ErrNoSources) {
				ctx.log.Warn("No clip pairs found under %s", s.Root)
				return nil
			}
			if err != nil {
				return err
			}
			_, err = pipeline.Run(cmd.Context(), ctx.cfg, ctx.log, p)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "output path relative to the root")
	cmd.Flags().StringVar(&preset, "preset", string(s.Preset), "footage preset: csgo or rt1")
	cmd.Flags().BoolVar(&widescreen, "widescreen", s.PadWidescreen, "pad the canvas to a 16:9 aspect")
	return cmd
}
