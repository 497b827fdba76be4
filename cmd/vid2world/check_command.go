package main

import (
	"github.com/spf13/cobra"

	"github.com/knightnemo/vid2world/internal/check"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Diagnose ffmpeg, fonts, and pdftoppm availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check.RunCheck(ctx.cfg, ctx.log)
			return check.CheckDeps()
		},
	}
}
