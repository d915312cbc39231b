package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"platter/internal/disc"
)

func newEjectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "eject [device]",
		Short: "Eject the drive tray",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device, err := ctx.devicePath(args)
			if err != nil {
				return err
			}
			if err := disc.NewEjector().Eject(cmd.Context(), device); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ejected %s\n", device)
			return nil
		},
	}
}
