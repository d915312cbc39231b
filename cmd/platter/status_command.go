package main

import (
	"time"

	"github.com/spf13/cobra"

	"platter/internal/disc"
)

type driveStatusView struct {
	Device string `json:"device"`
	Status string `json:"status"`
	Label  string `json:"label,omitempty"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [device]",
		Short: "Report the drive's media status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device, err := ctx.devicePath(args)
			if err != nil {
				return err
			}

			status, err := disc.CheckDriveStatus(device)
			if err != nil {
				return err
			}

			view := driveStatusView{Device: device, Status: status.String()}
			if status == disc.DriveStatusDiscOK {
				// Label is best effort; a blank disc has none.
				if label, err := disc.ReadLabel(cmd.Context(), device, 5*time.Second); err == nil {
					view.Label = label
				}
			}
			return writeJSON(cmd, view)
		},
	}
}
