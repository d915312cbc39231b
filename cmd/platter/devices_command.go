package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"platter/internal/disc"
)

type driveView struct {
	Path   string `json:"path"`
	Label  string `json:"label,omitempty"`
	FSType string `json:"fstype,omitempty"`
}

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List optical drives known to the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drives, err := disc.DiscoverDrives(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				views := make([]driveView, 0, len(drives))
				for _, d := range drives {
					views = append(views, driveView{Path: d.Path, Label: d.Label, FSType: d.FSType})
				}
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(drives) == 0 {
				fmt.Fprintln(out, "No optical drives found")
				return nil
			}
			for _, d := range drives {
				line := d.Path
				if d.Label != "" {
					line += "  " + d.Label
				}
				if d.FSType != "" {
					line += "  (" + d.FSType + ")"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the drive list as JSON")
	return cmd
}
