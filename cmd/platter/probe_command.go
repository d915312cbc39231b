package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"platter/internal/probe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "probe [device]",
		Short: "Read the disc TOC and classify data tracks",
		Long: `Probe reads the table of contents from the drive, derives each track's
start sector and length, and inspects one sector per data track to determine
its storage submode and whether an ISO 9660 filesystem signature is present.
The report goes to stdout; logs go to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			device, err := ctx.devicePath(args)
			if err != nil {
				return err
			}

			doc, err := probe.New(logger).ProbeDevice(cmd.Context(), device, cfg.Device.LockDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resolveOutputFormat(outputFormat, cfg.Output.Format, out) == "table" {
				fmt.Fprintln(out, doc.RenderTable())
				return nil
			}
			return doc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Report format: json, table, or auto")
	return cmd
}
