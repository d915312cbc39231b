package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"platter/internal/disc"
)

func newWaitCommand(ctx *commandContext) *cobra.Command {
	var useUdev bool

	cmd := &cobra.Command{
		Use:   "wait [device]",
		Short: "Block until the drive holds a readable disc",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			device, err := ctx.devicePath(args)
			if err != nil {
				return err
			}

			waitCtx := cmd.Context()
			if cfg.Wait.TimeoutSeconds > 0 {
				var cancel context.CancelFunc
				waitCtx, cancel = context.WithTimeout(waitCtx, time.Duration(cfg.Wait.TimeoutSeconds)*time.Second)
				defer cancel()
			}

			if useUdev {
				logger, err := ctx.newLogger()
				if err != nil {
					return err
				}
				if _, err := disc.WaitForMedia(waitCtx, logger, device); err != nil {
					return err
				}
			}

			interval := time.Duration(cfg.Wait.PollIntervalSeconds) * time.Second
			maxPolls := 0
			if interval > 0 {
				maxPolls = cfg.Wait.TimeoutSeconds / cfg.Wait.PollIntervalSeconds
			}
			status, err := disc.WaitForReady(waitCtx, device, interval, maxPolls)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", device, status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useUdev, "udev", false, "Wait for a udev media event before polling the drive")
	return cmd
}
