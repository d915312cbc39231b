package disc

import (
	"context"
	"fmt"
	"os/exec"
)

// Ejector defines disc eject operations.
type Ejector interface {
	Eject(ctx context.Context, device string) error
}

type ioctlEjector struct{}

// NewEjector creates an ejector that issues the CDROMEJECT ioctl directly
// and falls back to the eject utility for drives that reject it.
func NewEjector() Ejector {
	return ioctlEjector{}
}

func (ioctlEjector) Eject(ctx context.Context, device string) error {
	if d, err := Open(device); err == nil {
		ejectErr := d.Eject()
		_ = d.Close()
		if ejectErr == nil {
			return nil
		}
	}

	var cmd *exec.Cmd
	if device == "" {
		cmd = exec.CommandContext(ctx, "eject")
	} else {
		cmd = exec.CommandContext(ctx, "eject", device)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("eject %s: %w", device, err)
	}
	return nil
}
