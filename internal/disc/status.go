package disc

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// DriveStatus represents the result of a CDROM_DRIVE_STATUS ioctl call.
type DriveStatus int

const (
	DriveStatusNoInfo   DriveStatus = 0
	DriveStatusNoDisc   DriveStatus = 1
	DriveStatusTrayOpen DriveStatus = 2
	DriveStatusNotReady DriveStatus = 3
	DriveStatusDiscOK   DriveStatus = 4
)

// String returns a human-readable label for the drive status.
func (s DriveStatus) String() string {
	switch s {
	case DriveStatusNoInfo:
		return "no_info"
	case DriveStatusNoDisc:
		return "no_disc"
	case DriveStatusTrayOpen:
		return "tray_open"
	case DriveStatusNotReady:
		return "not_ready"
	case DriveStatusDiscOK:
		return "disc_ok"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Status queries the drive state through the open handle.
func (d *Device) Status() (DriveStatus, error) {
	r1, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), ioctlDriveStatus, 0)
	if errno != 0 {
		return DriveStatusNoInfo, fmt.Errorf("%w: drive status on %s: %w", ErrDeviceQuery, d.path, errno)
	}
	return DriveStatus(r1), nil
}

// CheckDriveStatus opens the device just long enough to query its state.
func CheckDriveStatus(devicePath string) (DriveStatus, error) {
	d, err := Open(devicePath)
	if err != nil {
		return DriveStatusNoInfo, err
	}
	defer d.Close()
	return d.Status()
}

// WaitForReady polls the drive up to maxPolls times at the given interval
// until it reports DriveStatusDiscOK or the context is cancelled. Zero or
// negative arguments fall back to 60 polls at 1-second intervals.
func WaitForReady(ctx context.Context, devicePath string, interval time.Duration, maxPolls int) (DriveStatus, error) {
	if interval <= 0 {
		interval = time.Second
	}
	if maxPolls <= 0 {
		maxPolls = 60
	}

	var lastStatus DriveStatus
	for i := 0; i < maxPolls; i++ {
		status, err := CheckDriveStatus(devicePath)
		if err != nil {
			return status, err
		}
		lastStatus = status
		if status == DriveStatusDiscOK {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return lastStatus, ctx.Err()
		case <-time.After(interval):
		}
	}

	return lastStatus, fmt.Errorf("drive %s not ready after %d polls (last status: %s)", devicePath, maxPolls, lastStatus)
}
