package disc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pilebones/go-udev/netlink"

	"platter/internal/logging"
)

// WaitForMedia blocks until a udev netlink event reports media present in
// the named drive, then returns the device path the event carried. It does
// not poll the drive; readiness of the inserted disc is the caller's concern
// (see WaitForReady).
func WaitForMedia(ctx context.Context, logger *slog.Logger, device string) (string, error) {
	device = strings.TrimSpace(device)
	if device == "" {
		return "", fmt.Errorf("no device specified")
	}
	logger = logging.NewComponentLogger(logger, "media-wait")

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		return "", fmt.Errorf("connect to netlink socket: %w", err)
	}
	defer conn.Close()

	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, mediaMatcher())
	defer close(monitorQuit)

	logger.Info("waiting for disc media", logging.String("device", device))

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case uevent := <-queue:
			devname := ueventDeviceName(uevent)
			if devname == "" || devname != device {
				logger.Debug("ignoring event for other device",
					logging.String("device", devname),
					logging.String("action", string(uevent.Action)),
				)
				continue
			}
			logger.Info("disc media detected",
				logging.String("device", devname),
				logging.String("action", string(uevent.Action)),
			)
			return devname, nil
		case err := <-errs:
			logger.Warn("netlink monitor error", logging.Error(err))
		}
	}
}

// mediaMatcher matches disc insertion events:
// SUBSYSTEM=block, ID_CDROM=1, ID_CDROM_MEDIA=1, ACTION=change|add.
func mediaMatcher() netlink.Matcher {
	action := "change|add"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM":      "block",
			"ID_CDROM":       "1",
			"ID_CDROM_MEDIA": "1",
		},
	})
	return rules
}

// ueventDeviceName gets the device path from a uevent, falling back to the
// trailing DEVPATH component when DEVNAME is absent.
func ueventDeviceName(uevent netlink.UEvent) string {
	if devname := uevent.Env["DEVNAME"]; devname != "" {
		return devname
	}

	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	if len(parts) == 0 {
		return ""
	}
	return "/dev/" + parts[len(parts)-1]
}
