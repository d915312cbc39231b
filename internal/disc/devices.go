package disc

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Drive describes a discovered optical drive.
type Drive struct {
	Path   string
	Label  string
	FSType string
}

// DiscoverDrives lists optical drives known to the kernel by filtering lsblk
// output for read-only media devices.
func DiscoverDrives(ctx context.Context) ([]Drive, error) {
	output, err := exec.CommandContext(ctx, "lsblk", "-P", "-o", "NAME,TYPE,LABEL,FSTYPE").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run lsblk: %w", err)
	}
	return parseDriveList(string(output)), nil
}

// parseDriveList extracts read-only media devices from lsblk -P output.
func parseDriveList(output string) []Drive {
	var drives []Drive
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		data := parseKeyValueLine(line)
		if data["TYPE"] != "rom" || data["NAME"] == "" {
			continue
		}
		drives = append(drives, Drive{
			Path:   "/dev/" + data["NAME"],
			Label:  data["LABEL"],
			FSType: data["FSTYPE"],
		})
	}
	return drives
}

// ReadLabel returns the first non-empty disc label from lsblk output.
func ReadLabel(ctx context.Context, device string, timeout time.Duration) (string, error) {
	device = strings.TrimSpace(device)
	if device == "" {
		return "", fmt.Errorf("no device specified")
	}

	lsblkCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		lsblkCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	output, err := exec.CommandContext(lsblkCtx, "lsblk", "-P", "-o", "LABEL,FSTYPE", device).Output()
	if err != nil {
		return "", fmt.Errorf("failed to run lsblk: %w", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		data := parseKeyValueLine(line)
		if strings.TrimSpace(data["LABEL"]) != "" {
			return data["LABEL"], nil
		}
	}
	return "", fmt.Errorf("no disc label found")
}

func parseKeyValueLine(line string) map[string]string {
	result := make(map[string]string)
	for _, field := range strings.Fields(line) {
		parts := strings.SplitN(field, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"")
		result[key] = value
	}
	return result
}
