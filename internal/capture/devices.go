package capture

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	// "[0] MacBook Pro Microphone" (ffmpeg avfoundation style)
	reBracketDevice = regexp.MustCompile(`\[(\d+)\]\s+(.+)`)
	// "  0 MacBook Pro Microphone, Core Audio (1 in, 0 out)" (device
	// table style, optionally prefixed with a default marker)
	reTableDevice = regexp.MustCompile(`^[<>*]?\s*(\d+)\s+(.+)$`)
)

func (r *implRecorder) ListDevices(ctx context.Context) (string, []Device, error) {
	if r.cfg.Recorder.BinaryPath == "" {
		return "", nil, fmt.Errorf("recorder.binary_path not configured")
	}

	out, err := r.executor.Execute(ctx, r.cfg.Recorder.BinaryPath, r.cfg.Recorder.ListArgs...)
	if err != nil {
		return "", nil, fmt.Errorf("list devices: %w", err)
	}

	return out, parseDevices(out), nil
}

// parseDevices extracts device entries from lister output. This is a debug
// aid: lines that match no known shape are skipped, never an error.
func parseDevices(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := reBracketDevice.FindStringSubmatch(line)
		if m == nil {
			m = reTableDevice.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}
		devices = append(devices, Device{ID: m[1], Name: strings.TrimSpace(m[2])})
	}
	return devices
}
