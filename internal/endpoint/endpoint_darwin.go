//go:build darwin
// +build darwin

package endpoint

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/d-turley/winaudio/pkg/status"
)

// device drives the default output device through osascript. macOS exposes
// volume as a 0-100 percentage, mapped to the [0, 1] scalar at this boundary.
type device struct{}

// Open verifies the default output device is reachable by reading its volume
// once.
func Open() (Device, error) {
	d := &device{}
	if _, err := d.Volume(); err != nil {
		return nil, status.Wrap(status.Initialization, "resolving the default output device", err)
	}
	return d, nil
}

func (d *device) Volume() (float64, error) {
	out, err := exec.Command("osascript", "-e", "output volume of (get volume settings)").Output()
	if err != nil {
		return 0, status.Wrap(status.Platform, "getting volume", err)
	}
	var pct int
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%d", &pct); err != nil {
		return 0, status.Wrap(status.Platform, "parsing volume settings", err)
	}
	return scalarFromPercent(pct), nil
}

func (d *device) SetVolume(v float64) error {
	script := fmt.Sprintf("set volume output volume %d", percentFromScalar(v))
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return status.Wrap(status.Platform, fmt.Sprintf("setting volume: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (d *device) Muted() (bool, error) {
	out, err := exec.Command("osascript", "-e", "output muted of (get volume settings)").Output()
	if err != nil {
		return false, status.Wrap(status.Platform, "getting muted state", err)
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

func (d *device) SetMuted(muted bool) error {
	script := fmt.Sprintf("set volume output muted %t", muted)
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return status.Wrap(status.Platform, fmt.Sprintf("setting mute: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (d *device) Close() error {
	return nil
}
