//go:build linux
// +build linux

package endpoint

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/d-turley/winaudio/pkg/status"
)

// device drives the Master mixer control through amixer. ALSA exposes volume
// as a 0-100 percentage, mapped to the [0, 1] scalar at this boundary.
type device struct{}

// Open verifies the Master control is reachable by reading it once.
func Open() (Device, error) {
	d := &device{}
	if _, err := d.Volume(); err != nil {
		return nil, status.Wrap(status.Initialization, "resolving the Master mixer control", err)
	}
	return d, nil
}

func (d *device) Volume() (float64, error) {
	out, err := exec.Command("amixer", "get", "Master").Output()
	if err != nil {
		return 0, status.Wrap(status.Platform, "getting volume", err)
	}
	pct, err := parseMixerPercent(out)
	if err != nil {
		return 0, status.Wrap(status.Platform, "parsing amixer output", err)
	}
	return scalarFromPercent(pct), nil
}

func (d *device) SetVolume(v float64) error {
	arg := fmt.Sprintf("%d%%", percentFromScalar(v))
	if out, err := exec.Command("amixer", "set", "Master", arg).CombinedOutput(); err != nil {
		return status.Wrap(status.Platform, fmt.Sprintf("setting volume: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (d *device) Muted() (bool, error) {
	out, err := exec.Command("amixer", "get", "Master").Output()
	if err != nil {
		return false, status.Wrap(status.Platform, "getting muted state", err)
	}
	return strings.Contains(string(out), "[off]"), nil
}

func (d *device) SetMuted(muted bool) error {
	arg := "unmute"
	if muted {
		arg = "mute"
	}
	if out, err := exec.Command("amixer", "set", "Master", arg).CombinedOutput(); err != nil {
		return status.Wrap(status.Platform, fmt.Sprintf("setting mute: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (d *device) Close() error {
	return nil
}
