// Package endpoint resolves the system's default audio render endpoint and
// exposes its master volume and mute controls.
package endpoint

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Device is an open handle to the default render endpoint's volume control.
// A Device holds exactly one platform handle for its lifetime; it is not
// refreshed if the system default device changes after Open.
type Device interface {
	// Volume returns the master volume as a scalar in [0, 1].
	Volume() (float64, error)
	// SetVolume writes the master volume. The value must already be in
	// [0, 1]; range checking happens above this layer.
	SetVolume(v float64) error
	// Muted returns the master mute flag.
	Muted() (bool, error)
	// SetMuted writes the master mute flag.
	SetMuted(muted bool) error
	// Close releases the platform handle. The Device is unusable afterwards.
	Close() error
}

// mixerPercentRe matches the [XX%] volume field in amixer output.
var mixerPercentRe = regexp.MustCompile(`\[(\d+)%\]`)

// parseMixerPercent extracts the volume percentage from amixer output.
func parseMixerPercent(out []byte) (int, error) {
	matches := mixerPercentRe.FindSubmatch(out)
	if len(matches) < 2 {
		return 0, fmt.Errorf("could not parse amixer output")
	}
	pct, err := strconv.Atoi(string(matches[1]))
	if err != nil {
		return 0, err
	}
	return pct, nil
}

func scalarFromPercent(pct int) float64 {
	return float64(pct) / 100
}

func percentFromScalar(v float64) int {
	return int(math.Round(v * 100))
}
