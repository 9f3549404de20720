package winaudio

import (
	"math"

	"go.uber.org/zap"

	"github.com/d-turley/winaudio/internal/endpoint"
	"github.com/d-turley/winaudio/pkg/status"
)

// openEndpoint is swapped out by tests.
var openEndpoint = endpoint.Open

// Control owns the volume interface of the system's default render endpoint.
// The handle is acquired once at construction and never refreshed; if the
// system default device changes afterwards, open a new Control.
type Control struct {
	logger *zap.Logger
	dev    endpoint.Device
}

// New resolves the current default render endpoint and activates its volume
// control. Any resolution or activation failure is terminal: the error has
// Kind Initialization and no Control is returned. A nil logger disables
// logging.
func New(logger *zap.Logger) (*Control, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dev, err := openEndpoint()
	if err != nil {
		logger.Error("endpoint resolution failed", zap.Error(err))
		return nil, err
	}
	logger.Debug("volume control constructed")
	return &Control{logger: logger, dev: dev}, nil
}

// Volume returns the master volume as a scalar in [0, 1].
func (c *Control) Volume() (float64, error) {
	v, err := c.dev.Volume()
	if err != nil {
		return 0, err
	}
	c.logger.Debug("read volume", zap.Float64("volume", v))
	return v, nil
}

// SetVolume writes the master volume. Values outside [0, 1] are rejected
// before any platform call is made, with no effect on the current volume.
func (c *Control) SetVolume(v float64) error {
	if math.IsNaN(v) || v < 0.0 || v > 1.0 {
		return status.Errorf(status.InvalidArgument, "volume needs to be between 0.0 and 1.0 inclusive, got %v", v)
	}
	if err := c.dev.SetVolume(v); err != nil {
		return err
	}
	c.logger.Debug("set volume", zap.Float64("volume", v))
	return nil
}

// Muted returns the master mute flag.
func (c *Control) Muted() (bool, error) {
	return c.dev.Muted()
}

// SetMuted writes the master mute flag.
func (c *Control) SetMuted(muted bool) error {
	if err := c.dev.SetMuted(muted); err != nil {
		return err
	}
	c.logger.Debug("set mute", zap.Bool("muted", muted))
	return nil
}

// Close releases the endpoint handle. The Control is unusable afterwards.
func (c *Control) Close() error {
	return c.dev.Close()
}
