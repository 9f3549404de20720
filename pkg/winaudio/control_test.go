package winaudio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/d-turley/winaudio/internal/endpoint"
	"github.com/d-turley/winaudio/pkg/status"
)

// fakeDevice stands in for the platform endpoint backend.
type fakeDevice struct {
	vol      float64
	muted    bool
	err      error
	setCalls int
	closed   bool
}

func (f *fakeDevice) Volume() (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.vol, nil
}

func (f *fakeDevice) SetVolume(v float64) error {
	f.setCalls++
	if f.err != nil {
		return f.err
	}
	f.vol = v
	return nil
}

func (f *fakeDevice) Muted() (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.muted, nil
}

func (f *fakeDevice) SetMuted(muted bool) error {
	if f.err != nil {
		return f.err
	}
	f.muted = muted
	return nil
}

func (f *fakeDevice) Close() error {
	f.closed = true
	return nil
}

func newTestControl(t *testing.T, dev endpoint.Device) *Control {
	t.Helper()
	restore := openEndpoint
	openEndpoint = func() (endpoint.Device, error) { return dev, nil }
	t.Cleanup(func() { openEndpoint = restore })

	c, err := New(zaptest.NewLogger(t))
	require.NoError(t, err)
	return c
}

func TestControl_SetVolumeRoundTrip(t *testing.T) {
	dev := &fakeDevice{}
	c := newTestControl(t, dev)

	for _, v := range []float64{0.0, 0.25, 0.5, 0.73, 1.0} {
		require.NoError(t, c.SetVolume(v))
		got, err := c.Volume()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestControl_SetVolumeOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"below range", -0.01},
		{"above range", 1.01},
		{"far below", -3},
		{"far above", 100},
		{"nan", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &fakeDevice{vol: 0.4}
			c := newTestControl(t, dev)

			err := c.SetVolume(tt.v)
			require.Error(t, err)
			assert.Equal(t, status.InvalidArgument, status.KindOf(err))
			assert.Zero(t, dev.setCalls, "no platform call should be made")

			got, err := c.Volume()
			require.NoError(t, err)
			assert.Equal(t, 0.4, got, "prior volume must be unchanged")
		})
	}
}

func TestControl_MuteRoundTrip(t *testing.T) {
	dev := &fakeDevice{}
	c := newTestControl(t, dev)

	require.NoError(t, c.SetMuted(true))
	muted, err := c.Muted()
	require.NoError(t, err)
	assert.True(t, muted)

	require.NoError(t, c.SetMuted(false))
	muted, err = c.Muted()
	require.NoError(t, err)
	assert.False(t, muted)
}

func TestControl_PlatformErrorsPropagate(t *testing.T) {
	dev := &fakeDevice{err: status.Coded(status.Platform, 0x88890004, "getting volume")}
	c := newTestControl(t, dev)

	_, err := c.Volume()
	require.Error(t, err)
	assert.Equal(t, status.Platform, status.KindOf(err))
	assert.Contains(t, err.Error(), "0x88890004")

	err = c.SetVolume(0.5)
	require.Error(t, err)
	assert.Equal(t, status.Platform, status.KindOf(err))

	_, err = c.Muted()
	assert.Equal(t, status.Platform, status.KindOf(err))

	err = c.SetMuted(true)
	assert.Equal(t, status.Platform, status.KindOf(err))
}

func TestNew_EndpointResolutionFails(t *testing.T) {
	restore := openEndpoint
	openEndpoint = func() (endpoint.Device, error) {
		return nil, status.Coded(status.Initialization, 0x80070490, "getting a handle to the default render endpoint")
	}
	t.Cleanup(func() { openEndpoint = restore })

	c, err := New(zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Nil(t, c, "no degraded control on initialization failure")
	assert.Equal(t, status.Initialization, status.KindOf(err))
	assert.Contains(t, err.Error(), "0x80070490")
}

func TestControl_Close(t *testing.T) {
	dev := &fakeDevice{}
	c := newTestControl(t, dev)

	require.NoError(t, c.Close())
	assert.True(t, dev.closed)
}
