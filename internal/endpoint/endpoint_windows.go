//go:build windows
// +build windows

package endpoint

import (
	"github.com/moutend/go-wca/pkg/wca"

	"github.com/d-turley/winaudio/pkg/status"
)

// device wraps the Core Audio endpoint volume interface for the default
// render device. The interface pointer is the only held resource.
type device struct {
	aev *wca.IAudioEndpointVolume
}

// Open resolves the current default render endpoint and activates its volume
// control. COM must already be initialized on the calling thread.
func Open() (Device, error) {
	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		return nil, status.FromOLE(status.Initialization, "getting a handle to the device enumerator", err)
	}
	defer mmde.Release()

	var mmd *wca.IMMDevice
	if err := mmde.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &mmd); err != nil {
		return nil, status.FromOLE(status.Initialization, "getting a handle to the default render endpoint", err)
	}
	defer mmd.Release()

	var aev *wca.IAudioEndpointVolume
	if err := mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return nil, status.FromOLE(status.Initialization, "activating the volume endpoint", err)
	}

	return &device{aev: aev}, nil
}

func (d *device) Volume() (float64, error) {
	var v float32
	if err := d.aev.GetMasterVolumeLevelScalar(&v); err != nil {
		return 0, status.FromOLE(status.Platform, "getting volume", err)
	}
	return float64(v), nil
}

func (d *device) SetVolume(v float64) error {
	if err := d.aev.SetMasterVolumeLevelScalar(float32(v), nil); err != nil {
		return status.FromOLE(status.Platform, "setting volume", err)
	}
	return nil
}

func (d *device) Muted() (bool, error) {
	var muted bool
	if err := d.aev.GetMute(&muted); err != nil {
		return false, status.FromOLE(status.Platform, "getting muted state", err)
	}
	return muted, nil
}

func (d *device) SetMuted(muted bool) error {
	if err := d.aev.SetMute(muted, nil); err != nil {
		return status.FromOLE(status.Platform, "setting mute", err)
	}
	return nil
}

func (d *device) Close() error {
	if d.aev != nil {
		d.aev.Release()
		d.aev = nil
	}
	return nil
}
