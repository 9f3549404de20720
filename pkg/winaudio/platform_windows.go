//go:build windows
// +build windows

package winaudio

import (
	"github.com/go-ole/go-ole"

	"github.com/d-turley/winaudio/pkg/status"
)

// Init initializes the process-wide COM apartment. Call once at process
// start, before constructing any Control, and pair it with Shutdown.
func Init() error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return status.FromOLE(status.Initialization, "initializing the platform audio subsystem", err)
	}
	return nil
}

// Shutdown releases the process-wide COM apartment. Call once at process
// exit, after every Control is closed.
func Shutdown() {
	ole.CoUninitialize()
}
