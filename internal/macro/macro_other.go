//go:build !windows
// +build !windows

package macro

import (
	"time"

	"github.com/d-turley/winaudio/pkg/status"
)

// platformTransport is a stub off Windows: there is no copy-data channel to
// deliver over.
type platformTransport struct{}

func (platformTransport) findWindow(title string) (windowHandle, error) {
	return 0, status.Errorf(status.NotFound, "macro delivery is only supported on windows")
}

func (platformTransport) sendCopyData(h windowHandle, id uintptr, payload []byte, timeout time.Duration) error {
	return status.Errorf(status.Delivery, "macro delivery is only supported on windows")
}
