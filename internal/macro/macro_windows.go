//go:build windows
// +build windows

package macro

import (
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/d-turley/winaudio/pkg/status"
)

const (
	wmCopyData      = 0x004A
	smtoAbortIfHung = 0x0002
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW         = user32.NewProc("FindWindowW")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

// copyDataStruct mirrors the platform's COPYDATASTRUCT layout.
type copyDataStruct struct {
	dwData uintptr
	cbData uint32
	lpData unsafe.Pointer
}

type platformTransport struct{}

func (platformTransport) findWindow(title string) (windowHandle, error) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, status.Wrap(status.NotFound, "encoding window title", err)
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	if hwnd == 0 {
		return 0, status.Errorf(status.NotFound, "could not find a running window titled %q to send to", title)
	}
	return windowHandle(hwnd), nil
}

func (platformTransport) sendCopyData(h windowHandle, id uintptr, payload []byte, timeout time.Duration) error {
	cds := copyDataStruct{
		dwData: id,
		cbData: uint32(len(payload)),
	}
	if len(payload) > 0 {
		cds.lpData = unsafe.Pointer(&payload[0])
	}

	ret, _, callErr := procSendMessageTimeoutW.Call(
		uintptr(h),
		wmCopyData,
		0,
		uintptr(unsafe.Pointer(&cds)),
		smtoAbortIfHung,
		uintptr(timeout.Milliseconds()),
		0,
	)

	// A zero return with no error set means the target accepted the message
	// without replying, which still counts as delivered.
	if ret == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno != 0 {
			return status.Coded(status.Delivery, status.HRESULTFromWin32(uint32(errno)), "failed to deliver macro notification")
		}
	}
	return nil
}
