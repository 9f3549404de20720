// Package status defines the error model shared by every winaudio operation.
// Errors carry a Kind for structured matching and, when the failure came out
// of a platform call, the raw platform status code (an HRESULT on Windows).
package status

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"
)

// Kind classifies a failure.
type Kind int

const (
	// Initialization means device enumeration, default-endpoint resolution,
	// or interface activation failed while constructing an adapter.
	Initialization Kind = iota + 1
	// InvalidArgument means a caller-supplied value was rejected before any
	// platform call was made.
	InvalidArgument
	// Platform means a get/set call into the OS audio API failed.
	Platform
	// NotFound means the target window for macro delivery was absent.
	NotFound
	// Delivery means a macro message send failed against a live target.
	Delivery
)

func (k Kind) String() string {
	switch k {
	case Initialization:
		return "initialization"
	case InvalidArgument:
		return "invalid argument"
	case Platform:
		return "platform"
	case NotFound:
		return "not found"
	case Delivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Error is the single error type returned across the winaudio boundary.
type Error struct {
	Kind Kind
	// Code is the platform status code, zero when the failure did not come
	// from a platform call.
	Code uint32
	Msg  string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (0x%X)", e.Msg, e.Code)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error with no platform status code.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Coded builds an Error carrying a platform status code.
func Coded(kind Kind, code uint32, msg string) *Error {
	return &Error{Kind: kind, Code: code, Msg: msg}
}

// Wrap builds an Error around an underlying cause with no status code.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// FromOLE builds an Error from a COM call failure, lifting the HRESULT out
// of the *ole.OleError when there is one.
func FromOLE(kind Kind, msg string, err error) *Error {
	e := &Error{Kind: kind, Msg: msg, Err: err}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		e.Code = uint32(oleErr.Code())
	}
	return e
}

// KindOf reports the Kind of err, or zero when err is not a winaudio error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// HRESULTFromWin32 maps a Win32 error code into HRESULT space, the way the
// platform's HRESULT_FROM_WIN32 macro does.
func HRESULTFromWin32(code uint32) uint32 {
	if code == 0 {
		return 0
	}
	return code&0xFFFF | 0x80070000
}
