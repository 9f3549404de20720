//go:build !windows
// +build !windows

package winaudio

// Init is a no-op off Windows; the shell-based backends need no process-wide
// subsystem.
func Init() error {
	return nil
}

// Shutdown is a no-op off Windows.
func Shutdown() {}
