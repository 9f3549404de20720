// Package winaudio exposes master volume and mute control for the system's
// default audio render endpoint, plus a notifier that triggers named macros
// in an external application through window messages.
//
// The host process must call Init once at startup before constructing any
// Control, and Shutdown once at exit after every Control is closed. Every
// failure crossing this boundary is a *status.Error carrying a Kind and,
// for platform failures, the raw platform status code.
package winaudio
