package winaudio

import (
	"go.uber.org/zap"

	"github.com/d-turley/winaudio/internal/macro"
)

// MacroConfig addresses the external application window that receives macro
// notifications.
type MacroConfig = macro.Config

// DefaultMacroConfig returns the configuration for the stock Translator
// receiver window.
func DefaultMacroConfig() MacroConfig {
	return macro.DefaultConfig()
}

// MacroConfigFromEnv returns DefaultMacroConfig with WINAUDIO_MACRO_*
// environment overrides applied.
func MacroConfigFromEnv() MacroConfig {
	return macro.ConfigFromEnv()
}

// Notifier triggers named macros in the configured external application.
// It holds no platform resources; the target window is resolved on every
// call.
type Notifier struct {
	inner *macro.Notifier
}

// NewNotifier returns a Notifier for the given receiver configuration. Zero
// fields in cfg fall back to the defaults. A nil logger disables logging.
func NewNotifier(logger *zap.Logger, cfg MacroConfig) *Notifier {
	return &Notifier{inner: macro.NewNotifier(logger, cfg)}
}

// ExecMacro sends a macro notification and blocks until the target
// acknowledges it or the configured timeout passes. The error Kind is
// NotFound when no window with the configured title exists at call time, and
// Delivery when the send fails against a live target.
func (n *Notifier) ExecMacro(name string) error {
	return n.inner.Exec(name)
}
