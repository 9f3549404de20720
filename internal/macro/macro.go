// Package macro delivers named-macro notifications to an external
// application's window over the platform's copy-data message channel.
package macro

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultWindowTitle is the exact title of the receiver window in the
	// Translator application.
	DefaultWindowTitle = "Translator CopyData Target"
	// DefaultPayloadPrefix precedes the macro name in every payload.
	DefaultPayloadPrefix = "Macro: "
	// DefaultCopyDataID tags payloads so the receiver can recognize them.
	DefaultCopyDataID = 24
	// DefaultSendTimeout bounds how long delivery may block on an
	// unresponsive target before reporting failure.
	DefaultSendTimeout = 5 * time.Second

	EnvWindowTitle   = "WINAUDIO_MACRO_WINDOW_TITLE"
	EnvPayloadPrefix = "WINAUDIO_MACRO_PREFIX"
	EnvCopyDataID    = "WINAUDIO_MACRO_COPYDATA_ID"
	EnvSendTimeoutMS = "WINAUDIO_MACRO_TIMEOUT_MS"
)

// Config addresses the external application that receives macro
// notifications.
type Config struct {
	// WindowTitle is matched exactly, case sensitive, on every delivery.
	WindowTitle string
	// PayloadPrefix is concatenated with the macro name, unescaped.
	PayloadPrefix string
	// CopyDataID is the numeric tag carried alongside the payload.
	CopyDataID uintptr
	// SendTimeout is the upper bound on one blocking delivery.
	SendTimeout time.Duration
}

// DefaultConfig returns the configuration for the stock Translator receiver.
func DefaultConfig() Config {
	return Config{
		WindowTitle:   DefaultWindowTitle,
		PayloadPrefix: DefaultPayloadPrefix,
		CopyDataID:    DefaultCopyDataID,
		SendTimeout:   DefaultSendTimeout,
	}
}

// ConfigFromEnv returns DefaultConfig with WINAUDIO_MACRO_* environment
// overrides applied. Unset or malformed variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvWindowTitle); v != "" {
		cfg.WindowTitle = v
	}
	if v := os.Getenv(EnvPayloadPrefix); v != "" {
		cfg.PayloadPrefix = v
	}
	if v := os.Getenv(EnvCopyDataID); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id >= 0 {
			cfg.CopyDataID = uintptr(id)
		}
	}
	if v := os.Getenv(EnvSendTimeoutMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.SendTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

// windowHandle identifies a resolved target window.
type windowHandle uintptr

// transport resolves target windows and sends copy-data payloads. The
// production implementation is platform-specific; tests substitute stubs.
type transport interface {
	findWindow(title string) (windowHandle, error)
	sendCopyData(h windowHandle, id uintptr, payload []byte, timeout time.Duration) error
}

// Notifier sends named-macro notifications to the configured window.
type Notifier struct {
	logger *zap.Logger
	cfg    Config
	trans  transport
}

// NewNotifier returns a Notifier for the given receiver configuration. Zero
// fields in cfg fall back to the defaults. A nil logger disables logging.
func NewNotifier(logger *zap.Logger, cfg Config) *Notifier {
	return newNotifier(logger, cfg, platformTransport{})
}

func newNotifier(logger *zap.Logger, cfg Config, trans transport) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WindowTitle == "" {
		cfg.WindowTitle = DefaultWindowTitle
	}
	if cfg.PayloadPrefix == "" {
		cfg.PayloadPrefix = DefaultPayloadPrefix
	}
	if cfg.CopyDataID == 0 {
		cfg.CopyDataID = DefaultCopyDataID
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	return &Notifier{
		logger: logger,
		cfg:    cfg,
		trans:  trans,
	}
}

// Exec triggers the named macro in the target application. The window is
// resolved fresh on every call; the target's acknowledgment, if any, is
// ignored.
func (n *Notifier) Exec(name string) error {
	hwnd, err := n.trans.findWindow(n.cfg.WindowTitle)
	if err != nil {
		return err
	}

	payload := []byte(n.cfg.PayloadPrefix + name)

	n.logger.Debug("sending macro notification",
		zap.String("macro", name),
		zap.String("windowTitle", n.cfg.WindowTitle),
		zap.Int("payloadBytes", len(payload)))

	if err := n.trans.sendCopyData(hwnd, n.cfg.CopyDataID, payload, n.cfg.SendTimeout); err != nil {
		n.logger.Error("macro delivery failed", zap.String("macro", name), zap.Error(err))
		return err
	}
	return nil
}
