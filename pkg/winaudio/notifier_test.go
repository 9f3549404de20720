package winaudio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/d-turley/winaudio/pkg/status"
)

func TestNotifier_ExecMacro_NoTargetWindow(t *testing.T) {
	// No receiver application runs during tests, so resolution fails the
	// same way on every platform.
	n := NewNotifier(zaptest.NewLogger(t), MacroConfig{
		WindowTitle: "winaudio test window that does not exist",
		SendTimeout: 100 * time.Millisecond,
	})

	err := n.ExecMacro("Foo")
	assert.Equal(t, status.NotFound, status.KindOf(err))
}

func TestDefaultMacroConfig(t *testing.T) {
	cfg := DefaultMacroConfig()
	assert.Equal(t, "Translator CopyData Target", cfg.WindowTitle)
	assert.Equal(t, "Macro: ", cfg.PayloadPrefix)
	assert.Equal(t, uintptr(24), cfg.CopyDataID)
	assert.Equal(t, 5*time.Second, cfg.SendTimeout)
}

func TestMacroConfigFromEnv(t *testing.T) {
	t.Setenv("WINAUDIO_MACRO_WINDOW_TITLE", "Other Target")

	cfg := MacroConfigFromEnv()
	assert.Equal(t, "Other Target", cfg.WindowTitle)
	assert.Equal(t, "Macro: ", cfg.PayloadPrefix)
}
