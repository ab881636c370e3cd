package systems

import (
	"testing"

	cfg "github.com/omazim/snowrush/config"
)

// stubFullscreen replaces the display calls with an in-memory flag.
func stubFullscreen(t *testing.T, enabled bool) *bool {
	t.Helper()
	state := enabled

	origIs, origSet := isFullscreen, setFullscreen
	isFullscreen = func() bool { return state }
	setFullscreen = func(v bool) { state = v }
	t.Cleanup(func() { isFullscreen, setFullscreen = origIs, origSet })

	return &state
}

func TestFullscreenTogglesOnKeyPress(t *testing.T) {
	state := stubFullscreen(t, false)
	e := newTestECS()

	input := getOrCreateInput(e)
	input.Current[cfg.ActionFullscreen] = true

	UpdateSettings(e)
	if !*state {
		t.Fatal("fullscreen not enabled on toggle")
	}

	// Held key must not flap the setting every tick.
	input.Previous = input.Current
	UpdateSettings(e)
	if !*state {
		t.Fatal("held toggle key flipped fullscreen again")
	}

	// A fresh press turns it back off.
	input.Previous[cfg.ActionFullscreen] = false
	UpdateSettings(e)
	if *state {
		t.Fatal("fullscreen not disabled on second toggle")
	}
}

func TestFullscreenIdleWithoutPress(t *testing.T) {
	state := stubFullscreen(t, true)
	e := newTestECS()

	UpdateSettings(e)
	if !*state {
		t.Fatal("settings system changed fullscreen without input")
	}
}
