package main

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockface/internal/engine2D"
)

func TestRootCmd_WindowFlagsOnRoot(t *testing.T) {
	a := newApp(clockwork.NewFakeClock())
	root := a.command()

	for _, name := range []string{"fullscreen", "fps", "debug-overlay", "width", "height"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "root is missing --%s", name)
	}

	window, _, err := root.Find([]string{"window"})
	require.NoError(t, err)
	assert.NotNil(t, window.InheritedFlags().Lookup("fullscreen"))
}

func TestRootCmd_FlagsReachConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	a := newApp(clockwork.NewFakeClock())
	root := a.command()
	flags := root.PersistentFlags()
	require.NoError(t, flags.Set("fps", "30"))
	require.NoError(t, flags.Set("fullscreen", "true"))
	require.NoError(t, flags.Set("debug-overlay", "true"))
	require.NoError(t, flags.Set("theme", "light"))

	require.NoError(t, a.setup(root))
	assert.Equal(t, 30, a.cfg.Window.FPS)
	assert.True(t, a.cfg.Window.Fullscreen)
	assert.True(t, a.cfg.Window.DebugOverlay)
	assert.Equal(t, engine2D.LightTheme.Name, a.theme.Name)
}

func TestWindowFlags(t *testing.T) {
	assert.Equal(t, uint32(rl.FlagWindowResizable|rl.FlagMsaa4xHint), windowFlags(false))
	assert.Equal(t, uint32(rl.FlagWindowUndecorated|rl.FlagMsaa4xHint), windowFlags(true))
}

func TestInitialState(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 14, 7, 9, 0, time.UTC))
	a := newApp(fake)

	state, err := a.initialState("")
	require.NoError(t, err)
	assert.Equal(t, engine2D.NewClockState(2, 7, 9), state)

	state, err = a.initialState("10:08:42")
	require.NoError(t, err)
	assert.Equal(t, engine2D.NewClockState(10, 8, 42), state)

	_, err = a.initialState("nope")
	assert.Error(t, err)
}
