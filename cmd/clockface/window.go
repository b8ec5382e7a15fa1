package main

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"clockface/internal/debug"
	"clockface/internal/engine2D"
	"clockface/internal/surface/rlcanvas"
	"clockface/internal/utils"
)

type Window struct {
	renderer     *engine2D.Renderer
	ticker       *engine2D.Ticker
	canvas       rlcanvas.WindowCanvas
	bgColor      rl.Color
	fps          int32
	debugOverlay *debug.DebugOverlay

	frames   uint64
	lastDraw engine2D.ClockState
}

func (a *app) newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the clock in a window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWindow(cmd.Context())
		},
	}
}

func (a *app) runWindow(ctx context.Context) error {
	width, height := a.cfg.Window.Width, a.cfg.Window.Height
	fullscreen := false
	if a.cfg.Window.Fullscreen {
		w, h, err := utils.DisplaySize()
		if err != nil {
			utils.Warn("Fullscreen requested but display size is unknown, keeping %dx%d: %v", width, height, err)
		} else {
			width, height = w, h
			fullscreen = true
		}
		utils.CloseDisplay()
	}
	flags := windowFlags(fullscreen)

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(width), int32(height), "clockface")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open %dx%d window", width, height)
	}
	utils.Info("Window opened at %dx%d (theme %s)", width, height, a.theme.Name)

	ticker := a.newTicker(engine2D.ClockStateFromTime(a.clock.Now()))
	ticker.Start(ctx)
	defer ticker.Stop()

	window := NewWindow(a.renderer, ticker, a.theme, int32(a.cfg.Window.FPS), a.cfg.Window.DebugOverlay)
	window.Run(ctx)
	utils.Debug("Window closed after %d frames", window.frames)
	return nil
}

// windowFlags returns the raylib config flags; a fullscreen window is an
// undecorated one sized to the display.
func windowFlags(fullscreen bool) uint32 {
	if fullscreen {
		return rl.FlagWindowUndecorated | rl.FlagMsaa4xHint
	}
	return rl.FlagWindowResizable | rl.FlagMsaa4xHint
}

func NewWindow(renderer *engine2D.Renderer, ticker *engine2D.Ticker, theme engine2D.Theme, fps int32, showDebug bool) *Window {
	return &Window{
		renderer:     renderer,
		ticker:       ticker,
		canvas:       rlcanvas.WindowCanvas{Background: theme.Background},
		bgColor:      rl.NewColor(theme.Background.R, theme.Background.G, theme.Background.B, 255),
		fps:          fps,
		debugOverlay: debug.NewDebugOverlay(showDebug),
		lastDraw:     ticker.State(),
	}
}

func (window *Window) Run(ctx context.Context) {
	rl.SetTargetFPS(window.fps)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	if rl.IsKeyPressed(rl.KeyF8) {
		window.debugOverlay.Enabled = !window.debugOverlay.Enabled
	}

	if state := window.ticker.State(); state != window.lastDraw {
		utils.Debug("Redraw at %s", state)
		window.lastDraw = state
	}
}

// Draw repaints the whole face every frame; raylib swaps buffers so the
// previous frame cannot be kept.
func (window *Window) Draw() {
	rl.ClearBackground(window.bgColor)

	frame := window.renderer.Frame(window.lastDraw, float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	frame.Draw(&window.canvas)
	window.debugOverlay.Draw(frame)
	window.frames++
}
