package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"clockface/internal/engine2D"
	"clockface/internal/surface"
	"clockface/internal/surface/rlcanvas"
	"clockface/internal/utils"
)

func (a *app) newSnapshotCmd() *cobra.Command {
	var out, at string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to a PNG file",
		Example: `  clockface snapshot --out face.png
  clockface snapshot --at 10:08:42 --theme light --out light.png`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			state, err := a.initialState(at)
			if err != nil {
				return err
			}
			return a.snapshot(out, state)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "clockface.png", "output PNG path")
	cmd.Flags().StringVar(&at, "at", "", "time to draw as HH:MM:SS (default now)")
	return cmd
}

func (a *app) snapshot(path string, state engine2D.ClockState) error {
	width, height := a.cfg.Window.Width, a.cfg.Window.Height
	canvas := rlcanvas.NewImageCanvas(width, height, a.theme.Background)
	defer canvas.Close()

	a.renderer.Render(canvas, state, float64(width), float64(height))

	f, err := createOutput(path)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	utils.Info("Saved %s at %dx%d to %s", state, width, height, path)
	return nil
}

func (a *app) newRecordCmd() *cobra.Command {
	var (
		out    string
		at     string
		frames int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Render consecutive seconds to an lz4 frame archive",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if frames <= 0 {
				return fmt.Errorf("--frames must be positive, got %d", frames)
			}
			state, err := a.initialState(at)
			if err != nil {
				return err
			}
			return a.record(out, state, frames)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "clockface.clkf", "output archive path")
	cmd.Flags().StringVar(&at, "at", "", "time of the first frame as HH:MM:SS (default now)")
	cmd.Flags().IntVarP(&frames, "frames", "n", 60, "number of one-second frames")
	return cmd
}

func (a *app) record(path string, state engine2D.ClockState, frames int) error {
	width, height := a.cfg.Window.Width, a.cfg.Window.Height
	canvas := rlcanvas.NewImageCanvas(width, height, a.theme.Background)
	defer canvas.Close()

	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fw, err := surface.NewFrameWriter(f, width, height)
	if err != nil {
		return err
	}

	first := state
	for i := 0; i < frames; i++ {
		canvas.Clear()
		a.renderer.Render(canvas, state, float64(width), float64(height))
		if err := fw.WriteFrame(canvas.Image()); err != nil {
			return fmt.Errorf("frame %d (%s): %w", i, state, err)
		}
		state = state.Next()
	}

	if err := fw.Close(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	utils.Info("Recorded %d frames from %s to %s", fw.Frames(), first, path)
	return nil
}

func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
