// Package debug draws diagnostic information over the raylib window.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"clockface/internal/engine2D"
)

type DebugOverlay struct {
	Enabled    bool
	fontHeight int32
	padding    int32
}

func NewDebugOverlay(enabled bool) *DebugOverlay {
	return &DebugOverlay{
		Enabled:    enabled,
		fontHeight: 20,
		padding:    10,
	}
}

// Lines returns the text shown in the overlay panel for frame.
func (d *DebugOverlay) Lines(frame *engine2D.Frame) []string {
	g := frame.Geometry
	return []string{
		fmt.Sprintf("time   %s", frame.State),
		fmt.Sprintf("hour   %7.2f deg", engine2D.HourAngle(frame.State)),
		fmt.Sprintf("minute %7.2f deg", engine2D.MinuteAngle(frame.State)),
		fmt.Sprintf("second %7.2f deg", engine2D.SecondAngle(frame.State)),
		fmt.Sprintf("center %.0f,%.0f r=%.1f", g.Center.X, g.Center.Y, g.Radius),
		fmt.Sprintf("ticks  %d", len(frame.Ticks)),
	}
}

// Draw renders the panel, the dial bounding box and the center marker.
func (d *DebugOverlay) Draw(frame *engine2D.Frame) {
	if !d.Enabled {
		return
	}

	d.drawDialBoundingBox(frame.Geometry)

	y := d.padding
	rl.DrawFPS(d.padding, y)
	y += d.fontHeight + 4
	for _, line := range d.Lines(frame) {
		rl.DrawText(line, d.padding, y, d.fontHeight, rl.Green)
		y += d.fontHeight + 2
	}
}

func (d *DebugOverlay) drawDialBoundingBox(g engine2D.Geometry) {
	x := g.Center.X - g.Radius
	y := g.Center.Y - g.Radius
	size := int32(g.Radius * 2)

	rl.DrawRectangleLines(int32(x), int32(y), size, size, rl.NewColor(0, 255, 0, 255))
	rl.DrawRectangle(int32(g.Center.X-2), int32(g.Center.Y-2), 4, 4, rl.Red)
}
