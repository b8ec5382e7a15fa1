// Package rlcanvas draws clockface frames with raylib, either into the
// window framebuffer or into a CPU-side image.
package rlcanvas

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"clockface/internal/engine2D"
	"clockface/internal/surface"
)

// WindowCanvas draws onto the current raylib framebuffer. It must be used
// between rl.BeginDrawing and rl.EndDrawing on the main thread.
type WindowCanvas struct {
	Background color.RGBA
}

func vec(p engine2D.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func (c *WindowCanvas) FillCircle(circle engine2D.Circle) {
	for _, r := range surface.ShadowRings(circle, c.Background, surface.ShadowSteps) {
		rl.DrawCircleV(vec(circle.Center), float32(r.Radius), r.Color)
	}
	rl.DrawCircleV(vec(circle.Center), float32(circle.Radius), circle.Fill)
}

func (c *WindowCanvas) StrokeLine(line engine2D.Line) {
	start, end := vec(line.Start), vec(line.End)
	if line.Width <= engine2D.HairlineWidth {
		rl.DrawLineV(start, end, line.Color)
		return
	}

	rl.DrawLineEx(start, end, float32(line.Width), line.Color)
	if line.Cap == engine2D.CapRound {
		radius := float32(line.Width / 2)
		rl.DrawCircleV(start, radius, line.Color)
		rl.DrawCircleV(end, radius, line.Color)
	}
}
