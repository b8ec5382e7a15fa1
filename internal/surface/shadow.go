// Package surface holds the host-independent parts of clockface drawing
// surfaces: dial shadow bands, the terminal character grid and the frame
// archive format. Raylib-backed canvases live in surface/rlcanvas.
package surface

import (
	"image/color"

	"clockface/internal/engine2D"
)

// ShadowSteps is the ring count hosts use for the dial shadow.
const ShadowSteps = 32

// Ring is one opaque band of a dial shadow.
type Ring struct {
	Radius float64
	Color  color.RGBA
}

// ShadowRings approximates the blurred shadow around c as opaque rings over
// background, outermost first. Drawing them in order and then the disc gives
// a quadratic falloff from the shadow alpha at the edge to nothing at
// radius+blur.
func ShadowRings(c engine2D.Circle, background color.RGBA, steps int) []Ring {
	if c.ShadowBlur <= 0 || c.ShadowColor.A == 0 || steps <= 0 {
		return nil
	}

	maxAlpha := float64(c.ShadowColor.A) / 255
	opaque := c.ShadowColor
	opaque.A = 255

	rings := make([]Ring, 0, steps)
	for i := 0; i < steps; i++ {
		d := c.ShadowBlur * (1 - float64(i)/float64(steps))
		t := 1 - d/c.ShadowBlur
		rings = append(rings, Ring{
			Radius: c.Radius + d,
			Color:  engine2D.Blend(background, opaque, maxAlpha*t*t),
		})
	}
	return rings
}
