package rlcanvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"clockface/internal/engine2D"
	"clockface/internal/surface"
)

// ImageCanvas rasterizes onto a CPU-side raylib image. No window or GL
// context is needed, so it serves headless snapshots and recordings.
type ImageCanvas struct {
	img        *rl.Image
	background color.RGBA
	width      int
	height     int
}

// NewImageCanvas allocates a width x height image cleared to background.
func NewImageCanvas(width, height int, background color.RGBA) *ImageCanvas {
	return &ImageCanvas{
		img:        rl.GenImageColor(width, height, background),
		background: background,
		width:      width,
		height:     height,
	}
}

func (c *ImageCanvas) Width() int  { return c.width }
func (c *ImageCanvas) Height() int { return c.height }

// Clear refills the whole image with the background color.
func (c *ImageCanvas) Clear() {
	rl.ImageClearBackground(c.img, c.background)
}

func (c *ImageCanvas) FillCircle(circle engine2D.Circle) {
	center := vec(circle.Center)
	for _, r := range surface.ShadowRings(circle, c.background, surface.ShadowSteps) {
		rl.ImageDrawCircleV(c.img, center, int32(math.Round(r.Radius)), r.Color)
	}
	rl.ImageDrawCircleV(c.img, center, int32(math.Round(circle.Radius)), circle.Fill)
}

// StrokeLine stamps discs along the segment for wide strokes, which yields
// round caps for every line.
func (c *ImageCanvas) StrokeLine(line engine2D.Line) {
	if line.Width <= 1 {
		rl.ImageDrawLineV(c.img, vec(line.Start), vec(line.End), line.Color)
		return
	}

	radius := int32(math.Round(line.Width / 2))
	steps := int(math.Ceil(line.Length()))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := engine2D.Vec2{
			X: line.Start.X + (line.End.X-line.Start.X)*t,
			Y: line.Start.Y + (line.End.Y-line.Start.Y)*t,
		}
		rl.ImageDrawCircleV(c.img, vec(p), radius, line.Color)
	}
}

// Image returns a Go copy of the current pixels.
func (c *ImageCanvas) Image() image.Image {
	return c.img.ToImage()
}

// WritePNG encodes the current pixels as PNG.
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the raylib image.
func (c *ImageCanvas) Close() {
	if c.img != nil {
		rl.UnloadImage(c.img)
		c.img = nil
	}
}
