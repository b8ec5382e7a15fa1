package engine2D

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SecondHandColor is fixed and ignores the theme.
var SecondHandColor = color.RGBA{R: 255, A: 255}

// Theme holds the two colors the host supplies to the renderer.
type Theme struct {
	Name       string
	Background color.RGBA
	Foreground color.RGBA
}

var (
	DarkTheme = Theme{
		Name:       "dark",
		Background: color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF},
		Foreground: color.RGBA{R: 0xE6, G: 0xE1, B: 0xE5, A: 0xFF},
	}
	LightTheme = Theme{
		Name:       "light",
		Background: color.RGBA{R: 0xFF, G: 0xFB, B: 0xFE, A: 0xFF},
		Foreground: color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF},
	}
)

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return DarkTheme, true
	case "light":
		return LightTheme, true
	}
	return Theme{}, false
}

// ShadowColor is the foreground at the dial shadow opacity.
func (t Theme) ShadowColor() color.RGBA {
	return WithAlpha(t.Foreground, shadowAlpha)
}

// ParseColor accepts "#RRGGBB" or the space separated "r g b" form with
// components in [0, 1].
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		r, g, b := c.Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	var r, g, b float64
	if _, err := fmt.Sscanf(value, "%f %f %f", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", value, err)
	}
	red, green, blue := colorful.Color{R: r, G: g, B: b}.Clamped().RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}, nil
}

// WithAlpha returns c with its alpha channel set to alpha in [0, 1].
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}

// Blend composites src over dst, weighting src by t in [0, 1]. The result
// is opaque.
func Blend(dst, src color.RGBA, t float64) color.RGBA {
	from := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	to := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, b := from.BlendRgb(to, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
