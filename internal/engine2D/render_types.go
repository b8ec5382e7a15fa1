package engine2D

import "image/color"

// Vec2 is a point in surface coordinates, y axis pointing down.
type Vec2 struct {
	X float64
	Y float64
}

// StrokeCap is the shape used at the ends of a stroked line.
type StrokeCap int

const (
	CapButt StrokeCap = iota
	CapRound
)

// HairlineWidth strokes a line one device pixel wide regardless of density.
const HairlineWidth = 0.0

// Circle is a filled disc with an optional soft shadow around it.
type Circle struct {
	Center      Vec2
	Radius      float64
	Fill        color.RGBA
	ShadowColor color.RGBA
	ShadowBlur  float64
}

// Line is a stroked segment. Width is in pixels; HairlineWidth means one pixel.
type Line struct {
	Start Vec2
	End   Vec2
	Width float64
	Color color.RGBA
	Cap   StrokeCap
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return Distance(l.Start, l.End)
}

// Canvas is a host drawing surface. Calls arrive back-to-front.
type Canvas interface {
	FillCircle(c Circle)
	StrokeLine(l Line)
}

// Hand identifies one of the three clock hands.
type Hand int

const (
	HourHand Hand = iota
	MinuteHand
	SecondHand
)

func (h Hand) String() string {
	switch h {
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	}
	return "unknown"
}

// HandStyle holds the fixed length and density-independent width of a hand.
type HandStyle struct {
	Length  float64
	WidthDP float64
}

var handStyles = [...]HandStyle{
	HourHand:   {Length: 120, WidthDP: 7},
	MinuteHand: {Length: 200, WidthDP: 3},
	SecondHand: {Length: 260, WidthDP: 1},
}

// Style returns the fixed drawing parameters for h.
func (h Hand) Style() HandStyle {
	return handStyles[h]
}
