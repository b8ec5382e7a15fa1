package engine2D

import (
	"math"

	"clockface/internal/angle"
)

// Dial proportions and tick sizes, in surface units.
const (
	dialRadiusRatio = 2.0 / 3.0

	TickCount        = 60
	tickStepDegrees  = 360 / TickCount
	majorTickEvery   = 30
	tickInset        = 12.0
	majorTickLength  = 60.0
	minorTickLength  = 40.0
	majorTickWidthDP = 2.0

	shadowBlur  = 150.0
	shadowAlpha = 0.8
)

// HourAngle returns the hour hand angle in degrees, 0 at 3 o'clock and
// increasing clockwise.
func HourAngle(s ClockState) float64 {
	return (float64(s.hours)+float64(s.minutes)/60)*30 - 90
}

// MinuteAngle returns the minute hand angle in degrees.
func MinuteAngle(s ClockState) float64 {
	return (float64(s.minutes)+float64(s.seconds)/60)*6 - 90
}

// SecondAngle returns the second hand angle in degrees.
func SecondAngle(s ClockState) float64 {
	return float64(s.seconds)*6 - 90
}

// HandAngle dispatches to the angle function for h.
func HandAngle(h Hand, s ClockState) float64 {
	switch h {
	case HourHand:
		return HourAngle(s)
	case MinuteHand:
		return MinuteAngle(s)
	default:
		return SecondAngle(s)
	}
}

// Geometry is the dial placement for one redraw.
type Geometry struct {
	Center Vec2
	Radius float64
}

// NewGeometry centers the dial on the surface with a radius of two thirds of
// half the surface width.
func NewGeometry(width, height float64) Geometry {
	return Geometry{
		Center: Vec2{X: width / 2, Y: height / 2},
		Radius: width / 2 * dialRadiusRatio,
	}
}

// PointAt returns the point at distance from the dial center along degrees.
func (g Geometry) PointAt(degrees, distance float64) Vec2 {
	return HandEndpoint(g.Center, degrees, distance)
}

// HandEndpoint returns center + length*(cos, sin) of the angle in degrees.
func HandEndpoint(center Vec2, degrees, length float64) Vec2 {
	rad := angle.ToRadians(degrees)
	return Vec2{
		X: center.X + length*math.Cos(rad),
		Y: center.Y + length*math.Sin(rad),
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Tick is one of the 60 marks around the dial.
type Tick struct {
	Degrees int
	Major   bool
	Start   Vec2
	End     Vec2
}

// IsMajorTick reports whether the mark at degrees sits on a numeral position.
func IsMajorTick(degrees int) bool {
	return degrees%majorTickEvery == 0
}

// Ticks lays out the 60 marks at 6 degree steps starting at 3 o'clock.
func (g Geometry) Ticks() []Tick {
	ticks := make([]Tick, 0, TickCount)
	for deg := 0; deg < 360; deg += tickStepDegrees {
		major := IsMajorTick(deg)
		length := minorTickLength
		if major {
			length = majorTickLength
		}
		ticks = append(ticks, Tick{
			Degrees: deg,
			Major:   major,
			Start:   g.PointAt(float64(deg), g.Radius-tickInset),
			End:     g.PointAt(float64(deg), g.Radius-length),
		})
	}
	return ticks
}
