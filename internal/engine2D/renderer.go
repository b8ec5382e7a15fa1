package engine2D

// Renderer turns a ClockState into the ordered primitives of one frame.
type Renderer struct {
	Theme   Theme
	Density float64
}

// NewRenderer returns a renderer for theme. Non-positive density means 1.
func NewRenderer(theme Theme, density float64) *Renderer {
	if density <= 0 {
		density = 1
	}
	return &Renderer{Theme: theme, Density: density}
}

// Frame is a complete clock face, back-to-front.
type Frame struct {
	State    ClockState
	Geometry Geometry
	Dial     Circle
	Ticks    []Line
	Hands    [3]Line
}

// Hand returns the stroked segment for h.
func (f *Frame) Hand(h Hand) Line {
	return f.Hands[h]
}

// Draw issues the dial, ticks and hands to canvas in that order.
func (f *Frame) Draw(canvas Canvas) {
	canvas.FillCircle(f.Dial)
	for _, tick := range f.Ticks {
		canvas.StrokeLine(tick)
	}
	for _, hand := range f.Hands {
		canvas.StrokeLine(hand)
	}
}

// Frame computes the face for state on a surface of width x height.
func (r *Renderer) Frame(state ClockState, width, height float64) *Frame {
	geometry := NewGeometry(width, height)
	frame := &Frame{
		State:    state,
		Geometry: geometry,
		Dial: Circle{
			Center:      geometry.Center,
			Radius:      geometry.Radius,
			Fill:        r.Theme.Background,
			ShadowColor: r.Theme.ShadowColor(),
			ShadowBlur:  shadowBlur,
		},
		Ticks: make([]Line, 0, TickCount),
	}

	for _, tick := range geometry.Ticks() {
		strokeWidth := HairlineWidth
		if tick.Major {
			strokeWidth = r.dp(majorTickWidthDP)
		}
		frame.Ticks = append(frame.Ticks, Line{
			Start: tick.Start,
			End:   tick.End,
			Width: strokeWidth,
			Color: r.Theme.Foreground,
			Cap:   CapRound,
		})
	}

	for _, hand := range []Hand{HourHand, MinuteHand, SecondHand} {
		style := hand.Style()
		col := r.Theme.Foreground
		if hand == SecondHand {
			col = SecondHandColor
		}
		frame.Hands[hand] = Line{
			Start: geometry.Center,
			End:   HandEndpoint(geometry.Center, HandAngle(hand, state), style.Length),
			Width: r.dp(style.WidthDP),
			Color: col,
			Cap:   CapRound,
		}
	}

	return frame
}

// Render draws state onto canvas.
func (r *Renderer) Render(canvas Canvas, state ClockState, width, height float64) {
	r.Frame(state, width, height).Draw(canvas)
}

func (r *Renderer) dp(value float64) float64 {
	return value * r.Density
}
