package engine2D

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	kind   string
	circle Circle
	line   Line
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) FillCircle(circle Circle) {
	c.calls = append(c.calls, drawCall{kind: "circle", circle: circle})
}

func (c *recordingCanvas) StrokeLine(line Line) {
	c.calls = append(c.calls, drawCall{kind: "line", line: line})
}

func TestRenderer_DrawOrder(t *testing.T) {
	r := NewRenderer(DarkTheme, 1)
	canvas := &recordingCanvas{}
	r.Render(canvas, NewClockState(2, 33, 21), 720, 1280)

	require.Len(t, canvas.calls, 1+TickCount+3)
	assert.Equal(t, "circle", canvas.calls[0].kind)
	for _, call := range canvas.calls[1:] {
		assert.Equal(t, "line", call.kind)
	}

	hour := canvas.calls[1+TickCount].line
	minute := canvas.calls[2+TickCount].line
	second := canvas.calls[3+TickCount].line
	assert.InDelta(t, 120.0, hour.Length(), 1e-6)
	assert.InDelta(t, 200.0, minute.Length(), 1e-6)
	assert.InDelta(t, 260.0, second.Length(), 1e-6)
}

func TestRenderer_Dial(t *testing.T) {
	r := NewRenderer(LightTheme, 1)
	frame := r.Frame(NewClockState(0, 0, 0), 600, 800)

	want := Circle{
		Center:      Vec2{X: 300, Y: 400},
		Radius:      200,
		Fill:        LightTheme.Background,
		ShadowColor: color.RGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 204},
		ShadowBlur:  150,
	}
	if diff := cmp.Diff(want, frame.Dial); diff != "" {
		t.Errorf("dial mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_TickStyles(t *testing.T) {
	r := NewRenderer(DarkTheme, 2.5)
	frame := r.Frame(NewClockState(0, 0, 0), 720, 720)

	require.Len(t, frame.Ticks, TickCount)
	for i, tick := range frame.Ticks {
		assert.Equal(t, CapRound, tick.Cap)
		assert.Equal(t, DarkTheme.Foreground, tick.Color)
		if IsMajorTick(i * 6) {
			assert.InDelta(t, 5.0, tick.Width, tolerance)
		} else {
			assert.Equal(t, HairlineWidth, tick.Width)
		}
	}
}

func TestRenderer_HandStyles(t *testing.T) {
	r := NewRenderer(DarkTheme, 2)
	frame := r.Frame(NewClockState(5, 10, 15), 720, 1280)

	tests := []struct {
		hand  Hand
		width float64
		color color.RGBA
	}{
		{HourHand, 14, DarkTheme.Foreground},
		{MinuteHand, 6, DarkTheme.Foreground},
		{SecondHand, 2, SecondHandColor},
	}
	for _, tt := range tests {
		t.Run(tt.hand.String(), func(t *testing.T) {
			line := frame.Hand(tt.hand)
			assert.Equal(t, frame.Geometry.Center, line.Start)
			assert.InDelta(t, tt.width, line.Width, tolerance)
			assert.Equal(t, tt.color, line.Color)
			assert.Equal(t, CapRound, line.Cap)
			assert.InDelta(t, tt.hand.Style().Length, line.Length(), 1e-6)

			want := HandEndpoint(frame.Geometry.Center, HandAngle(tt.hand, frame.State), tt.hand.Style().Length)
			assert.InDelta(t, want.X, line.End.X, tolerance)
			assert.InDelta(t, want.Y, line.End.Y, tolerance)
		})
	}
}

func TestRenderer_SecondHandIgnoresTheme(t *testing.T) {
	dark := NewRenderer(DarkTheme, 1).Frame(NewClockState(1, 1, 1), 500, 500)
	light := NewRenderer(LightTheme, 1).Frame(NewClockState(1, 1, 1), 500, 500)
	assert.Equal(t, dark.Hand(SecondHand).Color, light.Hand(SecondHand).Color)
}

func TestRenderer_DoesNotMutateState(t *testing.T) {
	state := NewClockState(11, 59, 59)
	r := NewRenderer(DarkTheme, 1)
	r.Render(&recordingCanvas{}, state, 100, 100)
	assert.Equal(t, "11:59:59", state.String())
}

func TestNewRenderer_DefaultDensity(t *testing.T) {
	assert.InDelta(t, 1.0, NewRenderer(DarkTheme, 0).Density, tolerance)
	assert.InDelta(t, 1.0, NewRenderer(DarkTheme, -3).Density, tolerance)
}
