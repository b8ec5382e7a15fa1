package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRadians(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    float64
	}{
		{"zero", 0, 0},
		{"quarter", 90, math.Pi / 2},
		{"half", 180, math.Pi},
		{"negative quarter", -90, -math.Pi / 2},
		{"full turn", 360, 2 * math.Pi},
		{"fractional", -8.5, -8.5 * math.Pi / 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ToRadians(tt.degrees), 1e-12)
		})
	}
}

func TestToDegrees(t *testing.T) {
	assert.InDelta(t, 180.0, ToDegrees(math.Pi), 1e-12)
	assert.InDelta(t, -90.0, ToDegrees(-math.Pi/2), 1e-12)
}

func TestRoundTripStable(t *testing.T) {
	for _, x := range []float64{-720, -90, -8.5, 0, 0.001, 36, 111.1, 354, 1e6} {
		r := ToRadians(x)
		assert.InDelta(t, r, ToRadians(ToDegrees(r)), 1e-9, "x=%v", x)
	}
}
