// Package angle converts between degrees and radians for hand positioning.
package angle

import "math"

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}
