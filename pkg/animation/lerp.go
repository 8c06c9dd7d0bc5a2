package animation

import "github.com/go-canopy/canopy/pkg/units"

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpLength interpolates the scalar of a length. When the two units differ,
// the interpolation happens in value space and the end unit applies for the
// whole transition, so the value resolves against a single reference frame.
func LerpLength(a, b units.Length, t float64) units.Length {
	return units.Length{
		Value: LerpFloat64(a.Value, b.Value, t),
		Unit:  b.Unit,
	}
}

// LerpLength2 interpolates both axes of a Length2 independently.
func LerpLength2(a, b units.Length2, t float64) units.Length2 {
	return units.Length2{
		X: LerpLength(a.X, b.X, t),
		Y: LerpLength(a.Y, b.Y, t),
	}
}
