package math

import stdmath "math"

// Unit conversions between panel display space and scene space. These run
// in float64 so a degrees->radians->degrees round trip is exact to 1e-9.

// DegreesToRadians converts d degrees to radians.
func DegreesToRadians(d float64) float64 {
	return d * stdmath.Pi / 180
}

// RadiansToDegrees converts r radians to degrees.
func RadiansToDegrees(r float64) float64 {
	return r * 180 / stdmath.Pi
}

// ChannelDown maps a 0-255 color channel to 0-1.
func ChannelDown(c float64) float64 {
	return c / 255
}

// ChannelUp maps a 0-1 color channel to 0-255.
func ChannelUp(c float64) float64 {
	return c * 255
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDegrees folds d into [0, 360).
func WrapDegrees(d float64) float64 {
	d = stdmath.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Clamp32 is Clamp for float32.
func Clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
