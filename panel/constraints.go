package panel

import (
	stdmath "math"

	"scene-gallery/math"
)

// Unit is the conversion applied between the panel's display value and
// the value a handler receives.
type Unit int

const (
	UnitNone Unit = iota
	// UnitDegrees shows degrees and hands radians to the handler.
	UnitDegrees
	// UnitChannel shows 0-255 color channels and hands 0-1 to the handler.
	UnitChannel
)

// Range is an inclusive numeric range.
type Range struct {
	Min, Max float64
}

// Between returns a range for Constraints.
func Between(lo, hi float64) *Range {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Range{Min: lo, Max: hi}
}

// Constraints describe how an input is displayed and converted.
type Constraints struct {
	Range *Range
	Step  float64
	Unit  Unit
	Label string
	// Folder groups inputs under a heading in the panel display.
	Folder string
}

// normalize snaps to Step and clamps into Range. Color channels in
// UnitChannel are clamped into 0-255.
func (c Constraints) normalize(v Value) Value {
	switch v.Kind {
	case KindNumber:
		n := v.Number
		if c.Step > 0 {
			n = stdmath.Round(n/c.Step) * c.Step
		}
		if c.Range != nil {
			n = math.Clamp(n, c.Range.Min, c.Range.Max)
		}
		v.Number = n
	case KindColor:
		if c.Unit == UnitChannel {
			v.Color = RGB{
				R: math.Clamp(v.Color.R, 0, 255),
				G: math.Clamp(v.Color.G, 0, 255),
				B: math.Clamp(v.Color.B, 0, 255),
			}
		}
	}
	return v
}

// convert maps a display value into scene units.
func (c Constraints) convert(v Value) Value {
	switch {
	case v.Kind == KindNumber && c.Unit == UnitDegrees:
		v.Number = math.DegreesToRadians(v.Number)
	case v.Kind == KindNumber && c.Unit == UnitChannel:
		v.Number = math.ChannelDown(v.Number)
	case v.Kind == KindColor && c.Unit == UnitChannel:
		v.Color = RGB{
			R: math.ChannelDown(v.Color.R),
			G: math.ChannelDown(v.Color.G),
			B: math.ChannelDown(v.Color.B),
		}
	}
	return v
}

// ToDisplay maps a scene-unit value back into display units; the inverse
// of the conversion handlers see.
func (c Constraints) ToDisplay(v Value) Value {
	switch {
	case v.Kind == KindNumber && c.Unit == UnitDegrees:
		v.Number = math.RadiansToDegrees(v.Number)
	case v.Kind == KindNumber && c.Unit == UnitChannel:
		v.Number = math.ChannelUp(v.Number)
	case v.Kind == KindColor && c.Unit == UnitChannel:
		v.Color = RGB{
			R: math.ChannelUp(v.Color.R),
			G: math.ChannelUp(v.Color.G),
			B: math.ChannelUp(v.Color.B),
		}
	}
	return v
}
