package core

import (
	"scene-gallery/math"
)

// Color is a linear RGBA color with channels in 0-1.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// ColorHex builds an opaque color from a 0xRRGGBB literal.
func ColorHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// ColorRGB builds an opaque color from 0-1 channels.
func ColorRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}

// Transform is a position, an XYZ Euler rotation in radians and a scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.Vec3Zero,
		Scale:    math.Vec3One,
	}
}

// Matrix returns the local-to-parent matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Mat4TRS(t.Position, t.Rotation, t.Scale)
}

// Rect is a sub-rectangle of a surface in normalized 0-1 coordinates with
// the origin at the bottom-left.
type Rect struct {
	X, Y, Width, Height float32
}

// FullRect covers the whole surface.
var FullRect = Rect{X: 0, Y: 0, Width: 1, Height: 1}

// PixelRect is a rectangle in surface pixels, origin bottom-left.
type PixelRect struct {
	X, Y, Width, Height int
}

func (r PixelRect) Area() int {
	return r.Width * r.Height
}

// Aspect returns Width/Height, or 1 when the rect has no height.
func (r PixelRect) Aspect() float32 {
	if r.Height <= 0 {
		return 1
	}
	return float32(r.Width) / float32(r.Height)
}

// Overlaps reports whether r and o share at least one pixel.
func (r PixelRect) Overlaps(o PixelRect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
