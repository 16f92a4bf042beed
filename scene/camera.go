package scene

import (
	"github.com/chewxy/math32"

	"scene-gallery/math"
)

// Camera is a perspective camera. FOV is the vertical field of view in
// degrees. The camera looks along Forward; a new camera looks down -Z.
type Camera struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
	FOV      float32
	Aspect   float32
	Near     float32
	Far      float32
}

func NewCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Position: math.Vec3Zero,
		Forward:  math.Vec3Back,
		Up:       math.Vec3Up,
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// UpdateAspectRatio sets Aspect to width/height. A non-positive height is
// ignored so a minimised surface does not poison the projection.
func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 && width > 0 {
		c.Aspect = width / height
	}
}

func (c *Camera) SetPosition(pos math.Vec3) {
	c.Position = pos
}

func (c *Camera) SetUp(up math.Vec3) {
	c.Up = up.Normalize()
}

// LookAt points the camera at target. Looking at its own position is a no-op.
func (c *Camera) LookAt(target math.Vec3) {
	dir := target.Sub(c.Position)
	if dir.LengthSqr() == 0 {
		return
	}
	c.Forward = dir.Normalize()
}

// Target returns a point one unit in front of the camera.
func (c *Camera) Target() math.Vec3 {
	return c.Position.Add(c.Forward)
}

func (c *Camera) ViewMatrix() math.Mat4 {
	up := c.Up
	// Looking straight along Up degenerates the basis; borrow another axis.
	if math32.Abs(up.Normalize().Dot(c.Forward)) > 0.9999 {
		up = math.Vec3Front
		if math32.Abs(c.Forward.Z) > 0.9999 {
			up = math.Vec3Right
		}
	}
	return math.Mat4LookAt(c.Position, c.Target(), up)
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	fov := c.FOV * math32.Pi / 180
	return math.Mat4Perspective(fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection maps world space to clip space.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ViewMatrix().Mul(c.ProjectionMatrix())
}

// Ray builds a world-space ray from the camera through a point given in
// normalized device coordinates.
func (c *Camera) Ray(ndc math.Vec2) Ray {
	tanHalf := math32.Tan(c.FOV * math32.Pi / 360)
	dirView := math.Vec3{X: ndc.X * tanHalf * c.Aspect, Y: ndc.Y * tanHalf, Z: -1}
	dir := c.ViewMatrix().Inverse().MulDir(dirView)
	return Ray{
		Origin:    c.Position,
		Direction: dir.Normalize(),
	}
}
