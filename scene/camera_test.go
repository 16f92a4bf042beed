package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-gallery/math"
)

func TestCameraAspectGuard(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 100)
	c.UpdateAspectRatio(800, 600)
	assert.InDelta(t, 800.0/600.0, c.Aspect, 1e-6)
	c.UpdateAspectRatio(800, 0)
	assert.InDelta(t, 800.0/600.0, c.Aspect, 1e-6)
}

func TestCameraRayThroughCentre(t *testing.T) {
	c := NewCamera(60, 4.0/3.0, 0.1, 100)
	c.SetPosition(math.NewVec3(0, 0, 3))
	c.LookAt(math.Vec3Zero)

	r := c.Ray(math.Vec2{})
	assert.Equal(t, c.Position, r.Origin)
	assert.InDelta(t, 0, r.Direction.X, 1e-4)
	assert.InDelta(t, 0, r.Direction.Y, 1e-4)
	assert.InDelta(t, -1, r.Direction.Z, 1e-4)

	// The top edge of the screen tilts the ray up by half the fov.
	up := c.Ray(math.Vec2{Y: 1})
	assert.Greater(t, up.Direction.Y, float32(0))
	assert.InDelta(t, 0.5, up.Direction.Y, 1e-3) // sin(30 degrees)
}

func TestCameraTopViewUsesUp(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 100)
	c.SetPosition(math.NewVec3(0, 3, 0))
	c.SetUp(math.NewVec3(0, 0, 1))
	c.LookAt(math.Vec3Zero)

	p := c.ViewMatrix().MulVec3(math.Vec3Zero)
	assert.InDelta(t, -3, p.Z, 1e-4)
}

func TestOrbitControlsDamping(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 100)
	c.SetPosition(math.NewVec3(0, 0, 3))
	o := NewOrbitControls(c, math.Vec3Zero)

	o.Rotate(0.5, 0)
	assert.True(t, o.Update())
	first := c.Position
	assert.InDelta(t, 3, first.Length(), 1e-4, "orbiting keeps the radius")

	o.EnableDamping = true
	o.Rotate(0.5, 0)
	o.Update()
	step := c.Position.Distance(first)
	for i := 0; i < 200; i++ {
		o.Update()
	}
	assert.Greater(t, c.Position.Distance(first), step, "damped input keeps moving after release")
	assert.InDelta(t, 3, c.Position.Length(), 1e-4)
}

func TestOrbitControlsZoom(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 100)
	c.SetPosition(math.NewVec3(0, 0, 4))
	o := NewOrbitControls(c, math.Vec3Zero)
	o.MinDistance = 1
	o.Zoom(0.1)
	o.Update()
	assert.InDelta(t, 1, c.Position.Length(), 1e-4)
}
