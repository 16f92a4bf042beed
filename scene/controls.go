package scene

import (
	"github.com/chewxy/math32"

	"scene-gallery/math"
)

// OrbitControls orbits a camera around a target using spherical
// coordinates. Input accumulates into pending deltas that Update applies,
// fully when damping is off and a DampingFactor share per frame when on.
type OrbitControls struct {
	Camera        *Camera
	Target        math.Vec3
	EnableDamping bool
	DampingFactor float32
	MinDistance   float32
	MaxDistance   float32
	RotateSpeed   float32

	radius, theta, phi  float32
	dTheta, dPhi, scale float32
}

const minPolar = 0.000001

// NewOrbitControls reads the camera's current offset from target.
func NewOrbitControls(camera *Camera, target math.Vec3) *OrbitControls {
	o := &OrbitControls{
		Camera:        camera,
		Target:        target,
		DampingFactor: 0.05,
		MinDistance:   0,
		MaxDistance:   math32.Inf(1),
		RotateSpeed:   1,
		scale:         1,
	}
	o.Sync()
	return o
}

// Sync re-reads the spherical coordinates from the camera position, for
// use after something else moved the camera.
func (o *OrbitControls) Sync() {
	offset := o.Camera.Position.Sub(o.Target)
	o.radius = offset.Length()
	if o.radius == 0 {
		o.theta, o.phi = 0, math32.Pi/2
	} else {
		o.theta = math32.Atan2(offset.X, offset.Z)
		o.phi = math32.Acos(math.Clamp32(offset.Y/o.radius, -1, 1))
	}
	o.dTheta, o.dPhi, o.scale = 0, 0, 1
}

// Rotate queues an orbit by the given azimuth and polar angles in radians.
func (o *OrbitControls) Rotate(azimuth, polar float32) {
	o.dTheta -= azimuth * o.RotateSpeed
	o.dPhi -= polar * o.RotateSpeed
}

// Zoom queues a dolly; factors above 1 move the camera away.
func (o *OrbitControls) Zoom(factor float32) {
	if factor > 0 {
		o.scale *= factor
	}
}

// Update applies pending input to the camera. It reports whether the
// camera moved.
func (o *OrbitControls) Update() bool {
	share := float32(1)
	if o.EnableDamping {
		share = o.DampingFactor
	}

	moved := o.dTheta != 0 || o.dPhi != 0 || o.scale != 1
	o.theta += o.dTheta * share
	o.phi += o.dPhi * share
	o.phi = math.Clamp32(o.phi, minPolar, math32.Pi-minPolar)
	o.radius = math.Clamp32(o.radius*o.scale, o.MinDistance, o.MaxDistance)

	if o.EnableDamping {
		o.dTheta *= 1 - o.DampingFactor
		o.dPhi *= 1 - o.DampingFactor
		if math32.Abs(o.dTheta) < 1e-6 {
			o.dTheta = 0
		}
		if math32.Abs(o.dPhi) < 1e-6 {
			o.dPhi = 0
		}
	} else {
		o.dTheta, o.dPhi = 0, 0
	}
	o.scale = 1

	sinPhi, cosPhi := math32.Sincos(o.phi)
	sinTheta, cosTheta := math32.Sincos(o.theta)
	offset := math.Vec3{
		X: o.radius * sinPhi * sinTheta,
		Y: o.radius * cosPhi,
		Z: o.radius * sinPhi * cosTheta,
	}
	o.Camera.SetPosition(o.Target.Add(offset))
	o.Camera.LookAt(o.Target)
	return moved
}
