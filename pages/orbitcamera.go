package pages

import (
	stdmath "math"

	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
	"scene-gallery/session"
)

func init() {
	register(Page{Route: "orbitcamera", Title: "Orbit Camera", Build: buildOrbitCamera})
}

const (
	orbitRadius   = 3
	orbitStepDeg  = 0.5
	orbitFullTurn = 360
)

// orbiter circles the camera around the origin while playing.
type orbiter struct {
	cam     *scene.Camera
	target  math.Vec3
	angle   float64
	playing bool
}

func (o *orbiter) Update(session.Frame) {
	if !o.playing {
		return
	}
	o.angle += orbitStepDeg
	if o.angle >= orbitFullTurn {
		o.angle = math.WrapDegrees(o.angle)
	}
	o.place()
}

func (o *orbiter) place() {
	rad := math.DegreesToRadians(o.angle)
	x := float32(orbitRadius * stdmath.Sin(rad))
	z := float32(orbitRadius * stdmath.Cos(rad))
	o.cam.SetPosition(math.NewVec3(x, 0, z))
	o.cam.LookAt(o.target)
}

func (o *orbiter) reset() {
	o.playing = false
	o.angle = 0
	o.place()
}

func buildOrbitCamera(env Env) (*Demo, error) {
	d, err := newDemo(env, panel.Snapshot{})
	if err != nil {
		return nil, err
	}
	box := scene.NewMeshNode("Box", scene.CreateBox(1, 1, 1), wireframeMaterial("BoxMaterial", core.ColorWhite))
	d.Session.AddObject(box)
	d.showStats = true

	o := &orbiter{cam: d.Session.Camera(), target: box.Transform.Position}
	d.Session.AddUpdater(o)
	d.Panel.AddButton("Play", func() { o.playing = true })
	d.Panel.AddButton("Stop", func() { o.playing = false })
	d.Panel.AddButton("Reset", o.reset)
	return d.start(), nil
}
