package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "camera", Title: "Camera Views", Build: buildCamera})
}

// cameraView is a fixed viewpoint looking at the origin.
type cameraView struct {
	label    string
	position math.Vec3
	up       math.Vec3
}

var cameraViews = []cameraView{
	{label: "FrontView", position: math.NewVec3(0, 0, 3), up: math.Vec3Up},
	{label: "TopView", position: math.NewVec3(0, 3, 0), up: math.Vec3Right},
	{label: "SideView", position: math.NewVec3(3, 0, 0), up: math.Vec3Up},
}

func buildCamera(env Env) (*Demo, error) {
	d, err := newDemo(env, panel.Snapshot{})
	if err != nil {
		return nil, err
	}
	d.Session.Scene().Background = core.ColorBlack

	cone := scene.NewMeshNode("Cone", scene.CreateCone(1, 1, 32), scene.NewBasicMaterial("ConeMaterial", core.ColorYellow))
	cone.SetPosition(math.NewVec3(0, 0.5, 0))
	d.Session.AddObject(cone)
	d.Session.AddObject(scene.CreateAxes(10))
	d.orbit(math.Vec3Zero)
	d.showStats = true

	for _, v := range cameraViews {
		v := v
		d.Panel.AddButton(v.label, func() {
			cam := d.Session.Camera()
			cam.SetPosition(v.position)
			cam.SetUp(v.up)
			cam.LookAt(math.Vec3Zero)
			d.Controls.Sync()
		})
	}
	return d.start(), nil
}
