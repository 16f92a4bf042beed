package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "datgui", Title: "dat.GUI Demo", Build: buildDatGui, Defaults: datGuiDefaults})
}

func datGuiDefaults() panel.Snapshot {
	return panel.Snapshot{
		"xPosition": panel.Number(0),
		"yRotation": panel.Number(0),
		"wireframe": panel.Bool(true),
	}
}

func buildDatGui(env Env) (*Demo, error) {
	d, err := newDemo(env, datGuiDefaults())
	if err != nil {
		return nil, err
	}
	mat := wireframeMaterial("SphereMaterial", core.ColorWhite)
	sphere := scene.NewMeshNode("Sphere", scene.CreateSphere(1, 32, 16), mat)
	d.Session.AddObject(sphere)
	d.orbit(math.Vec3Zero)

	p := d.Panel
	mustBind(p.BindNumber("xPosition", panel.Constraints{Label: "X", Range: panel.Between(-5, 5), Step: 0.5}, func(v float64) {
		sphere.Transform.Position.X = float32(v)
	}))
	mustBind(p.BindNumber("yRotation", panel.Constraints{Label: "Y", Range: panel.Between(-180, 180), Step: 5, Unit: panel.UnitDegrees}, func(v float64) {
		sphere.Transform.Rotation.Y = float32(v)
	}))
	mustBind(p.BindBool("wireframe", "Wireframe", func(b bool) {
		mat.Wireframe = b
	}))
	p.AddButton("Home", p.Reset)
	return d.start(), nil
}
