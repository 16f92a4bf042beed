package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "tweakpane", Title: "Tweakpane Demo", Build: buildTweakpane, Defaults: tweakpaneDefaults})
}

func tweakpaneDefaults() panel.Snapshot {
	bg := defaultBackground
	return panel.Snapshot{
		"xPosition":       panel.Number(0),
		"yRotation":       panel.Number(0),
		"wireframe":       panel.Bool(true),
		"showStats":       panel.Bool(false),
		"backgroundColor": panel.Color(math.ChannelUp(float64(bg.R)), math.ChannelUp(float64(bg.G)), math.ChannelUp(float64(bg.B))),
	}
}

func buildTweakpane(env Env) (*Demo, error) {
	d, err := newDemo(env, tweakpaneDefaults())
	if err != nil {
		return nil, err
	}
	mat := wireframeMaterial("SphereMaterial", core.ColorWhite)
	sphere := scene.NewMeshNode("Sphere", scene.CreateSphere(1, 32, 16), mat)
	d.Session.AddObject(sphere)
	d.orbit(math.Vec3Zero)

	p := d.Panel
	mustBind(p.BindBool("wireframe", "wireframe", func(b bool) { mat.Wireframe = b }))
	mustBind(p.BindBool("showStats", "showStats", func(b bool) { d.showStats = b }))
	mustBind(p.BindColor("backgroundColor", "backgroundColor", func(c panel.RGB) {
		d.Session.Scene().Background = colorFromRGB(c)
	}))
	mustBind(p.BindNumber("xPosition", panel.Constraints{Folder: "Movement", Range: panel.Between(-5, 5)}, func(v float64) {
		sphere.Transform.Position.X = float32(v)
	}))
	mustBind(p.BindNumber("yRotation", panel.Constraints{Folder: "Movement", Range: panel.Between(-180, 180), Unit: panel.UnitDegrees}, func(v float64) {
		sphere.Transform.Rotation.Y = float32(v)
	}))
	p.AddButton("Reset", p.Reset)
	return d.start(), nil
}
