package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "materiallight", Title: "Material and Light", Build: buildMaterialLight, Defaults: materialLightDefaults})
}

func materialLightDefaults() panel.Snapshot {
	return panel.Snapshot{
		"boxPositionX":       panel.Number(0),
		"boxPositionY":       panel.Number(0.5),
		"boxPositionZ":       panel.Number(0),
		"boxColor":           panel.Color(4, 158, 244),
		"roughness":          panel.Number(0),
		"clearcoat":          panel.Number(0),
		"clearcoatRoughness": panel.Number(0),
		"reflectivity":       panel.Number(0),
		"lightPositionX":     panel.Number(0),
		"lightPositionY":     panel.Number(2),
		"lightPositionZ":     panel.Number(0),
		"lightColor":         panel.Color(255, 255, 255),
		"showFloor":          panel.Bool(false),
	}
}

func buildMaterialLight(env Env) (*Demo, error) {
	d, err := newDemo(env, materialLightDefaults())
	if err != nil {
		return nil, err
	}
	s := d.Session
	s.Scene().Background = core.ColorHex(0x444444)
	s.Camera().SetPosition(math.NewVec3(2, 2, 5))
	s.Camera().LookAt(math.Vec3Zero)

	mat := scene.NewPhysicalMaterial("BoxMaterial", core.ColorHex(0x049ef4))
	mat.Roughness, mat.Clearcoat, mat.ClearcoatRoughness, mat.Reflectivity = 0, 0, 0, 0
	box := scene.NewMeshNode("Box", scene.CreateBox(1, 1, 1), mat)
	box.SetPosition(math.NewVec3(0, 0.5, 0))

	light := scene.NewPointLight("PointLight", core.ColorWhite, 1, 0, 1)
	light.SetPosition(math.NewVec3(0, 2, 0))
	helper := scene.CreatePointLightHelper(0.1, core.ColorWhite)
	light.AddChild(helper)

	floor := scene.NewFloor(10, core.ColorWhite, core.ColorRGB(0.2, 0.2, 0.2))
	floor.Visible = false

	s.AddObject(box)
	s.AddObject(floor)
	s.AddObject(light)
	d.orbit(math.Vec3Zero)

	p := d.Panel
	position := func(n *scene.Node, axis math.Axis) func(float64) {
		return func(v float64) {
			n.Transform.Position = n.Transform.Position.With(axis, float32(v))
		}
	}
	unit := func(dst *float32) func(float64) {
		return func(v float64) { *dst = float32(v) }
	}
	coord := func(label, folder string) panel.Constraints {
		return panel.Constraints{Label: label, Folder: folder, Range: panel.Between(-5, 5)}
	}
	ratio := func(folder string) panel.Constraints {
		return panel.Constraints{Folder: folder, Range: panel.Between(0, 1)}
	}

	mustBind(p.BindNumber("boxPositionX", coord("x", "Box"), position(box, math.AxisX)))
	mustBind(p.BindNumber("boxPositionY", coord("y", "Box"), position(box, math.AxisY)))
	mustBind(p.BindNumber("boxPositionZ", coord("z", "Box"), position(box, math.AxisZ)))
	mustBind(p.BindColor("boxColor", "color", func(c panel.RGB) { mat.Color = colorFromRGB(c) }))

	mustBind(p.BindNumber("roughness", ratio("Material"), unit(&mat.Roughness)))
	mustBind(p.BindNumber("clearcoat", ratio("Material"), unit(&mat.Clearcoat)))
	mustBind(p.BindNumber("clearcoatRoughness", ratio("Material"), unit(&mat.ClearcoatRoughness)))
	mustBind(p.BindNumber("reflectivity", ratio("Material"), unit(&mat.Reflectivity)))

	mustBind(p.BindNumber("lightPositionX", coord("x", "Light"), position(light, math.AxisX)))
	mustBind(p.BindNumber("lightPositionY", coord("y", "Light"), position(light, math.AxisY)))
	mustBind(p.BindNumber("lightPositionZ", coord("z", "Light"), position(light, math.AxisZ)))
	mustBind(p.BindColor("lightColor", "color", func(c panel.RGB) {
		light.Light.Color = colorFromRGB(c)
		helper.Material.Color = light.Light.Color
	}))

	mustBind(p.BindBool("showFloor", "showFloor", func(b bool) { floor.Visible = b }))
	p.AddButton("Reset", p.Reset)
	return d.start(), nil
}
