package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "switchmodel", Title: "Switch Model", Build: buildSwitchModel, Defaults: switchModelDefaults})
}

// Horizontal spacing between the three models.
const modelSpacing = 3

func switchModelDefaults() panel.Snapshot {
	return panel.Snapshot{
		"xPosition":  panel.Number(0),
		"yPosition":  panel.Number(0),
		"zPosition":  panel.Number(0),
		"xRotation":  panel.Number(0),
		"yRotation":  panel.Number(0),
		"zRotation":  panel.Number(0),
		"wireframe":  panel.Bool(true),
		"showStats":  panel.Bool(false),
		"color":      panel.Color(255, 255, 255),
		"showSphere": panel.Bool(false),
		"showBox":    panel.Bool(true),
		"showCone":   panel.Bool(false),
	}
}

func buildSwitchModel(env Env) (*Demo, error) {
	d, err := newDemo(env, switchModelDefaults())
	if err != nil {
		return nil, err
	}
	s := d.Session
	s.Camera().SetPosition(math.NewVec3(0, 0, 5))
	s.Camera().LookAt(math.Vec3Zero)

	mat := wireframeMaterial("ModelMaterial", core.ColorWhite)
	models := []struct {
		node   *scene.Node
		offset float32
	}{
		{scene.NewMeshNode("Sphere", scene.CreateSphere(1, 32, 16), mat), -modelSpacing},
		{scene.NewMeshNode("Box", scene.CreateBox(1, 1, 1), mat), 0},
		{scene.NewMeshNode("Cone", scene.CreateCone(1, 1, 32), mat), modelSpacing},
	}
	for _, m := range models {
		m.node.SetPosition(math.NewVec3(m.offset, 0, 0))
		s.AddObject(m.node)
	}
	d.orbit(math.Vec3Zero)

	p := d.Panel
	mustBind(p.BindBool("wireframe", "wireframe", func(b bool) { mat.Wireframe = b }))
	mustBind(p.BindBool("showStats", "showStats", func(b bool) { d.showStats = b }))
	mustBind(p.BindColor("color", "color", func(c panel.RGB) { mat.Color = colorFromRGB(c) }))

	for i, path := range []string{"showSphere", "showBox", "showCone"} {
		n := models[i].node
		mustBind(p.BindBool(path, n.Name, func(b bool) { n.Visible = b }))
	}

	axes := []struct {
		axis   math.Axis
		suffix string
	}{{math.AxisX, "x"}, {math.AxisY, "y"}, {math.AxisZ, "z"}}
	for _, a := range axes {
		axis := a.axis
		mustBind(p.BindNumber(a.suffix+"Position", panel.Constraints{Label: a.suffix, Folder: "Position", Range: panel.Between(-5, 5)}, func(v float64) {
			for _, m := range models {
				pos := float32(v)
				if axis == math.AxisX {
					pos += m.offset
				}
				m.node.Transform.Position = m.node.Transform.Position.With(axis, pos)
			}
		}))
		mustBind(p.BindNumber(a.suffix+"Rotation", panel.Constraints{Label: a.suffix, Folder: "Rotation", Range: panel.Between(-180, 180), Unit: panel.UnitDegrees}, func(v float64) {
			for _, m := range models {
				m.node.Transform.Rotation = m.node.Transform.Rotation.With(axis, float32(v))
			}
		}))
	}
	p.AddButton("Reset", p.Reset)

	// Only the box is shown until a card is toggled.
	models[0].node.Visible = false
	models[2].node.Visible = false
	return d.start(), nil
}
