package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "authoring", Title: "Scene Authoring", Build: buildAuthoring, Defaults: authoringDefaults})
}

const (
	initialModel   = "cubo"
	addDistance    = 3
	planeGuideSize = 10
)

var planeGuideColor = core.ColorHex(0x808080)

func authoringDefaults() panel.Snapshot {
	bg := defaultBackground
	return panel.Snapshot{
		"model":           panel.Choice(initialModel),
		"globalPlane":     panel.Bool(false),
		"globalWireframe": panel.Bool(true),
		"globalShowStats": panel.Bool(false),
		"globalColor":     panel.Color(math.ChannelUp(float64(bg.R)), math.ChannelUp(float64(bg.G)), math.ChannelUp(float64(bg.B))),
		"selectedPosX":    panel.Number(0),
		"selectedPosY":    panel.Number(0),
		"selectedPosZ":    panel.Number(0),
		"selectedRotX":    panel.Number(0),
		"selectedRotY":    panel.Number(0),
		"selectedRotZ":    panel.Number(0),
		"selectedColor":   panel.Color(0, 0, 0),
		"selectedOpacity": panel.Number(1),
	}
}

// authoring is the state of the scene authoring page: the models the
// user has placed and the plane guide.
type authoring struct {
	d      *Demo
	models map[scene.ObjectID]*scene.Node
	guide  *scene.Node
}

// addModel places a fresh white wireframe copy of the named catalog model.
func (a *authoring) addModel(name string, pos math.Vec3, transparent bool) (*scene.Node, bool) {
	mesh, ok := scene.NewModel(name)
	if !ok {
		return nil, false
	}
	mat := wireframeMaterial(name+"Material", core.ColorWhite)
	mat.DoubleSided = true
	mat.Transparent = transparent
	n := scene.NewMeshNode(name, mesh, mat)
	n.SetPosition(pos)
	a.d.Session.AddObject(n)
	a.models[n.ID] = n
	return n, true
}

func (a *authoring) removeModels() {
	a.d.Session.RemoveWhere(func(n *scene.Node) bool {
		_, ok := a.models[n.ID]
		return ok
	})
	clear(a.models)
}

func (a *authoring) reset() {
	a.removeModels()
	a.addModel(initialModel, math.Vec3Zero, true)
	if err := a.d.Panel.Import(authoringDefaults()); err != nil {
		a.d.Session.Logger().Error("reset authoring panel", "err", err)
	}
}

func (a *authoring) activeMaterial(fn func(m *scene.Material)) {
	a.d.Session.EditActive(func(n *scene.Node) {
		if n.Material != nil {
			fn(n.Material)
		}
	})
}

func buildAuthoring(env Env) (*Demo, error) {
	d, err := newDemo(env, authoringDefaults())
	if err != nil {
		return nil, err
	}
	a := &authoring{d: d, models: make(map[scene.ObjectID]*scene.Node)}
	s := d.Session

	a.guide = scene.CreatePlaneHelper(planeGuideSize, planeGuideColor)
	a.guide.Visible = false
	s.AddObject(a.guide)
	a.addModel(initialModel, math.Vec3Zero, true)
	d.orbit(math.Vec3Zero)

	d.onPointer = func(ndc math.Vec2) {
		change := s.Select(ndc)
		if change.Changed() {
			s.Logger().Debug("selection changed", "from", change.Previous, "to", change.Current)
		}
	}

	p := d.Panel
	mustBind(p.BindOption("model", "model", scene.ModelNames(), func(string) {}))
	p.AddButton("Agregar", func() {
		v, _ := p.Value("model")
		pos := s.Camera().Position.Add(math.NewVec3(0, 0, -addDistance))
		a.addModel(v.Option, pos, false)
	})

	mustBind(p.BindBool("globalWireframe", "wireframe", func(b bool) {
		for _, n := range a.models {
			n.Material.Wireframe = b
		}
	}))
	mustBind(p.BindColor("globalColor", "color", func(c panel.RGB) {
		s.Scene().Background = colorFromRGB(c)
	}))
	mustBind(p.BindBool("globalPlane", "Plane", func(b bool) { a.guide.Visible = b }))
	mustBind(p.BindBool("globalShowStats", "stats", func(b bool) { d.showStats = b }))

	const folder = "Selected model"
	offsets := []struct {
		path  string
		label string
		axis  math.Axis
		rot   bool
	}{
		{"selectedPosX", "posX", math.AxisX, false},
		{"selectedPosY", "posY", math.AxisY, false},
		{"selectedPosZ", "posZ", math.AxisZ, false},
		{"selectedRotX", "rotX", math.AxisX, true},
		{"selectedRotY", "rotY", math.AxisY, true},
		{"selectedRotZ", "rotZ", math.AxisZ, true},
	}
	for _, o := range offsets {
		axis := o.axis
		if o.rot {
			c := panel.Constraints{Label: o.label, Folder: folder, Range: panel.Between(-180, 180), Unit: panel.UnitDegrees}
			mustBind(p.BindNumber(o.path, c, func(v float64) { s.OffsetRotation(axis, float32(v)) }))
			continue
		}
		c := panel.Constraints{Label: o.label, Folder: folder, Range: panel.Between(-5, 5)}
		mustBind(p.BindNumber(o.path, c, func(v float64) { s.OffsetPosition(axis, float32(v)) }))
	}
	mustBind(p.BindColor("selectedColor", "color", func(c panel.RGB) {
		a.activeMaterial(func(m *scene.Material) { m.Color = colorFromRGB(c) })
	}))
	mustBind(p.BindNumber("selectedOpacity", panel.Constraints{Label: "opacity", Folder: folder, Range: panel.Between(0, 1)}, func(v float64) {
		a.activeMaterial(func(m *scene.Material) { m.Opacity = float32(v) })
	}))
	p.AddButton("Toggle wireframe", func() {
		a.activeMaterial(func(m *scene.Material) { m.Wireframe = !m.Wireframe })
	})
	p.AddButton("Reset", a.reset)
	return d.start(), nil
}
