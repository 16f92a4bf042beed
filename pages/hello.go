package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
)

func init() {
	register(Page{Route: "hello", Title: "Hello World", Build: buildHello})
}

func buildHello(env Env) (*Demo, error) {
	d, err := newDemo(env, panel.Snapshot{})
	if err != nil {
		return nil, err
	}
	box := scene.NewMeshNode("Box", scene.CreateBox(1, 1, 1), wireframeMaterial("BoxMaterial", core.ColorWhite))
	d.Session.AddObject(box)
	d.orbit(math.Vec3Zero)
	return d.start(), nil
}
