package pages

import (
	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
	"scene-gallery/session"
)

func init() {
	register(Page{Route: "multiviewports", Title: "Multiple Viewports", Build: buildMultiViewports})
}

func viewCamera(pos, up math.Vec3) *scene.Camera {
	cam := scene.NewCamera(cameraFOV, 1, cameraNear, cameraFar)
	cam.SetPosition(pos)
	cam.SetUp(up)
	cam.LookAt(math.Vec3Zero)
	return cam
}

func buildMultiViewports(env Env) (*Demo, error) {
	d, err := newDemo(env, panel.Snapshot{})
	if err != nil {
		return nil, err
	}
	s := d.Session
	primary := s.Camera()
	primary.SetPosition(math.NewVec3(1, 1, 3))
	primary.LookAt(math.Vec3Zero)

	top := viewCamera(math.NewVec3(0, 3, 0), math.NewVec3(0, 0, 1))
	front := viewCamera(math.NewVec3(0, 0, 3), math.Vec3Up)
	side := viewCamera(math.NewVec3(3, 0, 0), math.Vec3Up)
	if err := s.SetViews(session.QuadViews(primary, top, front, side)...); err != nil {
		d.Close()
		return nil, err
	}

	cone := scene.NewMeshNode("Cone", scene.CreateCone(1, 1, 32), wireframeMaterial("ConeMaterial", core.ColorWhite))
	s.AddObject(cone)

	d.keys["Space"] = func() { s.ToggleLayout() }
	d.Panel.AddButton("Toggle layout", func() { s.ToggleLayout() })
	return d.start(), nil
}
