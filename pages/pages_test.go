package pages

import (
	stdmath "math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
	"scene-gallery/session"
	"scene-gallery/session/sessiontest"
)

const frame = 16 * time.Millisecond

type harness struct {
	demo  *Demo
	r     *sessiontest.Renderer
	sched *session.ManualScheduler
	el    *session.Element
}

func build(t *testing.T, route string) *harness {
	t.Helper()
	page, ok := Lookup(route)
	require.True(t, ok, route)
	h := &harness{
		r:     sessiontest.New(),
		sched: session.NewManualScheduler(),
		el:    session.NewElement(route),
	}
	d, err := page.Build(Env{Container: h.el, Scheduler: h.sched, Renderer: h.r, Width: 800, Height: 600})
	require.NoError(t, err)
	h.demo = d
	t.Cleanup(d.Close)
	return h
}

// settle drains the session queue, including commands queued by the
// commands it runs.
func (h *harness) settle() {
	for h.demo.Session.Flush() > 0 {
	}
}

func (h *harness) commit(t *testing.T, path string, v panel.Value) {
	t.Helper()
	require.NoError(t, h.demo.Panel.Commit(path, v))
	h.settle()
}

func (h *harness) press(t *testing.T, label string) {
	t.Helper()
	require.NoError(t, h.demo.Panel.Press(label))
	h.settle()
}

func (h *harness) find(name string) *scene.Node {
	var found *scene.Node
	h.demo.Session.Scene().Walk(func(n *scene.Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 10)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Route, all[i].Route)
	}

	p, ok := Lookup("datgui")
	require.True(t, ok)
	assert.Equal(t, "dat.GUI Demo", p.Title)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestEveryPageRunsAndCloses(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Route, func(t *testing.T) {
			h := build(t, p.Route)
			assert.Equal(t, session.LoopRunning, h.demo.Session.State())
			assert.NotNil(t, h.el.Occupant())

			defaults := h.demo.Panel.Defaults()
			assert.Len(t, defaults, len(p.DefaultSnapshot()))
			for path, v := range p.DefaultSnapshot() {
				assert.Equal(t, v, defaults[path], path)
			}

			for range 3 {
				h.sched.Step(frame)
			}
			assert.GreaterOrEqual(t, h.r.Count(sessiontest.OpRender), 3)

			var meshes []*scene.Mesh
			h.demo.Session.Scene().Walk(func(n *scene.Node) {
				if n.Mesh != nil {
					meshes = append(meshes, n.Mesh)
				}
			})
			h.demo.Close()
			assert.Nil(t, h.el.Occupant())
			assert.Zero(t, h.sched.Pending())
			assert.Zero(t, h.demo.Session.Scene().Len())
			for _, m := range meshes {
				assert.True(t, m.Disposed(), m.Name)
			}
			assert.Equal(t, 1, h.r.Count(sessiontest.OpDestroy))
		})
	}
}

func TestDatGuiClampsAndConverts(t *testing.T) {
	h := build(t, "datgui")
	sphere := h.find("Sphere")
	require.NotNil(t, sphere)

	h.commit(t, "xPosition", panel.Number(7))
	assert.Equal(t, float32(5), sphere.Transform.Position.X)

	h.commit(t, "yRotation", panel.Number(92))
	assert.InDelta(t, stdmath.Pi/2, sphere.Transform.Rotation.Y, 1e-5)
	v, _ := h.demo.Panel.Value("yRotation")
	assert.Equal(t, 90.0, v.Number)

	h.commit(t, "wireframe", panel.Bool(false))
	assert.False(t, sphere.Material.Wireframe)

	h.press(t, "Home")
	assert.Equal(t, float32(0), sphere.Transform.Position.X)
	assert.True(t, sphere.Material.Wireframe)
}

func TestTweakpaneBackground(t *testing.T) {
	h := build(t, "tweakpane")
	h.commit(t, "backgroundColor", panel.Color(255, 0, 300))
	bg := h.demo.Session.Scene().Background
	assert.InDelta(t, 1, bg.R, 1e-6)
	assert.InDelta(t, 0, bg.G, 1e-6)
	assert.InDelta(t, 1, bg.B, 1e-6)

	h.commit(t, "showStats", panel.Bool(true))
	assert.True(t, h.demo.StatsVisible())
}

func TestCameraViews(t *testing.T) {
	h := build(t, "camera")
	h.press(t, "TopView")
	cam := h.demo.Session.Camera()
	assert.Equal(t, math.NewVec3(0, 3, 0), cam.Position)
	assert.Equal(t, math.Vec3Right, cam.Up)

	h.press(t, "SideView")
	assert.Equal(t, math.NewVec3(3, 0, 0), cam.Position)
}

func TestOrbitCameraPlayAndReset(t *testing.T) {
	h := build(t, "orbitcamera")
	cam := h.demo.Session.Camera()

	require.NoError(t, h.demo.Panel.Press("Play"))
	h.sched.Step(frame)
	rad := stdmath.Pi / 360
	assert.InDelta(t, 3*stdmath.Sin(rad), cam.Position.X, 1e-5)
	assert.InDelta(t, 3*stdmath.Cos(rad), cam.Position.Z, 1e-5)

	require.NoError(t, h.demo.Panel.Press("Reset"))
	h.sched.Step(frame)
	h.sched.Step(frame)
	assert.InDelta(t, 0, cam.Position.X, 1e-6)
	assert.InDelta(t, 3, cam.Position.Z, 1e-6)
}

func TestOrbiterWrapsAngle(t *testing.T) {
	o := &orbiter{cam: scene.NewCamera(60, 1, 0.1, 100), playing: true, angle: 359.5}
	o.Update(session.Frame{})
	assert.InDelta(t, 0, o.angle, 1e-9)
	o.Update(session.Frame{})
	assert.InDelta(t, 0.5, o.angle, 1e-9)
}

func TestMultiViewportsToggle(t *testing.T) {
	h := build(t, "multiviewports")
	h.r.Reset()
	h.sched.Step(frame)
	assert.Equal(t, 1, h.r.Count(sessiontest.OpRender))

	assert.True(t, h.demo.OnKey("Space"))
	assert.False(t, h.demo.OnKey("q"))
	h.r.Reset()
	h.sched.Step(frame)
	assert.Equal(t, 4, h.r.Count(sessiontest.OpRender))
	assert.Equal(t, session.LayoutQuad, h.demo.Session.Layout())

	h.press(t, "Toggle layout")
	assert.Equal(t, session.LayoutSingle, h.demo.Session.Layout())
}

func TestMaterialLight(t *testing.T) {
	h := build(t, "materiallight")
	floor := h.find("Floor")
	require.NotNil(t, floor)
	assert.False(t, floor.Visible)

	h.commit(t, "showFloor", panel.Bool(true))
	assert.True(t, floor.Visible)

	h.commit(t, "roughness", panel.Number(2))
	box := h.find("Box")
	require.NotNil(t, box)
	assert.Equal(t, float32(1), box.Material.Roughness)

	h.commit(t, "lightPositionY", panel.Number(4))
	light := h.find("PointLight")
	require.NotNil(t, light)
	assert.Equal(t, float32(4), light.Transform.Position.Y)
}

func TestShaderSpeed(t *testing.T) {
	h := build(t, "shader")
	cube := h.find("Cube")
	require.NotNil(t, cube)

	h.commit(t, "speed", panel.Number(1))
	h.sched.Step(time.Second)
	assert.InDelta(t, 1, cube.Transform.Rotation.X, 1e-5)
	assert.Equal(t, float32(1), cube.Material.Shader.Uniforms["iTime"])
}

func TestSwitchModel(t *testing.T) {
	h := build(t, "switchmodel")
	sphere, box, cone := h.find("Sphere"), h.find("Box"), h.find("Cone")
	require.NotNil(t, sphere)
	require.NotNil(t, box)
	require.NotNil(t, cone)
	assert.False(t, sphere.Visible)
	assert.True(t, box.Visible)

	h.commit(t, "showCone", panel.Bool(true))
	assert.True(t, cone.Visible)

	h.commit(t, "xPosition", panel.Number(1))
	assert.Equal(t, float32(-2), sphere.Transform.Position.X)
	assert.Equal(t, float32(1), box.Transform.Position.X)
	assert.Equal(t, float32(4), cone.Transform.Position.X)

	h.commit(t, "color", panel.Color(255, 0, 0))
	assert.Same(t, box.Material, cone.Material)
	assert.InDelta(t, 0, cone.Material.Color.G, 1e-6)

	h.press(t, "Reset")
	assert.Equal(t, float32(3), cone.Transform.Position.X)
	assert.False(t, cone.Visible)
}

func TestAuthoringPickEditReset(t *testing.T) {
	h := build(t, "authoring")
	s := h.demo.Session
	cube := h.find("cubo")
	require.NotNil(t, cube)

	h.demo.OnPointerDown(math.Vec2{})
	id, ok := s.Selection().Active()
	require.True(t, ok)
	assert.Equal(t, cube.ID, id)

	// Edits are relative to the transform at selection time.
	h.commit(t, "selectedPosX", panel.Number(2))
	h.commit(t, "selectedPosX", panel.Number(3))
	assert.Equal(t, float32(3), cube.Transform.Position.X)

	h.commit(t, "selectedOpacity", panel.Number(0.5))
	assert.Equal(t, float32(0.5), cube.Material.Opacity)

	h.press(t, "Toggle wireframe")
	assert.False(t, cube.Material.Wireframe)

	h.commit(t, "model", panel.Choice("estrella"))
	h.press(t, "Agregar")
	star := h.find("estrella")
	require.NotNil(t, star)
	assert.Equal(t, s.Camera().Position.Add(math.NewVec3(0, 0, -3)), star.Transform.Position)

	h.commit(t, "globalPlane", panel.Bool(true))
	assert.True(t, h.find("PlaneHelper").Visible)

	h.press(t, "Reset")
	assert.Nil(t, h.find("estrella"))
	assert.True(t, cube.Mesh.Disposed())
	fresh := h.find("cubo")
	require.NotNil(t, fresh)
	assert.NotEqual(t, cube.ID, fresh.ID)
	assert.True(t, fresh.Material.Wireframe)
	assert.False(t, h.find("PlaneHelper").Visible)
	_, ok = s.Selection().Active()
	assert.False(t, ok)
	assert.Equal(t, authoringDefaults(), h.demo.Panel.Snapshot())
}

func TestAuthoringRejectsUnknownModel(t *testing.T) {
	h := build(t, "authoring")
	err := h.demo.Panel.Commit("model", panel.Choice("tetera"))
	assert.ErrorIs(t, err, panel.ErrUnknownOption)
}
