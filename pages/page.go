// Package pages is the demo gallery. Each page builds a session and a
// parameter panel from an Env and returns them as a running Demo.
package pages

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/chewxy/math32"

	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/panel"
	"scene-gallery/scene"
	"scene-gallery/session"
)

// Env is what a host provides to build a page.
type Env struct {
	Container  session.Container
	Scheduler  session.Scheduler
	Renderer   session.Renderer
	Width      int
	Height     int
	PixelRatio float32
	Logger     *slog.Logger
}

// Page is one registered demo.
type Page struct {
	Route string
	Title string
	Build func(env Env) (*Demo, error)
	// Defaults returns the panel's initial snapshot; nil means the page
	// has no parameters.
	Defaults func() panel.Snapshot
}

// DefaultSnapshot is the page's initial panel snapshot.
func (p Page) DefaultSnapshot() panel.Snapshot {
	if p.Defaults == nil {
		return panel.Snapshot{}
	}
	return p.Defaults()
}

var registry []Page

func register(p Page) {
	registry = append(registry, p)
}

// All lists pages in route order.
func All() []Page {
	out := append([]Page(nil), registry...)
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}

// Lookup finds a page by route.
func Lookup(route string) (Page, bool) {
	for _, p := range registry {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}

// Demo is a running page.
type Demo struct {
	Session  *session.Session
	Panel    *panel.Panel
	Controls *scene.OrbitControls

	keys      map[string]func()
	onPointer func(ndc math.Vec2)
	showStats bool
}

// Default camera and surface settings shared by every page.
const (
	cameraFOV  = 60
	cameraNear = 0.1
	cameraFar  = 10000
)

var defaultBackground = core.ColorRGB(0.2, 0.2, 0.35)

// newDemo creates the session, attaches it to the env's container and
// seeds the panel. Pages add their objects and bindings, then call start.
func newDemo(env Env, defaults panel.Snapshot) (*Demo, error) {
	cfg := session.DefaultConfig()
	if env.Width > 0 {
		cfg.Width = env.Width
	}
	if env.Height > 0 {
		cfg.Height = env.Height
	}
	if env.PixelRatio > 0 {
		cfg.PixelRatio = env.PixelRatio
	}
	cfg.FOV, cfg.Near, cfg.Far = cameraFOV, cameraNear, cameraFar
	cfg.Background = defaultBackground
	cfg.Logger = env.Logger

	s := session.New(cfg, env.Renderer, env.Scheduler)
	if err := s.Attach(env.Container); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("build page: %w", err)
	}
	s.Camera().SetPosition(math.NewVec3(0, 0, 3))
	s.Camera().LookAt(math.Vec3Zero)

	return &Demo{
		Session: s,
		Panel:   panel.New(defaults, panel.WithDispatcher(s), panel.WithLogger(s.Logger())),
		keys:    make(map[string]func()),
	}, nil
}

// orbit installs orbit controls around target, updated every frame.
func (d *Demo) orbit(target math.Vec3) {
	d.Controls = scene.NewOrbitControls(d.Session.Camera(), target)
	d.Session.AddUpdater(session.UpdateFunc(func(session.Frame) {
		d.Controls.Update()
	}))
}

func (d *Demo) start() *Demo {
	d.Session.StartLoop()
	return d
}

// OnKey handles a key press and reports whether the page uses the key.
func (d *Demo) OnKey(name string) bool {
	fn, ok := d.keys[name]
	if ok {
		fn()
	}
	return ok
}

// OnPointerDown handles a press at normalized device coordinates.
func (d *Demo) OnPointerDown(ndc math.Vec2) {
	if d.onPointer != nil {
		d.onPointer(ndc)
	}
}

// Drag and scroll sensitivity for orbit controls.
const (
	dragRadiansPerPixel = 2 * math32.Pi / 800
	zoomStep            = 0.95
)

// OnPointerDrag orbits the camera by a pointer drag in pixels.
func (d *Demo) OnPointerDrag(dx, dy float64) {
	if d.Controls == nil {
		return
	}
	d.Controls.Rotate(float32(dx)*dragRadiansPerPixel, float32(dy)*dragRadiansPerPixel)
}

// OnScroll dollies the camera; positive dy zooms in.
func (d *Demo) OnScroll(dy float64) {
	if d.Controls == nil || dy == 0 {
		return
	}
	factor := float32(zoomStep)
	if dy < 0 {
		factor = 1 / factor
	}
	d.Controls.Zoom(factor)
}

// StatsVisible reports whether the page wants the frame stats shown.
func (d *Demo) StatsVisible() bool {
	return d.showStats
}

// Close destroys the session and every object it owns.
func (d *Demo) Close() {
	d.Session.Destroy()
}

// mustBind registers panel bindings whose paths come from the page's own
// defaults, so a failure is a programming error.
func mustBind(err error) {
	if err != nil {
		panic(err)
	}
}

func colorFromRGB(c panel.RGB) core.Color {
	return core.ColorRGB(float32(c.R), float32(c.G), float32(c.B))
}

func wireframeMaterial(name string, color core.Color) *scene.Material {
	m := scene.NewBasicMaterial(name, color)
	m.Wireframe = true
	return m
}
