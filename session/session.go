package session

import (
	"errors"
	"log/slog"

	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/scene"
)

// ErrDestroyed is returned when attaching a destroyed session.
var ErrDestroyed = errors.New("session destroyed")

// Config holds the construction parameters of a session.
type Config struct {
	Width      int
	Height     int
	PixelRatio float32

	// Camera projection; FOV is vertical, in degrees.
	FOV  float32
	Near float32
	Far  float32

	Background core.Color
	Logger     *slog.Logger
}

// DefaultConfig returns an 800x600 surface with a 60 degree camera.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		PixelRatio: 1,
		FOV:        60,
		Near:       0.1,
		Far:        10000,
		Background: core.ColorRGB(0.2, 0.2, 0.35),
	}
}

// Session owns one scene, its primary camera, a surface and the render
// loop that redraws them. All methods except Enqueue and Dispatch must be
// called from the thread that drives the scheduler.
type Session struct {
	cfg      Config
	logger   *slog.Logger
	renderer Renderer
	sched    Scheduler

	scene   *scene.Scene
	camera  *scene.Camera
	surface Surface

	layout Layout
	views  []View

	selection Selection
	queue     Queue
	updaters  []Updater

	state     LoopState
	handle    FrameHandle
	lastFrame Frame
	ticked    bool
	stats     FrameStats

	destroyed bool
}

// New creates a session with a detached surface and an empty scene.
func New(cfg Config, r Renderer, sched Scheduler) *Session {
	def := DefaultConfig()
	if cfg.FOV <= 0 {
		cfg.FOV = def.FOV
	}
	if cfg.Near <= 0 {
		cfg.Near = def.Near
	}
	if cfg.Far <= cfg.Near {
		cfg.Far = def.Far
	}
	if cfg.PixelRatio <= 0 {
		cfg.PixelRatio = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		cfg:      cfg,
		logger:   logger,
		renderer: r,
		sched:    sched,
		scene:    scene.NewScene(),
		camera:   scene.NewCamera(cfg.FOV, 1, cfg.Near, cfg.Far),
	}
	s.scene.Background = cfg.Background
	s.queue.OnPanic = func(cmd Command, err error) {
		s.logger.Warn("command failed", "command", cmd.Description(), "error", err)
	}
	s.renderer.SetScissorTest(true)
	s.Resize(cfg.Width, cfg.Height)
	return s
}

func (s *Session) Scene() *scene.Scene { return s.scene }
func (s *Session) Camera() *scene.Camera { return s.camera }
func (s *Session) Surface() Surface { return s.surface }
func (s *Session) Selection() *Selection { return &s.selection }
func (s *Session) Logger() *slog.Logger { return s.logger }
func (s *Session) Layout() Layout { return s.layout }
func (s *Session) Stats() FrameStats { return s.stats }
func (s *Session) State() LoopState { return s.state }

// Attach mounts the surface into c. Attaching to the current container is
// a no-op; attaching elsewhere unmounts from the old container first.
func (s *Session) Attach(c Container) error {
	if s.destroyed {
		return &AttachmentError{Container: c.Name(), Err: ErrDestroyed}
	}
	if s.surface.container == c && c.Live() {
		return nil
	}
	if old := s.surface.container; old != nil {
		old.Unmount(&s.surface)
		s.surface.container = nil
	}
	if err := c.Mount(&s.surface); err != nil {
		return &AttachmentError{Container: c.Name(), Err: err}
	}
	s.surface.container = c
	s.logger.Debug("surface attached", "container", c.Name())
	return nil
}

// Detach stops the loop and unmounts the surface. It is safe to call
// repeatedly.
func (s *Session) Detach() {
	s.StopLoop()
	if s.surface.container == nil {
		return
	}
	s.surface.container.Unmount(&s.surface)
	s.logger.Debug("surface detached", "container", s.surface.container.Name())
	s.surface.container = nil
}

// Resize records the latest surface size and updates every camera aspect.
// Only the most recent call matters.
func (s *Session) Resize(width, height int) {
	s.surface.Width = max(width, 0)
	s.surface.Height = max(height, 0)
	s.surface.PixelRatio = s.cfg.PixelRatio
	s.renderer.SetSize(s.surface.Width, s.surface.Height, s.surface.PixelRatio)
	s.camera.UpdateAspectRatio(float32(s.surface.Width), float32(s.surface.Height))
	s.syncViewAspects()
}

// SetPixelRatio changes the device pixel ratio and resizes the buffer.
func (s *Session) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		return
	}
	s.cfg.PixelRatio = ratio
	s.Resize(s.surface.Width, s.surface.Height)
}

// AddObject appends node to the scene and returns its id.
func (s *Session) AddObject(node *scene.Node) scene.ObjectID {
	return s.scene.Add(node)
}

// RemoveObject removes the node and disposes its geometry, material and
// textures. It reports whether the id existed.
func (s *Session) RemoveObject(id scene.ObjectID) bool {
	n := s.scene.Remove(id)
	if n == nil {
		return false
	}
	if active := s.selection.Node(); active != nil {
		n.Traverse(func(c *scene.Node) {
			if c == active {
				s.selection.clear()
			}
		})
	}
	n.Dispose()
	return true
}

// RemoveWhere removes every top-level object matching pred and returns
// how many were removed.
func (s *Session) RemoveWhere(pred func(*scene.Node) bool) int {
	removed := 0
	for _, n := range s.scene.Objects() {
		if pred(n) && s.RemoveObject(n.ID) {
			removed++
		}
	}
	return removed
}

// SetViews configures the panes drawn in quad layout.
func (s *Session) SetViews(views ...View) error {
	if len(views) > MaxViews {
		return ErrTooManyViews
	}
	s.views = append(s.views[:0], views...)
	s.syncViewAspects()
	return nil
}

// SetLayout switches between single and quad view.
func (s *Session) SetLayout(l Layout) {
	if l == s.layout {
		return
	}
	s.layout = l
	s.logger.Debug("layout changed", "layout", l.String())
	s.camera.UpdateAspectRatio(float32(s.surface.Width), float32(s.surface.Height))
	s.syncViewAspects()
}

// ToggleLayout flips between single and quad view and returns the new layout.
func (s *Session) ToggleLayout() Layout {
	if s.layout == LayoutSingle {
		s.SetLayout(LayoutQuad)
	} else {
		s.SetLayout(LayoutSingle)
	}
	return s.layout
}

// ViewportRects resolves the active views to drawing-buffer pixels.
// Single layout draws the primary camera over the whole surface.
func (s *Session) ViewportRects() []ViewRect {
	w, h := s.surface.DrawingBufferSize()
	if s.layout == LayoutSingle || len(s.views) == 0 {
		return []ViewRect{{Camera: s.camera, Rect: pixelRect(core.FullRect, w, h)}}
	}
	out := make([]ViewRect, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, ViewRect{Camera: v.Camera, Rect: pixelRect(v.Rect, w, h)})
	}
	return out
}

func (s *Session) syncViewAspects() {
	for _, vr := range s.ViewportRects() {
		vr.Camera.UpdateAspectRatio(float32(vr.Rect.Width), float32(vr.Rect.Height))
	}
}

// Pick casts a ray from the primary camera through ndc and returns the
// nearest pickable object.
func (s *Session) Pick(ndc math.Vec2) (scene.ObjectID, bool) {
	hit, ok := scene.Raycast(s.camera.Ray(ndc), s.scene)
	if !ok {
		return scene.NoObject, false
	}
	return hit.Node.ID, true
}

// Select picks under ndc. A new object becomes active and its transform
// is snapshotted; picking the active object again deselects it; a miss
// leaves the selection as it was.
func (s *Session) Select(ndc math.Vec2) SelectionChange {
	prev, _ := s.selection.Active()
	id, ok := s.Pick(ndc)
	if !ok {
		return SelectionChange{Previous: prev, Current: prev}
	}
	return s.SelectID(id)
}

// SelectID makes id the active object, or deselects when id is already
// active or unknown.
func (s *Session) SelectID(id scene.ObjectID) SelectionChange {
	prev, _ := s.selection.Active()
	n := s.scene.Find(id)
	if n == nil || id == prev {
		s.selection.clear()
		return SelectionChange{Previous: prev, Current: scene.NoObject}
	}
	s.selection.set(n)
	return SelectionChange{Previous: prev, Current: id}
}

// ClearSelection drops the active object.
func (s *Session) ClearSelection() {
	s.selection.clear()
}

// OffsetPosition sets the active object's coordinate on axis to its
// snapshot value plus v. It reports false when nothing is selected.
func (s *Session) OffsetPosition(axis math.Axis, v float32) bool {
	n := s.selection.Node()
	if n == nil {
		return false
	}
	base := s.selection.Base().Position
	n.Transform.Position = n.Transform.Position.With(axis, base.Get(axis)+v)
	return true
}

// OffsetRotation sets the active object's rotation on axis to its
// snapshot value plus radians.
func (s *Session) OffsetRotation(axis math.Axis, radians float32) bool {
	n := s.selection.Node()
	if n == nil {
		return false
	}
	base := s.selection.Base().Rotation
	n.Transform.Rotation = n.Transform.Rotation.With(axis, base.Get(axis)+radians)
	return true
}

// EditActive runs fn on the active object. It reports false when nothing
// is selected.
func (s *Session) EditActive(fn func(n *scene.Node)) bool {
	n := s.selection.Node()
	if n == nil {
		return false
	}
	fn(n)
	return true
}

// Enqueue schedules cmd for the start of the next tick. Safe from any
// goroutine.
func (s *Session) Enqueue(cmd Command) {
	s.queue.Push(cmd)
}

// Dispatch enqueues fn as a command.
func (s *Session) Dispatch(fn func()) {
	s.queue.Push(FuncCommand{Desc: "dispatch", Fn: fn})
}

// Flush runs queued commands now. Hosts without a running loop use it;
// the loop drains the queue itself.
func (s *Session) Flush() int {
	return s.queue.Drain()
}

// Destroy stops the loop, detaches, disposes every object and releases
// the renderer. Further calls do nothing.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.Detach()
	for _, n := range s.scene.Objects() {
		s.RemoveObject(n.ID)
	}
	s.renderer.Destroy()
	s.destroyed = true
	s.logger.Debug("session destroyed")
}
