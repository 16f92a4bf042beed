package session

import (
	"fmt"
	"time"
)

// LoopState is the render loop state machine: Idle or Running.
type LoopState int

const (
	LoopIdle LoopState = iota
	LoopRunning
)

func (l LoopState) String() string {
	if l == LoopRunning {
		return "running"
	}
	return "idle"
}

// Frame is passed to updaters once per tick.
type Frame struct {
	Now   time.Duration
	Delta time.Duration
	Count uint64
}

// Seconds is Now in seconds.
func (f Frame) Seconds() float32 {
	return float32(f.Now.Seconds())
}

// Updater mutates scene state once per frame before rendering.
type Updater interface {
	Update(f Frame)
}

// UpdateFunc adapts a function to Updater.
type UpdateFunc func(f Frame)

func (fn UpdateFunc) Update(f Frame) { fn(f) }

// AddUpdater registers u to run every tick, in registration order.
func (s *Session) AddUpdater(u Updater) {
	s.updaters = append(s.updaters, u)
}

// StartLoop schedules the first tick. Calling it while running does nothing.
func (s *Session) StartLoop() {
	if s.state == LoopRunning || s.destroyed {
		return
	}
	s.state = LoopRunning
	s.handle = s.sched.RequestFrame(s.tick)
	s.logger.Debug("loop started")
}

// StopLoop cancels the pending tick. Calling it while idle does nothing.
func (s *Session) StopLoop() {
	if s.state != LoopRunning {
		return
	}
	if s.handle != 0 {
		s.sched.CancelFrame(s.handle)
		s.handle = 0
	}
	s.state = LoopIdle
	s.ticked = false
	s.logger.Debug("loop stopped")
}

// tick drains queued commands, runs updaters, renders every active view
// and schedules the next tick.
func (s *Session) tick(now time.Duration) {
	s.handle = 0
	if s.state != LoopRunning {
		return
	}

	f := Frame{Now: now, Count: s.lastFrame.Count + 1}
	if s.ticked {
		f.Delta = now - s.lastFrame.Now
	}
	s.lastFrame = f
	s.ticked = true

	s.step(f)
	s.stats.record(now)

	// A queued command may have stopped the loop, or stopped and restarted
	// it, in which case the next tick is already scheduled.
	if s.state == LoopRunning && s.handle == 0 {
		s.handle = s.sched.RequestFrame(s.tick)
	}
}

// step is one frame's work. Failures are logged and swallowed so one bad
// frame never ends the loop.
func (s *Session) step(f Frame) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("frame failed", "frame", f.Count, "panic", fmt.Sprint(r))
		}
	}()

	s.queue.Drain()
	for _, u := range s.updaters {
		u.Update(f)
	}
	s.render()
}

// RenderNow draws one frame immediately outside of the loop.
func (s *Session) RenderNow() {
	s.render()
}

func (s *Session) render() {
	if !s.surface.Attached() {
		return
	}
	s.renderer.SetClearColor(s.scene.Background)
	for _, vr := range s.ViewportRects() {
		s.renderer.SetViewport(vr.Rect)
		s.renderer.SetScissor(vr.Rect)
		vr.Camera.UpdateAspectRatio(float32(vr.Rect.Width), float32(vr.Rect.Height))
		if err := s.renderer.Render(s.scene, vr.Camera); err != nil {
			s.logger.Warn("render failed", "error", err)
		}
	}
}
