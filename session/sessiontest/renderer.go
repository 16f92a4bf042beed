// Package sessiontest provides a recording renderer for headless tests.
package sessiontest

import (
	"sync"

	"scene-gallery/core"
	"scene-gallery/scene"
)

// Op names a renderer call.
type Op string

const (
	OpSetSize        Op = "setSize"
	OpSetViewport    Op = "setViewport"
	OpSetScissor     Op = "setScissor"
	OpSetScissorTest Op = "setScissorTest"
	OpSetClearColor  Op = "setClearColor"
	OpRender         Op = "render"
	OpDestroy        Op = "destroy"
)

// Call is one recorded renderer call.
type Call struct {
	Op      Op
	Rect    core.PixelRect
	Camera  *scene.Camera
	Color   core.Color
	Enabled bool
	Width   int
	Height  int
}

// Renderer implements session.Renderer by recording every call.
type Renderer struct {
	mu    sync.Mutex
	calls []Call

	// Err, when set, is returned from every Render call.
	Err error
}

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *Renderer) SetSize(width, height int, pixelRatio float32) {
	w := int(float32(width) * pixelRatio)
	h := int(float32(height) * pixelRatio)
	r.record(Call{Op: OpSetSize, Width: w, Height: h})
}

func (r *Renderer) SetViewport(rect core.PixelRect) {
	r.record(Call{Op: OpSetViewport, Rect: rect})
}

func (r *Renderer) SetScissor(rect core.PixelRect) {
	r.record(Call{Op: OpSetScissor, Rect: rect})
}

func (r *Renderer) SetScissorTest(enabled bool) {
	r.record(Call{Op: OpSetScissorTest, Enabled: enabled})
}

func (r *Renderer) SetClearColor(c core.Color) {
	r.record(Call{Op: OpSetClearColor, Color: c})
}

func (r *Renderer) Render(_ *scene.Scene, cam *scene.Camera) error {
	r.record(Call{Op: OpRender, Camera: cam})
	return r.Err
}

func (r *Renderer) Destroy() {
	r.record(Call{Op: OpDestroy})
}

// Calls returns a copy of every call recorded so far.
func (r *Renderer) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Filter returns the recorded calls with the given op.
func (r *Renderer) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count is len(Filter(op)).
func (r *Renderer) Count(op Op) int {
	return len(r.Filter(op))
}

// Last returns the most recent call with the given op.
func (r *Renderer) Last(op Op) (Call, bool) {
	calls := r.Filter(op)
	if len(calls) == 0 {
		return Call{}, false
	}
	return calls[len(calls)-1], true
}

// Reset forgets every recorded call.
func (r *Renderer) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
