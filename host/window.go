// Package host runs a session inside a native glfw window with an OpenGL
// 4.1 core context. The window is both the session's container and its
// frame scheduler.
package host

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"scene-gallery/session"
)

func init() {
	// GL and glfw calls must stay on the main thread.
	runtime.LockOSThread()
}

type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		Title:     "Scene Gallery",
		Resizable: true,
		VSync:     true,
	}
}

// PointerEvent is a button press in window coordinates; Width and Height
// are the window size at the time of the press.
type PointerEvent struct {
	X, Y          float64
	Width, Height int
	Button        int
}

// Window owns the glfw window and GL context.
type Window struct {
	handle *glfw.Window
	title  string
	start  time.Time

	mu      sync.Mutex
	next    session.FrameHandle
	frames  map[session.FrameHandle]session.FrameFunc
	mounted *session.Surface
	closed  bool

	dragButton   int
	dragging     bool
	lastX, lastY float64

	onResize      func(width, height int)
	onKey         func(key string)
	onPointerDown func(PointerEvent)
	onPointerDrag func(dx, dy float64, button int)
	onScroll      func(dy float64)
}

// NewWindow creates the window and makes its context current.
func NewWindow(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(cfg.Resizable))

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		handle: handle,
		title:  cfg.Title,
		start:  time.Now(),
		frames: make(map[session.FrameHandle]session.FrameFunc),
	}
	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	w.handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})
	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press || w.onKey == nil {
			return
		}
		if name := KeyName(key); name != "" {
			w.onKey(name)
		}
	})
	w.handle.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			x, y := win.GetCursorPos()
			w.dragging, w.dragButton = true, int(button)
			w.lastX, w.lastY = x, y
			if w.onPointerDown != nil {
				width, height := win.GetSize()
				w.onPointerDown(PointerEvent{X: x, Y: y, Width: width, Height: height, Button: int(button)})
			}
		case glfw.Release:
			if int(button) == w.dragButton {
				w.dragging = false
			}
		}
	})
	w.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !w.dragging {
			return
		}
		dx, dy := x-w.lastX, y-w.lastY
		w.lastX, w.lastY = x, y
		if w.onPointerDrag != nil {
			w.onPointerDrag(dx, dy, w.dragButton)
		}
	})
	w.handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(yoff)
		}
	})
}

func (w *Window) OnResize(fn func(width, height int)) { w.onResize = fn }
func (w *Window) OnKey(fn func(key string)) { w.onKey = fn }
func (w *Window) OnPointerDown(fn func(PointerEvent)) { w.onPointerDown = fn }
func (w *Window) OnPointerDrag(fn func(dx, dy float64, b int)) { w.onPointerDrag = fn }
func (w *Window) OnScroll(fn func(dy float64)) { w.onScroll = fn }

// Size is the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.handle.GetSize()
}

// PixelRatio is framebuffer pixels per screen coordinate.
func (w *Window) PixelRatio() float32 {
	width, _ := w.handle.GetSize()
	fb, _ := w.handle.GetFramebufferSize()
	if width <= 0 || fb <= 0 {
		return 1
	}
	return float32(fb) / float32(width)
}

func (w *Window) SetTitle(title string) {
	w.handle.SetTitle(title)
	w.title = title
}

func (w *Window) Title() string { return w.title }

// Name implements session.Container.
func (w *Window) Name() string { return "window" }

// Mount implements session.Container.
func (w *Window) Mount(s *session.Surface) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return session.ErrContainerGone
	}
	if w.mounted != nil && w.mounted != s {
		return session.ErrOccupied
	}
	w.mounted = s
	return nil
}

// Unmount implements session.Container.
func (w *Window) Unmount(s *session.Surface) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted == s {
		w.mounted = nil
	}
}

// Live implements session.Container.
func (w *Window) Live() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.closed
}

// RequestFrame implements session.Scheduler.
func (w *Window) RequestFrame(fn session.FrameFunc) session.FrameHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.next++
	w.frames[w.next] = fn
	return w.next
}

// CancelFrame implements session.Scheduler.
func (w *Window) CancelFrame(h session.FrameHandle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.frames, h)
}

// Run polls events, runs the frame callbacks requested since the last
// iteration and swaps buffers until the window closes or ctx ends.
func (w *Window) Run(ctx context.Context) error {
	for !w.handle.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		glfw.PollEvents()

		fns := w.takeFrames()
		if len(fns) == 0 {
			glfw.WaitEventsTimeout(1.0 / 60)
			continue
		}
		now := time.Since(w.start)
		for _, fn := range fns {
			fn(now)
		}
		w.handle.SwapBuffers()
	}
	return nil
}

func (w *Window) takeFrames() []session.FrameFunc {
	w.mu.Lock()
	defer w.mu.Unlock()
	handles := make([]session.FrameHandle, 0, len(w.frames))
	for h := range w.frames {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]session.FrameFunc, len(handles))
	for i, h := range handles {
		fns[i] = w.frames[h]
		delete(w.frames, h)
	}
	return fns
}

// Close asks Run to return after the current iteration.
func (w *Window) Close() {
	w.handle.SetShouldClose(true)
}

// Destroy releases the window and terminates glfw. The container is gone
// afterwards.
func (w *Window) Destroy() {
	w.mu.Lock()
	w.closed = true
	w.mounted = nil
	w.frames = make(map[session.FrameHandle]session.FrameFunc)
	w.mu.Unlock()
	w.handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
