package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/core/base/errors"

	"scene-gallery/host"
	"scene-gallery/internal/config"
	"scene-gallery/internal/opengl"
	"scene-gallery/math"
	"scene-gallery/pages"
	"scene-gallery/panel"
	"scene-gallery/session"
)

const (
	// titleEvery is how many frames pass between stats title updates.
	titleEvery = 30
	leftButton = 0
)

func run(ctx context.Context, cfg config.Config, preset string, logger *slog.Logger, in io.Reader, out io.Writer) error {
	page, ok := pages.Lookup(cfg.Page)
	if !ok {
		return fmt.Errorf("unknown page %q", cfg.Page)
	}

	win, err := host.NewWindow(host.Config{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title + " - " + page.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	r, err := opengl.NewRenderer(logger)
	if err != nil {
		return err
	}

	width, height := win.Size()
	demo, err := page.Build(pages.Env{
		Container:  win,
		Scheduler:  win,
		Renderer:   r,
		Width:      width,
		Height:     height,
		PixelRatio: win.PixelRatio() * cfg.Window.PixelRatio,
		Logger:     logger.With("page", page.Route),
	})
	if err != nil {
		r.Destroy()
		return err
	}
	defer demo.Close()
	logger.Info("page started", "page", page.Route, "width", width, "height", height)

	if preset != "" {
		if snap := errors.Log1(panel.LoadPreset(preset)); snap != nil {
			errors.Log(demo.Panel.Import(snap))
		}
	}

	wireInput(win, demo)
	baseTitle := win.Title()
	demo.Session.AddUpdater(session.UpdateFunc(func(f session.Frame) {
		if f.Count%titleEvery != 0 {
			return
		}
		if demo.StatsVisible() {
			win.SetTitle(fmt.Sprintf("%s (%.0f fps)", baseTitle, demo.Session.Stats().FPS))
		} else if win.Title() != baseTitle {
			win.SetTitle(baseTitle)
		}
	}))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c := &console{
		demo: demo,
		out:  out,
		quit: func() { demo.Session.Dispatch(win.Close) },
	}
	go c.run(ctx, in)

	return win.Run(ctx)
}

// wireInput forwards window events to the demo. glfw delivers them on the
// render thread, so they may touch the session directly.
func wireInput(win *host.Window, demo *pages.Demo) {
	win.OnResize(func(w, h int) {
		demo.Session.Resize(w, h)
	})
	win.OnKey(func(key string) {
		if !demo.OnKey(key) && key == "Escape" {
			win.Close()
		}
	})
	win.OnPointerDown(func(ev host.PointerEvent) {
		if ev.Button != leftButton {
			return
		}
		ndc := math.PixelToNDC(float32(ev.X), float32(ev.Y), float32(ev.Width), float32(ev.Height))
		demo.OnPointerDown(ndc)
	})
	win.OnPointerDrag(func(dx, dy float64, _ int) {
		demo.OnPointerDrag(dx, dy)
	})
	win.OnScroll(demo.OnScroll)
}
