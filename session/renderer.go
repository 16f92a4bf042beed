package session

import (
	"scene-gallery/core"
	"scene-gallery/scene"
)

// Renderer draws a scene through a camera into the current viewport.
// Rects are in drawing-buffer pixels with the origin at the bottom-left.
type Renderer interface {
	SetSize(width, height int, pixelRatio float32)
	SetViewport(r core.PixelRect)
	SetScissor(r core.PixelRect)
	SetScissorTest(enabled bool)
	SetClearColor(c core.Color)
	Render(s *scene.Scene, cam *scene.Camera) error
	// Destroy releases every GPU object the renderer still holds.
	Destroy()
}
