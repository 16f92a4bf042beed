package session

import (
	"errors"
	"math"

	"scene-gallery/core"
	"scene-gallery/scene"
)

// Layout selects how many views are drawn each frame.
type Layout int

const (
	LayoutSingle Layout = iota
	LayoutQuad
)

func (l Layout) String() string {
	if l == LayoutQuad {
		return "quad"
	}
	return "single"
}

// MaxViews is the most views a session draws per frame.
const MaxViews = 4

// ErrTooManyViews is returned by SetViews for more than MaxViews views.
var ErrTooManyViews = errors.New("at most four views are supported")

// View pairs a camera with a normalized sub-rectangle of the surface.
type View struct {
	Camera *scene.Camera
	Rect   core.Rect
}

// ViewRect is a view resolved to drawing-buffer pixels.
type ViewRect struct {
	Camera *scene.Camera
	Rect   core.PixelRect
}

// QuadViews splits the surface into four equal panes, origin bottom-left.
func QuadViews(topRight, topLeft, bottomLeft, bottomRight *scene.Camera) []View {
	return []View{
		{Camera: topRight, Rect: core.Rect{X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5}},
		{Camera: topLeft, Rect: core.Rect{X: 0, Y: 0.5, Width: 0.5, Height: 0.5}},
		{Camera: bottomLeft, Rect: core.Rect{X: 0, Y: 0, Width: 0.5, Height: 0.5}},
		{Camera: bottomRight, Rect: core.Rect{X: 0.5, Y: 0, Width: 0.5, Height: 0.5}},
	}
}

// pixelRect rounds each edge independently so panes that share a
// normalized edge share a pixel edge.
func pixelRect(r core.Rect, width, height int) core.PixelRect {
	x0 := int(math.Round(float64(r.X) * float64(width)))
	x1 := int(math.Round(float64(r.X+r.Width) * float64(width)))
	y0 := int(math.Round(float64(r.Y) * float64(height)))
	y1 := int(math.Round(float64(r.Y+r.Height) * float64(height)))
	return core.PixelRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
