package scene

import (
	"sort"

	"scene-gallery/math"
)

// ModelFactory builds a fresh mesh for a catalog entry.
type ModelFactory func() *Mesh

var catalog = map[string]ModelFactory{
	"casa": func() *Mesh {
		return CreateExtrusion("casa", []math.Vec2{
			{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.2}, {X: 0, Y: 0.6}, {X: -0.5, Y: 0.2},
		}, 0.6)
	},
	"cubo":          func() *Mesh { return CreateBox(1, 1, 1) },
	"doblePiramide": func() *Mesh { return CreateBipyramid(0.6, 1.4, 4) },
	"estrella":      func() *Mesh { return CreateExtrusion("estrella", StarOutline(5, 0.7, 0.3), 0.3) },
	"piramide":      func() *Mesh { return CreateCylinder(0, 0.7, 1, 4) },
	"piramideTrapezoidal": func() *Mesh {
		return CreateCylinder(0.35, 0.7, 0.8, 4)
	},
	"rectangulo": func() *Mesh { return CreateBox(1.6, 0.8, 0.4) },
	"romboide": func() *Mesh {
		return CreateExtrusion("romboide", []math.Vec2{
			{X: -0.7, Y: -0.4}, {X: 0.3, Y: -0.4}, {X: 0.7, Y: 0.4}, {X: -0.3, Y: 0.4},
		}, 0.4)
	},
	"trapezoide": func() *Mesh {
		return CreateExtrusion("trapezoide", []math.Vec2{
			{X: -0.7, Y: -0.4}, {X: 0.7, Y: -0.4}, {X: 0.35, Y: 0.4}, {X: -0.35, Y: 0.4},
		}, 0.4)
	},
	"triangulo": func() *Mesh { return CreateExtrusion("triangulo", RegularPolygon(3, 0.7), 0.4) },
}

// ModelNames lists the catalog keys in sorted order.
func ModelNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewModel builds the named catalog mesh, or returns false for an unknown name.
func NewModel(name string) (*Mesh, bool) {
	f, ok := catalog[name]
	if !ok {
		return nil, false
	}
	m := f()
	m.Name = name
	return m, true
}
