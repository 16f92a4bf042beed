package scene

import (
	"scene-gallery/core"
	"scene-gallery/math"
)

// lines accumulates colored line segments.
type lines struct {
	vertices []core.Vertex
	indices  []uint32
}

func (l *lines) add(a, b math.Vec3, c core.Color) {
	base := uint32(len(l.vertices))
	l.vertices = append(l.vertices,
		core.Vertex{Position: a, Normal: math.Vec3Up, Color: c},
		core.Vertex{Position: b, Normal: math.Vec3Up, Color: c},
	)
	l.indices = append(l.indices, base, base+1)
}

// helper wraps a line mesh in an unpickable node with an unlit material
// that takes its color from the vertices.
func (l *lines) helper(name string, color core.Color) *Node {
	m := CreateMeshFromData(name, l.vertices, l.indices)
	m.DrawMode = DrawLines
	n := NewNode(name)
	n.Mesh = m
	n.Material = NewBasicMaterial(name+"Material", color)
	return n
}

// CreateGrid builds a flat grid on the XZ plane spanning -size/2..size/2.
// The centre lines are drawn in centerColor.
func CreateGrid(size float32, divisions int, color, centerColor core.Color) *Node {
	divisions = max(divisions, 1)
	half := size / 2
	step := size / float32(divisions)

	var l lines
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		c := color
		if 2*i == divisions {
			c = centerColor
		}
		l.add(math.Vec3{X: k, Z: -half}, math.Vec3{X: k, Z: half}, c)
		l.add(math.Vec3{X: -half, Z: k}, math.Vec3{X: half, Z: k}, c)
	}
	return l.helper("Grid", core.ColorWhite)
}

// CreateAxes draws the X, Y and Z axes in red, green and blue.
func CreateAxes(size float32) *Node {
	var l lines
	l.add(math.Vec3Zero, math.Vec3{X: size}, core.Color{R: 1, G: 0, B: 0, A: 1})
	l.add(math.Vec3Zero, math.Vec3{Y: size}, core.Color{R: 0, G: 1, B: 0, A: 1})
	l.add(math.Vec3Zero, math.Vec3{Z: size}, core.Color{R: 0, G: 0, B: 1, A: 1})
	return l.helper("Axes", core.ColorWhite)
}

// CreatePlaneHelper outlines a size x size square on the XZ plane with its
// diagonals.
func CreatePlaneHelper(size float32, color core.Color) *Node {
	h := size / 2
	c := [4]math.Vec3{{X: -h, Z: -h}, {X: h, Z: -h}, {X: h, Z: h}, {X: -h, Z: h}}
	var l lines
	for i := range c {
		l.add(c[i], c[(i+1)%4], core.ColorWhite)
	}
	l.add(c[0], c[2], core.ColorWhite)
	l.add(c[1], c[3], core.ColorWhite)
	return l.helper("PlaneHelper", color)
}

// CreateWireframeOverlay returns a line mesh node tracing every triangle
// edge of mesh once.
func CreateWireframeOverlay(mesh *Mesh, color core.Color) *Node {
	type edge struct{ a, b math.Vec3 }
	seen := make(map[edge]bool)
	var l lines
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		tri := [3]math.Vec3{
			mesh.Vertices[mesh.Indices[i]].Position,
			mesh.Vertices[mesh.Indices[i+1]].Position,
			mesh.Vertices[mesh.Indices[i+2]].Position,
		}
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if seen[edge{a, b}] || seen[edge{b, a}] {
				continue
			}
			seen[edge{a, b}] = true
			l.add(a, b, core.ColorWhite)
		}
	}
	return l.helper(mesh.Name+"Wireframe", color)
}

// CreatePointLightHelper draws a small wire diamond around a light.
func CreatePointLightHelper(size float32, color core.Color) *Node {
	n := CreateWireframeOverlay(CreateBipyramid(size, 2*size, 4), color)
	n.Name = "PointLightHelper"
	return n
}
