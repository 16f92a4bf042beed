package scene

import (
	"github.com/chewxy/math32"

	"scene-gallery/core"
	"scene-gallery/math"
)

// builder accumulates flat-shaded polygons into one vertex/index list.
type builder struct {
	vertices []core.Vertex
	indices  []uint32
}

func (b *builder) vertex(p, n math.Vec3, uv math.Vec2) uint32 {
	b.vertices = append(b.vertices, core.Vertex{Position: p, Normal: n, UV: uv, Color: core.ColorWhite})
	return uint32(len(b.vertices) - 1)
}

// face adds a star-shaped polygon wound counter-clockwise as seen from
// outside. It is fanned from its centroid so concave outlines such as a
// star still triangulate correctly.
func (b *builder) face(points ...math.Vec3) {
	points = dedupe(points)
	if len(points) < 3 {
		return
	}
	var centroid math.Vec3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float32(len(points)))
	normal := points[1].Sub(points[0]).Cross(points[2].Sub(points[0])).Normalize()

	if len(points) == 3 {
		i := b.vertex(points[0], normal, math.Vec2{})
		b.vertex(points[1], normal, math.Vec2{X: 1})
		b.vertex(points[2], normal, math.Vec2{Y: 1})
		b.indices = append(b.indices, i, i+1, i+2)
		return
	}
	c := b.vertex(centroid, normal, math.Vec2{X: 0.5, Y: 0.5})
	first := uint32(len(b.vertices))
	for _, p := range points {
		b.vertex(p, normal, math.Vec2{})
	}
	n := uint32(len(points))
	for i := uint32(0); i < n; i++ {
		b.indices = append(b.indices, c, first+i, first+(i+1)%n)
	}
}

func (b *builder) mesh(name string) *Mesh {
	return CreateMeshFromData(name, b.vertices, b.indices)
}

func dedupe(points []math.Vec3) []math.Vec3 {
	out := points[:0:0]
	for i, p := range points {
		if i > 0 && p == points[i-1] {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// CreateBox generates an axis-aligned box centred on the origin.
func CreateBox(width, height, depth float32) *Mesh {
	x, y, z := width/2, height/2, depth/2
	p := func(sx, sy, sz float32) math.Vec3 { return math.Vec3{X: sx * x, Y: sy * y, Z: sz * z} }

	var b builder
	b.face(p(-1, -1, 1), p(1, -1, 1), p(1, 1, 1), p(-1, 1, 1))     // front
	b.face(p(1, -1, -1), p(-1, -1, -1), p(-1, 1, -1), p(1, 1, -1)) // back
	b.face(p(-1, 1, 1), p(1, 1, 1), p(1, 1, -1), p(-1, 1, -1))     // top
	b.face(p(-1, -1, -1), p(1, -1, -1), p(1, -1, 1), p(-1, -1, 1)) // bottom
	b.face(p(1, -1, 1), p(1, -1, -1), p(1, 1, -1), p(1, 1, 1))     // right
	b.face(p(-1, -1, -1), p(-1, -1, 1), p(-1, 1, 1), p(-1, 1, -1)) // left
	return b.mesh("Box")
}

// CreateSphere generates a smooth UV-sphere.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	segments = max(segments, 3)
	rings = max(rings, 2)

	var vertices []core.Vertex
	var indices []uint32
	for ring := 0; ring <= rings; ring++ {
		sinPhi, cosPhi := math32.Sincos(float32(ring) * math32.Pi / float32(rings))
		for seg := 0; seg <= segments; seg++ {
			sinTheta, cosTheta := math32.Sincos(float32(seg) * 2 * math32.Pi / float32(segments))
			normal := math.Vec3{X: sinPhi * cosTheta, Y: cosPhi, Z: sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       math.Vec2{X: float32(seg) / float32(segments), Y: float32(ring) / float32(rings)},
				Color:    core.ColorWhite,
			})
		}
	}
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)
			indices = append(indices, current, current+1, next)
			indices = append(indices, current+1, next+1, next)
		}
	}
	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateCylinder generates a faceted cylinder along Y. A zero top radius
// gives a cone or pyramid, a smaller one a frustum.
func CreateCylinder(radiusTop, radiusBottom, height float32, segments int) *Mesh {
	segments = max(segments, 3)
	h := height / 2

	ring := func(r, y float32) []math.Vec3 {
		pts := make([]math.Vec3, segments)
		for i := range pts {
			// Start at +Z and go counter-clockwise seen from above.
			s, c := math32.Sincos(float32(i) * 2 * math32.Pi / float32(segments))
			pts[i] = math.Vec3{X: r * s, Y: y, Z: r * c}
		}
		return pts
	}
	top := ring(radiusTop, h)
	bottom := ring(radiusBottom, -h)

	var b builder
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		b.face(bottom[i], bottom[j], top[j], top[i])
	}
	if radiusTop > 0 {
		b.face(top...)
	}
	if radiusBottom > 0 {
		rev := make([]math.Vec3, segments)
		for i := range bottom {
			rev[segments-1-i] = bottom[i]
		}
		b.face(rev...)
	}
	return b.mesh("Cylinder")
}

// CreateCone generates a cone with its apex on +Y.
func CreateCone(radius, height float32, segments int) *Mesh {
	m := CreateCylinder(0, radius, height, segments)
	m.Name = "Cone"
	return m
}

// CreatePlane generates a width x height quad in the XY plane facing +Z.
func CreatePlane(width, height float32) *Mesh {
	x, y := width/2, height/2
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -x, Y: -y}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: x, Y: -y}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 0}, Color: core.ColorWhite},
		{Position: math.Vec3{X: x, Y: y}, Normal: math.Vec3Front, UV: math.Vec2{X: 1, Y: 1}, Color: core.ColorWhite},
		{Position: math.Vec3{X: -x, Y: y}, Normal: math.Vec3Front, UV: math.Vec2{X: 0, Y: 1}, Color: core.ColorWhite},
	}
	return CreateMeshFromData("Plane", vertices, []uint32{0, 1, 2, 2, 3, 0})
}

// CreateBipyramid joins two pyramids base to base on the XZ plane.
func CreateBipyramid(radius, height float32, sides int) *Mesh {
	sides = max(sides, 3)
	top := math.Vec3{Y: height / 2}
	bottom := math.Vec3{Y: -height / 2}

	var b builder
	for i := 0; i < sides; i++ {
		s0, c0 := math32.Sincos(float32(i) * 2 * math32.Pi / float32(sides))
		s1, c1 := math32.Sincos(float32(i+1) * 2 * math32.Pi / float32(sides))
		p0 := math.Vec3{X: radius * s0, Z: radius * c0}
		p1 := math.Vec3{X: radius * s1, Z: radius * c1}
		b.face(p0, p1, top)
		b.face(p1, p0, bottom)
	}
	return b.mesh("Bipyramid")
}

// CreateExtrusion extrudes a counter-clockwise, star-shaped outline in the
// XY plane into a prism of the given depth centred on z = 0.
func CreateExtrusion(name string, outline []math.Vec2, depth float32) *Mesh {
	d := depth / 2
	n := len(outline)
	front := make([]math.Vec3, n)
	back := make([]math.Vec3, n)
	for i, p := range outline {
		front[i] = math.Vec3{X: p.X, Y: p.Y, Z: d}
		back[n-1-i] = math.Vec3{X: p.X, Y: p.Y, Z: -d}
	}

	var b builder
	b.face(front...)
	b.face(back...)
	for i := 0; i < n; i++ {
		a, c := outline[i], outline[(i+1)%n]
		b.face(
			math.Vec3{X: a.X, Y: a.Y, Z: -d},
			math.Vec3{X: c.X, Y: c.Y, Z: -d},
			math.Vec3{X: c.X, Y: c.Y, Z: d},
			math.Vec3{X: a.X, Y: a.Y, Z: d},
		)
	}
	return b.mesh(name)
}

// RegularPolygon returns n points on a circle, the first one on +Y.
func RegularPolygon(n int, radius float32) []math.Vec2 {
	n = max(n, 3)
	pts := make([]math.Vec2, n)
	for i := range pts {
		s, c := math32.Sincos(float32(i) * 2 * math32.Pi / float32(n))
		pts[i] = math.Vec2{X: -radius * s, Y: radius * c}
	}
	return pts
}

// StarOutline alternates outer and inner radius points.
func StarOutline(points int, outer, inner float32) []math.Vec2 {
	points = max(points, 3)
	pts := make([]math.Vec2, 2*points)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		s, c := math32.Sincos(float32(i) * math32.Pi / float32(points))
		pts[i] = math.Vec2{X: -r * s, Y: r * c}
	}
	return pts
}
