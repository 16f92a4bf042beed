package scene

import (
	"github.com/chewxy/math32"

	"scene-gallery/math"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is the nearest intersection found by Raycast.
type Hit struct {
	Node     *Node
	Distance float32
	Point    math.Vec3
	Face     int
}

// Raycast tests the ray against every visible, pickable triangle mesh in
// the scene and returns the closest hit. Line meshes are never hit.
func Raycast(ray Ray, s *Scene) (Hit, bool) {
	closest := Hit{Distance: math32.MaxFloat32}
	found := false

	s.Walk(func(n *Node) {
		if !n.Pickable || n.Mesh == nil || n.Mesh.DrawMode != DrawTriangles || !n.WorldVisible() {
			return
		}
		world := n.WorldMatrix()

		// Broad phase
		t, ok := rayAABB(ray, n.Mesh.LocalAABB.Transform(world))
		if !ok || t > closest.Distance {
			return
		}

		if h, ok := rayMesh(ray, n, world); ok && h.Distance < closest.Distance {
			closest = h
			found = true
		}
	})
	return closest, found
}

func rayAABB(ray Ray, box AABB) (float32, bool) {
	inv := math.Vec3{X: 1 / ray.Direction.X, Y: 1 / ray.Direction.Y, Z: 1 / ray.Direction.Z}

	t1 := (box.Min.X - ray.Origin.X) * inv.X
	t2 := (box.Max.X - ray.Origin.X) * inv.X
	t3 := (box.Min.Y - ray.Origin.Y) * inv.Y
	t4 := (box.Max.Y - ray.Origin.Y) * inv.Y
	t5 := (box.Min.Z - ray.Origin.Z) * inv.Z
	t6 := (box.Max.Z - ray.Origin.Z) * inv.Z

	tmin := max(min(t1, t2), min(t3, t4), min(t5, t6))
	tmax := min(max(t1, t2), max(t3, t4), max(t5, t6))

	if tmax < 0 || tmin > tmax {
		return 0, false
	}
	return tmin, true
}

func rayMesh(ray Ray, n *Node, world math.Mat4) (Hit, bool) {
	mesh := n.Mesh
	best := Hit{Distance: math32.MaxFloat32}
	found := false

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := world.MulVec3(mesh.Vertices[mesh.Indices[i]].Position)
		v1 := world.MulVec3(mesh.Vertices[mesh.Indices[i+1]].Position)
		v2 := world.MulVec3(mesh.Vertices[mesh.Indices[i+2]].Position)

		if t, ok := mollerTrumbore(ray, v0, v1, v2); ok && t < best.Distance {
			best = Hit{Node: n, Distance: t, Point: ray.At(t), Face: i / 3}
			found = true
		}
	}
	return best, found
}

// mollerTrumbore is two-sided: back faces are hit too.
func mollerTrumbore(ray Ray, v0, v1, v2 math.Vec3) (float32, bool) {
	const epsilon = 1e-7

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	return t, t > epsilon
}
