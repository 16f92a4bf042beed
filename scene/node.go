package scene

import (
	"scene-gallery/core"
	"scene-gallery/math"
)

// ObjectID is a stable per-scene identity. The zero value means none.
type ObjectID uint64

// NoObject is the absent id.
const NoObject ObjectID = 0

// Node is a member of the scene graph: a mesh, a light, a helper or a
// plain group. A node may reference a helper overlay by id.
type Node struct {
	ID        ObjectID
	Name      string
	Transform core.Transform
	Mesh      *Mesh
	Material  *Material
	Light     *Light
	Visible   bool
	Pickable  bool
	// Overlay is the id of a helper drawn on top of this node, if any.
	Overlay ObjectID

	Parent   *Node
	Children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: core.NewTransform(),
		Visible:   true,
	}
}

// NewMeshNode returns a visible, pickable node drawing mesh with mat.
func NewMeshNode(name string, mesh *Mesh, mat *Material) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Material = mat
	n.Pickable = true
	return n
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix returns the local matrix chained with every ancestor.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.Transform.Matrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = m.Mul(p.Transform.Matrix())
	}
	return m
}

// WorldVisible reports whether the node and all its ancestors are visible.
func (n *Node) WorldVisible() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
}

func (n *Node) SetRotation(euler math.Vec3) {
	n.Transform.Rotation = euler
}

// Traverse visits n and all its descendants depth-first.
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// Dispose releases the GPU resources of n and its descendants: geometry,
// material and any textures the material references.
func (n *Node) Dispose() {
	n.Traverse(func(c *Node) {
		if c.Mesh != nil {
			c.Mesh.Dispose()
		}
		if c.Material != nil {
			for _, t := range c.Material.Textures() {
				t.Dispose()
			}
			c.Material.Dispose()
		}
	})
}
