package scene

import (
	"github.com/chewxy/math32"

	"scene-gallery/core"
	"scene-gallery/math"
)

// NewFloor builds a size x size horizontal plane with a wireframe helper
// overlay as its child. The returned node's Overlay names the helper once
// the floor has been added to a scene.
func NewFloor(size float32, color, overlayColor core.Color) *Node {
	plane := CreatePlane(size, size)
	mat := NewPhysicalMaterial("FloorMaterial", color)
	mat.DoubleSided = true

	floor := NewMeshNode("Floor", plane, mat)
	floor.Transform.Rotation = math.Vec3{X: -math32.Pi / 2}

	overlay := CreateWireframeOverlay(plane, overlayColor)
	overlay.Name = "FloorOverlay"
	floor.AddChild(overlay)
	return floor
}

// linkOverlays points Overlay at the first line-mesh child of each node.
func linkOverlays(n *Node) {
	n.Traverse(func(c *Node) {
		for _, child := range c.Children {
			if child.Mesh != nil && child.Mesh.DrawMode == DrawLines {
				c.Overlay = child.ID
				return
			}
		}
	})
}
