package scene

import (
	"scene-gallery/core"
)

// LightType enumerates the supported light sources.
type LightType int

const (
	LightPoint LightType = iota
	LightDirectional
	LightAmbient
)

// Light is attached to a node; point lights take their position from it.
type Light struct {
	Type      LightType
	Color     core.Color
	Intensity float32
	// Distance is the cutoff range; 0 means unlimited.
	Distance float32
	Decay    float32
}

// NewPointLight returns a point light node at the origin.
func NewPointLight(name string, color core.Color, intensity, distance, decay float32) *Node {
	n := NewNode(name)
	n.Light = &Light{
		Type:      LightPoint,
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     decay,
	}
	return n
}

// Scene is an ordered collection of top-level nodes. It assigns ids.
type Scene struct {
	Background core.Color
	Ambient    core.Color

	objects []*Node
	nextID  ObjectID
}

func NewScene() *Scene {
	return &Scene{
		Background: core.ColorBlack,
		Ambient:    core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
	}
}

// Add appends node as a top-level object, assigning ids to it and any
// descendants that lack one, and returns the node's id.
func (s *Scene) Add(node *Node) ObjectID {
	node.Traverse(func(n *Node) {
		if n.ID == NoObject {
			s.nextID++
			n.ID = s.nextID
		}
	})
	linkOverlays(node)
	s.objects = append(s.objects, node)
	return node.ID
}

// Remove detaches the node with the given id from wherever it sits in the
// graph and returns it, or nil if no such node exists.
func (s *Scene) Remove(id ObjectID) *Node {
	for i, n := range s.objects {
		if n.ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return n
		}
	}
	n := s.Find(id)
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	return n
}

// Find looks the id up anywhere in the graph.
func (s *Scene) Find(id ObjectID) *Node {
	if id == NoObject {
		return nil
	}
	var found *Node
	s.Walk(func(n *Node) {
		if found == nil && n.ID == id {
			found = n
		}
	})
	return found
}

// Objects returns the top-level nodes in insertion order.
func (s *Scene) Objects() []*Node {
	out := make([]*Node, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// Walk visits every node depth-first in insertion order.
func (s *Scene) Walk(fn func(*Node)) {
	for _, n := range s.objects {
		n.Traverse(fn)
	}
}

// VisibleMeshes returns every node with a mesh whose whole ancestry is visible.
func (s *Scene) VisibleMeshes() []*Node {
	var visible []*Node
	s.Walk(func(n *Node) {
		if n.Mesh != nil && n.Material != nil && n.WorldVisible() {
			visible = append(visible, n)
		}
	})
	return visible
}

// Lights returns every visible node carrying a light.
func (s *Scene) Lights() []*Node {
	var lights []*Node
	s.Walk(func(n *Node) {
		if n.Light != nil && n.WorldVisible() {
			lights = append(lights, n)
		}
	})
	return lights
}
