package session

import (
	"scene-gallery/core"
	"scene-gallery/scene"
)

// Selection tracks the active object and its transform at selection time.
type Selection struct {
	node *scene.Node
	base core.Transform
}

// Active returns the selected id, if any.
func (s *Selection) Active() (scene.ObjectID, bool) {
	if s.node == nil {
		return scene.NoObject, false
	}
	return s.node.ID, true
}

// Node returns the selected node or nil.
func (s *Selection) Node() *scene.Node {
	return s.node
}

// Base is the transform snapshotted when the object was selected.
func (s *Selection) Base() core.Transform {
	return s.base
}

func (s *Selection) set(n *scene.Node) {
	s.node = n
	s.base = n.Transform
}

func (s *Selection) clear() {
	s.node = nil
	s.base = core.Transform{}
}

// SelectionChange describes the effect of a Select call.
type SelectionChange struct {
	Previous scene.ObjectID
	Current  scene.ObjectID
}

// Changed reports whether the active object changed.
func (c SelectionChange) Changed() bool {
	return c.Previous != c.Current
}
