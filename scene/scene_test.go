package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-gallery/core"
)

func TestSceneAssignsStableIDs(t *testing.T) {
	s := NewScene()
	a := NewMeshNode("a", CreateBox(1, 1, 1), NewBasicMaterial("m", core.ColorWhite))
	b := NewMeshNode("b", CreateBox(1, 1, 1), NewBasicMaterial("m", core.ColorWhite))

	idA := s.Add(a)
	idB := s.Add(b)
	assert.NotEqual(t, NoObject, idA)
	assert.NotEqual(t, idA, idB)
	assert.Same(t, b, s.Find(idB))

	removed := s.Remove(idA)
	assert.Same(t, a, removed)
	assert.Nil(t, s.Find(idA))
	assert.Equal(t, 1, s.Len())

	// Ids are never reused.
	c := NewNode("c")
	assert.Greater(t, s.Add(c), idB)
}

func TestSceneRemoveMissing(t *testing.T) {
	s := NewScene()
	assert.Nil(t, s.Remove(42))
	assert.Nil(t, s.Find(NoObject))
}

func TestFloorOverlayLinkedByID(t *testing.T) {
	s := NewScene()
	floor := NewFloor(10, core.ColorWhite, core.ColorRGB(0.2, 0.2, 0.2))
	id := s.Add(floor)

	require.NotEqual(t, NoObject, floor.Overlay)
	overlay := s.Find(floor.Overlay)
	require.NotNil(t, overlay)
	assert.Equal(t, DrawLines, overlay.Mesh.DrawMode)
	assert.False(t, overlay.Pickable)
	assert.Same(t, floor, overlay.Parent)

	floor.Visible = false
	assert.False(t, overlay.WorldVisible())
	assert.Empty(t, s.VisibleMeshes())

	// Removing the floor takes its overlay with it.
	s.Remove(id)
	assert.Nil(t, s.Find(overlay.ID))
}

func TestNodeDisposeReleasesEverything(t *testing.T) {
	tex := NewBayerTexture(8)
	mat := NewShaderMaterial("s", "v", "f", map[string]any{"iChannel0": tex})
	n := NewMeshNode("n", CreateBox(1, 1, 1), mat)
	child := NewMeshNode("child", CreateSphere(1, 8, 4), NewBasicMaterial("c", core.ColorWhite))
	n.AddChild(child)

	released := 0
	n.Mesh.OnDispose(func() { released++ })
	n.Dispose()
	n.Dispose()

	assert.Equal(t, 1, released, "hooks run exactly once")
	assert.True(t, n.Mesh.Disposed())
	assert.True(t, mat.Disposed())
	assert.True(t, tex.Disposed())
	assert.True(t, child.Mesh.Disposed())
	assert.True(t, child.Material.Disposed())
}

func TestLightsWalk(t *testing.T) {
	s := NewScene()
	light := NewPointLight("light", core.ColorWhite, 1, 0, 1)
	s.Add(light)
	s.Add(NewNode("empty"))
	assert.Equal(t, []*Node{light}, s.Lights())
	light.Visible = false
	assert.Empty(t, s.Lights())
}
