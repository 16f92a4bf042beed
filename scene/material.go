package scene

import (
	"scene-gallery/core"
	"scene-gallery/math"
)

// MaterialKind selects the shading model.
type MaterialKind int

const (
	// MaterialBasic is unlit: the output is Color.
	MaterialBasic MaterialKind = iota
	// MaterialPhysical is lit by the scene lights using the roughness,
	// clearcoat and reflectivity parameters.
	MaterialPhysical
	// MaterialShader runs a user supplied GLSL program.
	MaterialShader
)

// Material describes surface appearance for a node.
type Material struct {
	resources

	Name        string
	Kind        MaterialKind
	Color       core.Color
	Opacity     float32
	Transparent bool
	Wireframe   bool
	DoubleSided bool

	// Physical parameters, all 0-1.
	Roughness          float32
	Metalness          float32
	Clearcoat          float32
	ClearcoatRoughness float32
	Reflectivity       float32

	Shader *ShaderSource

	GPUData any
}

// ShaderSource is a custom GLSL program and its uniforms. Uniform values
// may be float32, math.Vec3 or *Texture.
type ShaderSource struct {
	Vertex   string
	Fragment string
	Uniforms map[string]any
}

// NewBasicMaterial returns an unlit material of the given color.
func NewBasicMaterial(name string, color core.Color) *Material {
	return &Material{
		Name:    name,
		Kind:    MaterialBasic,
		Color:   color,
		Opacity: 1,
	}
}

// NewPhysicalMaterial returns a lit material with mid roughness.
func NewPhysicalMaterial(name string, color core.Color) *Material {
	return &Material{
		Name:         name,
		Kind:         MaterialPhysical,
		Color:        color,
		Opacity:      1,
		Roughness:    0.5,
		Reflectivity: 0.5,
	}
}

// NewShaderMaterial wraps a GLSL program.
func NewShaderMaterial(name, vertex, fragment string, uniforms map[string]any) *Material {
	if uniforms == nil {
		uniforms = make(map[string]any)
	}
	return &Material{
		Name:    name,
		Kind:    MaterialShader,
		Color:   core.ColorWhite,
		Opacity: 1,
		Shader:  &ShaderSource{Vertex: vertex, Fragment: fragment, Uniforms: uniforms},
	}
}

// SetUniform stores a uniform value for shader materials and is a no-op
// for other kinds.
func (m *Material) SetUniform(name string, value any) {
	if m.Shader == nil {
		return
	}
	switch value.(type) {
	case float32, math.Vec3, *Texture:
		m.Shader.Uniforms[name] = value
	}
}

// Textures lists the textures referenced by the material's uniforms.
func (m *Material) Textures() []*Texture {
	if m.Shader == nil {
		return nil
	}
	var out []*Texture
	for _, v := range m.Shader.Uniforms {
		if t, ok := v.(*Texture); ok && t != nil {
			out = append(out, t)
		}
	}
	return out
}
