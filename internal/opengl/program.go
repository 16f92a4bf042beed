package opengl

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-gallery/math"
	"scene-gallery/scene"
)

type gpuProgram struct {
	id   uint32
	locs map[string]int32
}

func (p *gpuProgram) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

func (p *gpuProgram) setMatrix(name string, m math.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
	}
}

// ensureProgram compiles a shader material's program on first use.
func (r *Renderer) ensureProgram(mat *scene.Material) (*gpuProgram, error) {
	if p, ok := r.programs[mat]; ok {
		return p, nil
	}
	if mat.Shader == nil {
		return nil, fmt.Errorf("material %q has no shader source", mat.Name)
	}
	id, err := newProgram(terminated(mat.Shader.Vertex), terminated(mat.Shader.Fragment))
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", mat.Name, err)
	}
	p := &gpuProgram{id: id, locs: make(map[string]int32)}
	r.programs[mat] = p
	mat.GPUData = p
	mat.OnDispose(func() { r.releaseProgram(mat) })
	return p, nil
}

// applyUniforms uploads a shader material's uniforms. Textures bind to
// consecutive units in name order.
func (r *Renderer) applyUniforms(p *gpuProgram, mat *scene.Material) error {
	names := make([]string, 0, len(mat.Shader.Uniforms))
	for name := range mat.Shader.Uniforms {
		names = append(names, name)
	}
	sort.Strings(names)

	unit := int32(0)
	for _, name := range names {
		loc := p.location(name)
		if loc < 0 {
			continue
		}
		switch v := mat.Shader.Uniforms[name].(type) {
		case float32:
			gl.Uniform1f(loc, v)
		case math.Vec3:
			gl.Uniform3f(loc, v.X, v.Y, v.Z)
		case *scene.Texture:
			tex, err := r.ensureTexture(v)
			if err != nil {
				return err
			}
			gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
			gl.BindTexture(gl.TEXTURE_2D, tex.id)
			gl.Uniform1i(loc, unit)
			unit++
		}
	}
	return nil
}

func (r *Renderer) releaseProgram(mat *scene.Material) {
	p, ok := r.programs[mat]
	if !ok {
		return
	}
	gl.DeleteProgram(p.id)
	delete(r.programs, mat)
	mat.GPUData = nil
}

func terminated(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
