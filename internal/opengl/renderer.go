// Package opengl is the OpenGL 4.1 core backend for session.Renderer.
// Every call must happen on the goroutine that owns the GL context.
package opengl

import (
	"fmt"
	"log/slog"
	"sort"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-gallery/core"
	"scene-gallery/math"
	"scene-gallery/scene"
)

// Renderer draws scenes with a shared default program and one program per
// shader material. GPU objects are created lazily on first draw and freed
// through the owning resource's dispose hook.
type Renderer struct {
	program uint32

	mvpLoc   int32
	modelLoc int32

	matColorLoc              int32
	matOpacityLoc            int32
	litLoc                   int32
	matRoughnessLoc          int32
	matMetalnessLoc          int32
	matClearcoatLoc          int32
	matClearcoatRoughnessLoc int32
	matReflectivityLoc       int32

	ambientColorLoc int32
	cameraPosLoc    int32

	pointLightCountLoc    int32
	pointLightPosLoc      [maxPointLights]int32
	pointLightColorLoc    [maxPointLights]int32
	pointLightDistanceLoc [maxPointLights]int32
	pointLightDecayLoc    [maxPointLights]int32

	dirLightCountLoc int32
	dirLightDirLoc   [maxDirLights]int32
	dirLightColorLoc [maxDirLights]int32

	clearColor core.Color
	width      int
	height     int

	meshes   map[*scene.Mesh]*gpuMesh
	programs map[*scene.Material]*gpuProgram
	textures map[*scene.Texture]*gpuTexture

	logger *slog.Logger
}

// NewRenderer initialises OpenGL. The window's context must be current.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	logger.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("default program: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	loc := func(name string) int32 { return gl.GetUniformLocation(prog, gl.Str(name+"\x00")) }
	r := &Renderer{
		program:  prog,
		mvpLoc:   loc("mvp"),
		modelLoc: loc("model"),

		matColorLoc:              loc("matColor"),
		matOpacityLoc:            loc("matOpacity"),
		litLoc:                   loc("lit"),
		matRoughnessLoc:          loc("matRoughness"),
		matMetalnessLoc:          loc("matMetalness"),
		matClearcoatLoc:          loc("matClearcoat"),
		matClearcoatRoughnessLoc: loc("matClearcoatRoughness"),
		matReflectivityLoc:       loc("matReflectivity"),

		ambientColorLoc:    loc("ambientColor"),
		cameraPosLoc:       loc("cameraPos"),
		pointLightCountLoc: loc("pointLightCount"),
		dirLightCountLoc:   loc("dirLightCount"),

		clearColor: core.ColorBlack,
		meshes:     make(map[*scene.Mesh]*gpuMesh),
		programs:   make(map[*scene.Material]*gpuProgram),
		textures:   make(map[*scene.Texture]*gpuTexture),
		logger:     logger,
	}
	for i := 0; i < maxPointLights; i++ {
		r.pointLightPosLoc[i] = loc(fmt.Sprintf("pointLightPos[%d]", i))
		r.pointLightColorLoc[i] = loc(fmt.Sprintf("pointLightColor[%d]", i))
		r.pointLightDistanceLoc[i] = loc(fmt.Sprintf("pointLightDistance[%d]", i))
		r.pointLightDecayLoc[i] = loc(fmt.Sprintf("pointLightDecay[%d]", i))
	}
	for i := 0; i < maxDirLights; i++ {
		r.dirLightDirLoc[i] = loc(fmt.Sprintf("dirLightDir[%d]", i))
		r.dirLightColorLoc[i] = loc(fmt.Sprintf("dirLightColor[%d]", i))
	}
	return r, nil
}

// SetSize records the drawing buffer size. The window resizes the default
// framebuffer itself.
func (r *Renderer) SetSize(width, height int, ratio float32) {
	r.width = int(float32(width) * ratio)
	r.height = int(float32(height) * ratio)
}

func (r *Renderer) SetViewport(rect core.PixelRect) {
	gl.Viewport(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height))
}

func (r *Renderer) SetScissor(rect core.PixelRect) {
	gl.Scissor(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height))
}

func (r *Renderer) SetScissorTest(enabled bool) {
	if enabled {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
}

func (r *Renderer) SetClearColor(c core.Color) {
	r.clearColor = c
}

type drawItem struct {
	node  *scene.Node
	world math.Mat4
	depth float32
}

// Render clears the current viewport (the scissor rect when the scissor
// test is on) and draws every visible mesh as seen from cam. Opaque
// meshes draw first, then transparent ones back to front.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) error {
	if s == nil || cam == nil {
		return fmt.Errorf("render: nil scene or camera")
	}
	bg := r.clearColor
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	r.applyLights(s, cam)

	var opaque, transparent []drawItem
	for _, n := range s.VisibleMeshes() {
		world := n.WorldMatrix()
		item := drawItem{node: n, world: world}
		if n.Material.Transparent || n.Material.Opacity < 1 {
			item.depth = world.MulVec3(math.Vec3Zero).Distance(cam.Position)
			transparent = append(transparent, item)
			continue
		}
		opaque = append(opaque, item)
	}
	sort.SliceStable(transparent, func(i, j int) bool { return transparent[i].depth > transparent[j].depth })

	var firstErr error
	draw := func(items []drawItem) {
		for _, it := range items {
			if err := r.drawNode(it.node, it.world, view, proj, cam); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	gl.Disable(gl.BLEND)
	draw(opaque)
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	draw(transparent)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	return firstErr
}

func (r *Renderer) applyLights(s *scene.Scene, cam *scene.Camera) {
	gl.UseProgram(r.program)
	ambient := s.Ambient
	var points, dirs int32
	for _, n := range s.Lights() {
		l := n.Light
		c := l.Color
		c.R, c.G, c.B = c.R*l.Intensity, c.G*l.Intensity, c.B*l.Intensity
		pos := n.WorldMatrix().MulVec3(math.Vec3Zero)
		switch l.Type {
		case scene.LightAmbient:
			ambient.R += c.R
			ambient.G += c.G
			ambient.B += c.B
		case scene.LightPoint:
			if points == maxPointLights {
				continue
			}
			gl.Uniform3f(r.pointLightPosLoc[points], pos.X, pos.Y, pos.Z)
			gl.Uniform3f(r.pointLightColorLoc[points], c.R, c.G, c.B)
			gl.Uniform1f(r.pointLightDistanceLoc[points], l.Distance)
			gl.Uniform1f(r.pointLightDecayLoc[points], l.Decay)
			points++
		case scene.LightDirectional:
			if dirs == maxDirLights {
				continue
			}
			// Directional lights shine from their position toward the origin.
			dir := pos.Negate().Normalize()
			gl.Uniform3f(r.dirLightDirLoc[dirs], dir.X, dir.Y, dir.Z)
			gl.Uniform3f(r.dirLightColorLoc[dirs], c.R, c.G, c.B)
			dirs++
		}
	}
	gl.Uniform1i(r.pointLightCountLoc, points)
	gl.Uniform1i(r.dirLightCountLoc, dirs)
	gl.Uniform3f(r.ambientColorLoc, ambient.R, ambient.G, ambient.B)
	gl.Uniform3f(r.cameraPosLoc, cam.Position.X, cam.Position.Y, cam.Position.Z)
}

func (r *Renderer) drawNode(n *scene.Node, world, view, proj math.Mat4, cam *scene.Camera) error {
	gpu := r.ensureMesh(n.Mesh)
	if gpu == nil {
		return nil
	}
	mat := n.Material
	mvp := world.Mul(view).Mul(proj)

	if mat.Kind == scene.MaterialShader {
		p, err := r.ensureProgram(mat)
		if err != nil {
			return err
		}
		gl.UseProgram(p.id)
		p.setMatrix("mvp", mvp)
		p.setMatrix("model", world)
		p.setMatrix("view", view)
		p.setMatrix("projection", proj)
		if err := r.applyUniforms(p, mat); err != nil {
			return err
		}
	} else {
		gl.UseProgram(r.program)
		gl.UniformMatrix4fv(r.mvpLoc, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
		gl.UniformMatrix4fv(r.modelLoc, 1, false, (*float32)(unsafe.Pointer(&world[0][0])))
		r.applyMaterial(mat, n.Mesh.DrawMode == scene.DrawLines)
	}

	if mat.DoubleSided || n.Mesh.DrawMode == scene.DrawLines {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	if mat.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	primitive := uint32(gl.TRIANGLES)
	if n.Mesh.DrawMode == scene.DrawLines {
		primitive = gl.LINES
	}
	gl.BindVertexArray(gpu.vao)
	if gpu.indexed {
		gl.DrawElements(primitive, gpu.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive, 0, gpu.count)
	}
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) applyMaterial(mat *scene.Material, lines bool) {
	gl.Uniform3f(r.matColorLoc, mat.Color.R, mat.Color.G, mat.Color.B)
	opacity := mat.Opacity
	if !mat.Transparent {
		opacity = 1
	}
	gl.Uniform1f(r.matOpacityLoc, opacity)

	if mat.Kind == scene.MaterialPhysical && !lines {
		gl.Uniform1i(r.litLoc, 1)
	} else {
		gl.Uniform1i(r.litLoc, 0)
	}
	gl.Uniform1f(r.matRoughnessLoc, mat.Roughness)
	gl.Uniform1f(r.matMetalnessLoc, mat.Metalness)
	gl.Uniform1f(r.matClearcoatLoc, mat.Clearcoat)
	gl.Uniform1f(r.matClearcoatRoughnessLoc, mat.ClearcoatRoughness)
	gl.Uniform1f(r.matReflectivityLoc, mat.Reflectivity)
}

// Destroy releases every GPU object this renderer created.
func (r *Renderer) Destroy() {
	for m := range r.meshes {
		r.releaseMesh(m)
	}
	for m := range r.programs {
		r.releaseProgram(m)
	}
	for t := range r.textures {
		r.releaseTexture(t)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
