package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-gallery/core"
	"scene-gallery/scene"
)

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// ensureMesh uploads mesh on first use and registers its release hook.
func (r *Renderer) ensureMesh(mesh *scene.Mesh) *gpuMesh {
	if gpu, ok := r.meshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &gpuMesh{indexed: len(mesh.Indices) > 0}
	if gpu.indexed {
		gpu.count = int32(len(mesh.Indices))
	} else {
		gpu.count = int32(len(mesh.Vertices))
	}

	gl.GenVertexArrays(1, &gpu.vao)
	gl.GenBuffers(1, &gpu.vbo)
	gl.BindVertexArray(gpu.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Color))))

	if gpu.indexed {
		gl.GenBuffers(1, &gpu.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}
	gl.BindVertexArray(0)

	r.meshes[mesh] = gpu
	mesh.GPUData = gpu
	mesh.OnDispose(func() { r.releaseMesh(mesh) })
	return gpu
}

func (r *Renderer) releaseMesh(mesh *scene.Mesh) {
	gpu, ok := r.meshes[mesh]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &gpu.vao)
	gl.DeleteBuffers(1, &gpu.vbo)
	if gpu.indexed {
		gl.DeleteBuffers(1, &gpu.ebo)
	}
	delete(r.meshes, mesh)
	mesh.GPUData = nil
}
