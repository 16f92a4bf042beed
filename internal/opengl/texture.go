package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-gallery/scene"
)

type gpuTexture struct {
	id uint32
}

// ensureTexture uploads tex on first use with its filter and wrap modes.
func (r *Renderer) ensureTexture(tex *scene.Texture) (*gpuTexture, error) {
	if gpu, ok := r.textures[tex]; ok {
		return gpu, nil
	}
	if len(tex.Pixels) != tex.Width*tex.Height*4 || len(tex.Pixels) == 0 {
		return nil, fmt.Errorf("texture %q: want %dx%d RGBA pixels, have %d bytes", tex.Name, tex.Width, tex.Height, len(tex.Pixels))
	}

	gpu := &gpuTexture{}
	gl.GenTextures(1, &gpu.id)
	gl.BindTexture(gl.TEXTURE_2D, gpu.id)

	wrap := int32(gl.CLAMP_TO_EDGE)
	if tex.Wrap == scene.WrapRepeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	if tex.Filter == scene.FilterNearest {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tex.Width), int32(tex.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&tex.Pixels[0]))
	if tex.Filter != scene.FilterNearest {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[tex] = gpu
	tex.GPUData = gpu
	tex.OnDispose(func() { r.releaseTexture(tex) })
	return gpu, nil
}

func (r *Renderer) releaseTexture(tex *scene.Texture) {
	gpu, ok := r.textures[tex]
	if !ok {
		return
	}
	gl.DeleteTextures(1, &gpu.id)
	delete(r.textures, tex)
	tex.GPUData = nil
}
