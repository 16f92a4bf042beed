package scene

// TextureFilter is the sampling filter for both minification and magnification.
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// TextureWrap is the addressing mode for both S and T.
type TextureWrap int

const (
	WrapClamp TextureWrap = iota
	WrapRepeat
)

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	resources

	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	Filter TextureFilter
	Wrap   TextureWrap

	// GPUData is set by the renderer backend after upload.
	GPUData any
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// NewBayerTexture builds an ordered-dither threshold map of size n x n,
// where n is rounded up to a power of two. Each texel's gray level is
// its Bayer index scaled into 0-255.
func NewBayerTexture(n int) *Texture {
	size := 1
	for size < n {
		size *= 2
	}
	m := []int{0}
	for s := 1; s < size; s *= 2 {
		next := make([]int, 4*s*s)
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				v := 4 * m[y*s+x]
				next[y*2*s+x] = v
				next[y*2*s+x+s] = v + 2
				next[(y+s)*2*s+x] = v + 3
				next[(y+s)*2*s+x+s] = v + 1
			}
		}
		m = next
	}

	pixels := make([]byte, 4*size*size)
	levels := size * size
	for i, v := range m {
		g := byte(v * 256 / levels)
		pixels[4*i+0] = g
		pixels[4*i+1] = g
		pixels[4*i+2] = g
		pixels[4*i+3] = 255
	}
	return &Texture{
		Name:   "bayer",
		Width:  size,
		Height: size,
		Pixels: pixels,
		Filter: FilterNearest,
		Wrap:   WrapRepeat,
	}
}
