package shading

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FilterMode selects how a sample between texel centers is resolved.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// AddressMode resolves texture coordinates outside [0,1). The names match
// the wgpu sampler address modes the GPU renderer configures.
type AddressMode int

const (
	AddressRepeat AddressMode = iota
	AddressClampToEdge
	AddressMirrorRepeat
)

// Sampler is the sampling configuration bound at group 1 binding 1.
// Filtering and addressing are owned by whoever creates the sampler, not
// by the fragment stage.
type Sampler struct {
	MagFilter    FilterMode
	AddressModeU AddressMode
	AddressModeV AddressMode
}

// NearestSampler is the default terrain sampler: point filtering keeps
// atlas tiles crisp, repeat matches the GPU sampler configuration.
func NearestSampler() Sampler {
	return Sampler{
		MagFilter:    FilterNearest,
		AddressModeU: AddressRepeat,
		AddressModeV: AddressRepeat,
	}
}

// Texture2D is a CPU-side 2D RGBA texture, the software analog of the
// float texture bound at group 1 binding 0.
type Texture2D struct {
	Width  int
	Height int
	pix    []uint8 // RGBA, row-major, 4 bytes per texel
}

// NewTexture2D wraps an RGBA image as a sampleable texture. The pixel
// data is referenced, not copied.
func NewTexture2D(img *image.RGBA) *Texture2D {
	b := img.Bounds()
	return &Texture2D{
		Width:  b.Dx(),
		Height: b.Dy(),
		pix:    img.Pix,
	}
}

// Pixels returns the raw RGBA bytes, row-major, for GPU upload.
func (t *Texture2D) Pixels() []uint8 {
	return t.pix
}

// Texel returns the color at integer texel coordinates, which must be in
// range.
func (t *Texture2D) Texel(x, y int) mgl32.Vec4 {
	i := (y*t.Width + x) * 4
	return mgl32.Vec4{
		float32(t.pix[i]) / 255.0,
		float32(t.pix[i+1]) / 255.0,
		float32(t.pix[i+2]) / 255.0,
		float32(t.pix[i+3]) / 255.0,
	}
}

// Sample resolves a normalized texture coordinate to a color using the
// sampler's filter and address modes.
func (s Sampler) Sample(t *Texture2D, uv mgl32.Vec2) mgl32.Vec4 {
	if s.MagFilter == FilterLinear {
		return s.sampleLinear(t, uv)
	}
	x := wrapTexel(int(math.Floor(float64(uv.X())*float64(t.Width))), t.Width, s.AddressModeU)
	y := wrapTexel(int(math.Floor(float64(uv.Y())*float64(t.Height))), t.Height, s.AddressModeV)
	return t.Texel(x, y)
}

func (s Sampler) sampleLinear(t *Texture2D, uv mgl32.Vec2) mgl32.Vec4 {
	// Texel centers sit at (i+0.5)/size.
	fx := float64(uv.X())*float64(t.Width) - 0.5
	fy := float64(uv.Y())*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - math.Floor(fx))
	ty := float32(fy - math.Floor(fy))

	c00 := t.Texel(wrapTexel(x0, t.Width, s.AddressModeU), wrapTexel(y0, t.Height, s.AddressModeV))
	c10 := t.Texel(wrapTexel(x0+1, t.Width, s.AddressModeU), wrapTexel(y0, t.Height, s.AddressModeV))
	c01 := t.Texel(wrapTexel(x0, t.Width, s.AddressModeU), wrapTexel(y0+1, t.Height, s.AddressModeV))
	c11 := t.Texel(wrapTexel(x0+1, t.Width, s.AddressModeU), wrapTexel(y0+1, t.Height, s.AddressModeV))

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

// wrapTexel applies an address mode to an integer texel coordinate over
// [0, size).
func wrapTexel(i, size int, mode AddressMode) int {
	switch mode {
	case AddressClampToEdge:
		if i < 0 {
			return 0
		}
		if i >= size {
			return size - 1
		}
		return i
	case AddressMirrorRepeat:
		period := 2 * size
		i %= period
		if i < 0 {
			i += period
		}
		if i >= size {
			return period - 1 - i
		}
		return i
	default: // AddressRepeat
		i %= size
		if i < 0 {
			i += size
		}
		return i
	}
}
