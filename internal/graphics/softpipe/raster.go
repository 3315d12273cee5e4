package softpipe

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terravox/internal/graphics/shading"
)

type screenVertex struct {
	x, y    float32 // pixel coordinates
	z       float32 // NDC depth
	invW    float32
	u, v    float32 // tex coords pre-divided by w
	clipped bool
}

// toScreen performs the perspective divide and viewport transform.
// Vertices at or behind the eye plane (w <= 0) mark the triangle as
// clipped; proper near-plane clipping is not needed for closed terrain
// meshes viewed from outside the geometry.
func (fb *Framebuffer) toScreen(v shading.VertexOutput) screenVertex {
	w := v.ClipPosition.W()
	if w <= 0 || math.IsNaN(float64(w)) {
		return screenVertex{clipped: true}
	}
	invW := 1.0 / w
	ndc := mgl32.Vec3{
		v.ClipPosition.X() * invW,
		v.ClipPosition.Y() * invW,
		v.ClipPosition.Z() * invW,
	}
	return screenVertex{
		x:    (ndc.X()*0.5 + 0.5) * float32(fb.Width),
		y:    (1.0 - (ndc.Y()*0.5 + 0.5)) * float32(fb.Height),
		z:    ndc.Z(),
		invW: invW,
		u:    v.TexCoords.X() * invW,
		v:    v.TexCoords.Y() * invW,
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterTriangle fills one triangle: edge-function coverage, barycentric
// interpolation (perspective-correct for tex coords), depth test, then
// the fragment stage per covered pixel.
func (fb *Framebuffer) rasterTriangle(pass RenderPass, v0, v1, v2 shading.VertexOutput) {
	s0 := fb.toScreen(v0)
	s1 := fb.toScreen(v1)
	s2 := fb.toScreen(v2)
	if s0.clipped || s1.clipped || s2.clipped {
		return
	}

	area := edge(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y)
	if area == 0 {
		return
	}

	minX := int(math.Floor(float64(min3(s0.x, s1.x, s2.x))))
	maxX := int(math.Ceil(float64(max3(s0.x, s1.x, s2.x))))
	minY := int(math.Floor(float64(min3(s0.y, s1.y, s2.y))))
	maxY := int(math.Ceil(float64(max3(s0.y, s1.y, s2.y))))
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)

	invArea := 1.0 / area
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			// Sample at the pixel center.
			cx := float32(px) + 0.5
			cy := float32(py) + 0.5

			w0 := edge(s1.x, s1.y, s2.x, s2.y, cx, cy) * invArea
			w1 := edge(s2.x, s2.y, s0.x, s0.y, cx, cy) * invArea
			w2 := edge(s0.x, s0.y, s1.x, s1.y, cx, cy) * invArea
			// Accept both windings; the GPU pipeline runs with culling
			// disabled.
			if !(w0 >= 0 && w1 >= 0 && w2 >= 0) && !(w0 <= 0 && w1 <= 0 && w2 <= 0) {
				continue
			}

			z := w0*s0.z + w1*s1.z + w2*s2.z
			if z < -1 || z > 1 {
				continue
			}
			di := py*fb.Width + px
			if z >= fb.depth[di] {
				continue
			}

			invW := w0*s0.invW + w1*s1.invW + w2*s2.invW
			uv := mgl32.Vec2{
				(w0*s0.u + w1*s1.u + w2*s2.u) / invW,
				(w0*s0.v + w1*s1.v + w2*s2.v) / invW,
			}

			c := shading.ShadeFragment(pass.Texture, pass.Sampler, uv)
			fb.depth[di] = z
			fb.Color.SetRGBA(px, py, color.RGBA{
				R: floatToByte(c.X()),
				G: floatToByte(c.Y()),
				B: floatToByte(c.Z()),
				A: floatToByte(c.W()),
			})
		}
	}
}

func floatToByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

func min3(a, b, c float32) float32 { return min(a, min(b, c)) }
func max3(a, b, c float32) float32 { return max(a, max(b, c)) }
