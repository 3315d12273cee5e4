// Package softpipe runs the terrain shading stages without a GPU. It
// models the pipeline the way a rasterizer executes it: the vertex stage
// per vertex, an explicit barycentric interpolation step per covered
// pixel, then the fragment stage. Used by tests and the headless snapshot
// tool.
package softpipe

import (
	"image"
	"image/color"

	"terravox/internal/graphics/shading"
)

// Framebuffer is a render target: RGBA color plus float depth.
type Framebuffer struct {
	Width  int
	Height int
	Color  *image.RGBA
	depth  []float32
}

// NewFramebuffer allocates a framebuffer cleared to white with depth 1.0,
// matching the render pass configuration of the GPU renderer.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
	}
	fb.Clear(color.RGBA{255, 255, 255, 255})
	return fb
}

// Clear resets every pixel to c and every depth value to the far plane.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.Color.SetRGBA(x, y, c)
		}
	}
	for i := range fb.depth {
		fb.depth[i] = 1.0
	}
}

// DepthAt returns the stored depth for a pixel.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	return fb.depth[y*fb.Width+x]
}

// RenderPass carries the resources a draw call reads: the camera uniform
// and the bound texture/sampler pair. Bindings are explicit arguments
// here instead of ambient GPU state.
type RenderPass struct {
	Camera  shading.CameraUniform
	Texture *shading.Texture2D
	Sampler shading.Sampler
}

// Draw rasterizes an indexed triangle list into the framebuffer. Vertices
// go through the vertex stage once each, then every triangle is
// interpolated and shaded per covered pixel with a less-than depth test.
func (fb *Framebuffer) Draw(pass RenderPass, vertices []shading.VertexInput, indices []uint32) {
	transformed := make([]shading.VertexOutput, len(vertices))
	for i, v := range vertices {
		transformed[i] = shading.TransformVertex(pass.Camera, v)
	}

	for i := 0; i+2 < len(indices); i += 3 {
		fb.rasterTriangle(pass,
			transformed[indices[i]],
			transformed[indices[i+1]],
			transformed[indices[i+2]],
		)
	}
}
