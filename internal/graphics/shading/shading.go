// Package shading holds the terrain shading pipeline: the vertex and
// fragment stage semantics and the data contracts (camera uniform layout,
// vertex attribute layout, texture/sampler bindings) shared by the GPU
// renderer and the software pipeline.
//
// Both stages are pure functions of their explicit arguments. The GPU
// executes the WGSL in ShaderSource; the Go functions here are the
// reference semantics the software pipeline and the tests run against.
package shading

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderSource is the WGSL source for both shading stages. The binding
// declarations in it must stay in sync with the Go-side layout
// declarations in layout.go.
//
//go:embed assets/terrain.wgsl
var ShaderSource string

// Shader entry points, referenced by name at pipeline construction.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// CameraUniform is the per-frame camera data bound at group 0 binding 0.
// ViewPos is declared for layout compatibility but not read by either
// stage; it is reserved for future use.
type CameraUniform struct {
	ViewPos  mgl32.Vec3
	ViewProj mgl32.Mat4
}

// CameraUniformSize is the size of the marshaled uniform in bytes:
// vec3 view_pos at offset 0 (align 16, so 4 bytes of padding), mat4x4
// view_proj at offset 16.
const CameraUniformSize = 80

const viewProjOffset = 16

// Marshal serializes the uniform into the 80-byte WGSL struct layout for
// GPU upload. ViewProj is written column-major, the order mgl32 stores it.
func (u CameraUniform) Marshal() []byte {
	buf := make([]byte, CameraUniformSize)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(u.ViewPos[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[viewProjOffset+i*4:], math.Float32bits(u.ViewProj[i]))
	}
	return buf
}

// VertexInput is one terrain vertex as consumed from the vertex buffer:
// object-space position at location 0, normalized texture coordinates at
// location 1.
type VertexInput struct {
	Position  mgl32.Vec3
	TexCoords mgl32.Vec2
}

// VertexOutput is the inter-stage record: homogeneous clip-space position
// plus texture coordinates for the rasterizer to interpolate.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	TexCoords    mgl32.Vec2
}

// TransformVertex is the vertex stage. It projects the vertex position
// into clip space with the camera's view-projection matrix, treating the
// position as a point (w=1), and passes texture coordinates through
// unchanged.
func TransformVertex(camera CameraUniform, in VertexInput) VertexOutput {
	p := in.Position
	return VertexOutput{
		ClipPosition: camera.ViewProj.Mul4x1(mgl32.Vec4{p.X(), p.Y(), p.Z(), 1.0}),
		TexCoords:    in.TexCoords,
	}
}

// ShadeFragment is the fragment stage. It samples the bound texture at the
// interpolated texture coordinates through the sampler and emits the
// sampled color unchanged. Out-of-range coordinates are resolved by the
// sampler's address mode.
func ShadeFragment(tex *Texture2D, sampler Sampler, texCoords mgl32.Vec2) mgl32.Vec4 {
	return sampler.Sample(tex, texCoords)
}
