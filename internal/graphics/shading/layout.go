package shading

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Binding slots. The camera lives in its own bind group so it can be
// rebound per-frame without touching the per-material texture bindings.
const (
	CameraBindGroup    = 0
	CameraBinding      = 0
	TextureBindGroup   = 1
	TextureBinding     = 0
	SamplerBinding     = 1
	PositionLocation   = 0
	TexCoordsLocation  = 1
	PositionByteOffset = 0
	TexCoordByteOffset = 12
)

// VertexStride is the byte stride of one VertexInput in a vertex buffer:
// 3 float32 position + 2 float32 tex_coords.
const VertexStride = 20

// VertexBufferLayout describes VertexInput to the render pipeline.
var VertexBufferLayout = wgpu.VertexBufferLayout{
	ArrayStride: VertexStride,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{
			Offset:         PositionByteOffset,
			ShaderLocation: PositionLocation,
			Format:         wgpu.VertexFormatFloat32x3,
		},
		{
			Offset:         TexCoordByteOffset,
			ShaderLocation: TexCoordsLocation,
			Format:         wgpu.VertexFormatFloat32x2,
		},
	},
}

// CameraBindGroupLayout declares group 0: the camera uniform buffer,
// visible to the vertex stage.
var CameraBindGroupLayout = wgpu.BindGroupLayoutDescriptor{
	Label: "Camera Bind Group Layout",
	Entries: []wgpu.BindGroupLayoutEntry{
		{
			Binding:    CameraBinding,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		},
	},
}

// TextureBindGroupLayout declares group 1: the terrain texture and its
// sampler, visible to the fragment stage.
var TextureBindGroupLayout = wgpu.BindGroupLayoutDescriptor{
	Label: "Texture Bind Group Layout",
	Entries: []wgpu.BindGroupLayoutEntry{
		{
			Binding:    TextureBinding,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
				Multisampled:  false,
			},
		},
		{
			Binding:    SamplerBinding,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	},
}
