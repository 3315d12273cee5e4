package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"

	"terravox/internal/graphics/shading"
)

// initCamera creates the camera uniform buffer and its bind group.
func (r *Renderer) initCamera() error {
	layout, err := r.device.CreateBindGroupLayout(&shading.CameraBindGroupLayout)
	if err != nil {
		return err
	}
	r.cameraLayout = layout

	r.cameraBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  shading.CameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	r.cameraBindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: r.cameraLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: shading.CameraBinding,
				Buffer:  r.cameraBuffer,
				Offset:  0,
				Size:    shading.CameraUniformSize,
			},
		},
	})
	return err
}

// initPipeline compiles the terrain shader and builds the render
// pipeline: triangle list, no culling, depth test Less against a
// Depth32Float attachment.
func (r *Renderer) initPipeline() error {
	shader, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Terrain Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shading.ShaderSource,
		},
	})
	if err != nil {
		return err
	}
	defer shader.Release()

	r.textureLayout, err = r.device.CreateBindGroupLayout(&shading.TextureBindGroupLayout)
	if err != nil {
		return err
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "Terrain Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{
			r.cameraLayout,
			r.textureLayout,
		},
	})
	if err != nil {
		return err
	}
	defer pipelineLayout.Release()

	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Terrain Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: shading.VertexEntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{shading.VertexBufferLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: shading.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	return err
}
