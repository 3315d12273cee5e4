package renderer

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"terravox/internal/graphics/shading"
	"terravox/internal/meshing"
)

// Renderer owns the GPU device and everything needed to draw terrain:
// the render pipeline, the camera uniform buffer, the atlas texture and
// the uploaded mesh buffers.
type Renderer struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	depthView     *wgpu.TextureView

	cameraLayout  *wgpu.BindGroupLayout
	textureLayout *wgpu.BindGroupLayout
	pipeline      *wgpu.RenderPipeline

	cameraBuffer    *wgpu.Buffer
	cameraBindGroup *wgpu.BindGroup

	atlasBindGroup *wgpu.BindGroup

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
}

// NewRenderer brings up the WebGPU device for the given window and
// builds the terrain pipeline. The caller must have created the window
// with ClientAPI set to NoAPI.
func NewRenderer(window *glfw.Window, vsync bool) (*Renderer, error) {
	r := &Renderer{
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
	}
	if vsync {
		r.presentMode = wgpu.PresentModeFifo
	}

	r.surface = r.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %v", err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Terrain Device",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %v", err)
	}
	r.device = device
	r.queue = device.GetQueue()

	width, height := window.GetFramebufferSize()
	r.ConfigureSurface(width, height)

	if err := r.initCamera(); err != nil {
		return nil, err
	}
	if err := r.initPipeline(); err != nil {
		return nil, err
	}

	return r, nil
}

// ConfigureSurface (re)configures the swapchain and depth texture.
// Called at startup and whenever the window is resized.
func (r *Renderer) ConfigureSurface(width, height int) {
	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if r.depthView != nil {
		r.depthView.Release()
	}
	depthTexture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth32Float,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	r.depthView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	depthTexture.Release()
}

// UploadAtlas uploads the terrain atlas and builds the texture bind
// group that the fragment stage samples from.
func (r *Renderer) UploadAtlas(atlas *image.RGBA) error {
	width := uint32(atlas.Bounds().Dx())
	height := uint32(atlas.Bounds().Dy())

	tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     "Terrain Atlas",
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return err
	}

	r.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		atlas.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  width * 4,
			RowsPerImage: height,
		},
		&wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		return err
	}

	// Atlas tiles are pixel art, so nearest filtering keeps block
	// faces sharp.
	sampler, err := r.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Terrain Atlas Sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0.0,
		LodMaxClamp:   32.0,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return err
	}

	r.atlasBindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Terrain Atlas Bind Group",
		Layout: r.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     shading.TextureBinding,
				TextureView: view,
			},
			{
				Binding: shading.SamplerBinding,
				Sampler: sampler,
			},
		},
	})
	return err
}

// UploadMesh replaces the current terrain geometry.
func (r *Renderer) UploadMesh(mesh *meshing.TerrainMesh) error {
	if r.vertexBuffer != nil {
		r.vertexBuffer.Release()
		r.indexBuffer.Release()
	}

	vertexData := mesh.VertexBytes()
	indexData := mesh.IndexBytes()

	vb, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Terrain Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	r.queue.WriteBuffer(vb, 0, vertexData)

	ib, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Terrain Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	r.queue.WriteBuffer(ib, 0, indexData)

	r.vertexBuffer = vb
	r.indexBuffer = ib
	r.indexCount = uint32(mesh.IndexCount())
	return nil
}

// RenderFrame writes the camera uniform and draws the uploaded mesh
// into the next swapchain image.
func (r *Renderer) RenderFrame(camera shading.CameraUniform) error {
	r.queue.WriteBuffer(r.cameraBuffer, 0, camera.Marshal())

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 1.0, G: 1.0, B: 1.0, A: 1.0},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(shading.CameraBindGroup, r.cameraBindGroup, nil)
	pass.SetBindGroup(shading.TextureBindGroup, r.atlasBindGroup, nil)
	pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(r.indexCount, 1, 0, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	r.queue.Submit(commandBuffer)
	r.surface.Present()
	return nil
}

// Release frees all GPU resources owned by the renderer.
func (r *Renderer) Release() {
	if r.vertexBuffer != nil {
		r.vertexBuffer.Release()
		r.indexBuffer.Release()
	}
	if r.cameraBuffer != nil {
		r.cameraBuffer.Release()
	}
	if r.depthView != nil {
		r.depthView.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	if r.surface != nil {
		r.surface.Release()
	}
	if r.instance != nil {
		r.instance.Release()
	}
}
