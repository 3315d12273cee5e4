package shading

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// TestVertexInputMatchesDeclaredStride guards the vertex buffer contract:
// the Go struct, the stride constant, and the attribute offsets must agree.
func TestVertexInputMatchesDeclaredStride(t *testing.T) {
	if size := unsafe.Sizeof(VertexInput{}); size != VertexStride {
		t.Errorf("VertexInput size %d does not match stride %d", size, VertexStride)
	}
	if VertexBufferLayout.ArrayStride != VertexStride {
		t.Errorf("layout stride %d, want %d", VertexBufferLayout.ArrayStride, VertexStride)
	}

	attrs := VertexBufferLayout.Attributes
	if len(attrs) != 2 {
		t.Fatalf("attribute count: got %d, want 2", len(attrs))
	}
	if attrs[0].ShaderLocation != PositionLocation || attrs[0].Offset != PositionByteOffset ||
		attrs[0].Format != wgpu.VertexFormatFloat32x3 {
		t.Errorf("position attribute wrong: %+v", attrs[0])
	}
	if attrs[1].ShaderLocation != TexCoordsLocation || attrs[1].Offset != TexCoordByteOffset ||
		attrs[1].Format != wgpu.VertexFormatFloat32x2 {
		t.Errorf("tex coord attribute wrong: %+v", attrs[1])
	}
}

// TestBindGroupLayouts checks the two-group binding contract: camera alone
// in group 0, texture and sampler together in group 1.
func TestBindGroupLayouts(t *testing.T) {
	cam := CameraBindGroupLayout.Entries
	if len(cam) != 1 {
		t.Fatalf("camera group entries: got %d, want 1", len(cam))
	}
	if cam[0].Binding != CameraBinding || cam[0].Visibility != wgpu.ShaderStageVertex ||
		cam[0].Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("camera entry wrong: %+v", cam[0])
	}

	tex := TextureBindGroupLayout.Entries
	if len(tex) != 2 {
		t.Fatalf("texture group entries: got %d, want 2", len(tex))
	}
	if tex[0].Binding != TextureBinding || tex[0].Visibility != wgpu.ShaderStageFragment ||
		tex[0].Texture.SampleType != wgpu.TextureSampleTypeFloat ||
		tex[0].Texture.ViewDimension != wgpu.TextureViewDimension2D {
		t.Errorf("texture entry wrong: %+v", tex[0])
	}
	if tex[1].Binding != SamplerBinding || tex[1].Visibility != wgpu.ShaderStageFragment ||
		tex[1].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Errorf("sampler entry wrong: %+v", tex[1])
	}

	if CameraBindGroup == TextureBindGroup {
		t.Error("camera and texture must live in distinct bind groups")
	}
}

// TestShaderSourceEntryPoints makes sure the embedded WGSL declares the
// entry points the pipeline references by name.
func TestShaderSourceEntryPoints(t *testing.T) {
	for _, entry := range []string{VertexEntryPoint, FragmentEntryPoint} {
		if !strings.Contains(ShaderSource, "fn "+entry) {
			t.Errorf("shader source missing entry point %q", entry)
		}
	}
}
