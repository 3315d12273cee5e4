package shading

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestTransformVertexMatchesMatrixMultiply verifies the vertex stage output
// equals ViewProj * (p, 1) for random matrices and positions.
func TestTransformVertexMatchesMatrixMultiply(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))

	for i := 0; i < 200; i++ {
		var m mgl32.Mat4
		for j := range m {
			m[j] = rng.Float32()*20 - 10
		}
		p := mgl32.Vec3{rng.Float32()*100 - 50, rng.Float32()*100 - 50, rng.Float32()*100 - 50}

		cam := CameraUniform{ViewProj: m}
		out := TransformVertex(cam, VertexInput{Position: p})

		want := m.Mul4x1(mgl32.Vec4{p.X(), p.Y(), p.Z(), 1.0})
		if out.ClipPosition != want {
			t.Fatalf("clip position mismatch: got %v, want %v", out.ClipPosition, want)
		}
	}
}

// TestTransformVertexIdentityProjection checks the identity view_proj
// scenario: vertex (0.5, 0.5, 0) must land at clip (0.5, 0.5, 0, 1).
func TestTransformVertexIdentityProjection(t *testing.T) {
	cam := CameraUniform{ViewProj: mgl32.Ident4()}
	out := TransformVertex(cam, VertexInput{Position: mgl32.Vec3{0.5, 0.5, 0.0}})

	want := mgl32.Vec4{0.5, 0.5, 0.0, 1.0}
	if out.ClipPosition != want {
		t.Errorf("identity projection: got %v, want %v", out.ClipPosition, want)
	}
}

// TestTransformVertexTexCoordsPassThrough verifies tex coords cross the
// vertex stage unchanged.
func TestTransformVertexTexCoordsPassThrough(t *testing.T) {
	cam := CameraUniform{ViewProj: mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.5, 100)}
	out := TransformVertex(cam, VertexInput{
		Position:  mgl32.Vec3{1, 2, 3},
		TexCoords: mgl32.Vec2{0.25, 0.75},
	})

	if out.TexCoords != (mgl32.Vec2{0.25, 0.75}) {
		t.Errorf("tex coords changed across vertex stage: got %v", out.TexCoords)
	}
}

// TestTransformVertexDeterministic verifies repeated runs on the same
// inputs give bit-identical output (no hidden state).
func TestTransformVertexDeterministic(t *testing.T) {
	cam := CameraUniform{
		ViewPos:  mgl32.Vec3{0, 5, 10},
		ViewProj: mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.5, 100),
	}
	in := VertexInput{Position: mgl32.Vec3{3.7, -1.2, 8.9}, TexCoords: mgl32.Vec2{0.1, 0.9}}

	first := TransformVertex(cam, in)
	for i := 0; i < 50; i++ {
		if got := TransformVertex(cam, in); got != first {
			t.Fatalf("run %d differs: got %v, want %v", i, got, first)
		}
	}
}

// quadrantTexture builds a 2x2 texture with a distinct color per texel.
func quadrantTexture() *Texture2D {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	return NewTexture2D(img)
}

// TestShadeFragmentNearestCorners samples a 2x2 texture at its four
// corners under nearest filtering with clamping and expects each corner's
// exact stored color.
func TestShadeFragmentNearestCorners(t *testing.T) {
	tex := quadrantTexture()
	sampler := Sampler{
		MagFilter:    FilterNearest,
		AddressModeU: AddressClampToEdge,
		AddressModeV: AddressClampToEdge,
	}

	cases := []struct {
		uv   mgl32.Vec2
		want mgl32.Vec4
	}{
		{mgl32.Vec2{0.0, 0.0}, mgl32.Vec4{1, 0, 0, 1}},
		{mgl32.Vec2{1.0, 0.0}, mgl32.Vec4{0, 1, 0, 1}},
		{mgl32.Vec2{0.0, 1.0}, mgl32.Vec4{0, 0, 1, 1}},
		{mgl32.Vec2{1.0, 1.0}, mgl32.Vec4{1, 1, 1, 1}},
	}
	for _, c := range cases {
		got := ShadeFragment(tex, sampler, c.uv)
		if got != c.want {
			t.Errorf("sample at %v: got %v, want %v", c.uv, got, c.want)
		}
	}
}

// TestSamplerAddressModes verifies out-of-range coordinates resolve per
// the configured address mode, not by the stage.
func TestSamplerAddressModes(t *testing.T) {
	tex := quadrantTexture()

	repeat := Sampler{AddressModeU: AddressRepeat, AddressModeV: AddressRepeat}
	// u=1.25 wraps back into the left column.
	if got := repeat.Sample(tex, mgl32.Vec2{1.25, 0.25}); got != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Errorf("repeat wrap: got %v, want red", got)
	}
	if got := repeat.Sample(tex, mgl32.Vec2{-0.25, 0.25}); got != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("repeat negative wrap: got %v, want green", got)
	}

	clamp := Sampler{AddressModeU: AddressClampToEdge, AddressModeV: AddressClampToEdge}
	if got := clamp.Sample(tex, mgl32.Vec2{5.0, 0.25}); got != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("clamp: got %v, want green", got)
	}

	mirror := Sampler{AddressModeU: AddressMirrorRepeat, AddressModeV: AddressMirrorRepeat}
	// u=1.25 reflects back into the right column.
	if got := mirror.Sample(tex, mgl32.Vec2{1.25, 0.25}); got != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("mirror: got %v, want green", got)
	}
}

// TestSamplerLinearMidpoint verifies bilinear filtering at the exact
// center of a 2x2 texture averages all four texels.
func TestSamplerLinearMidpoint(t *testing.T) {
	tex := quadrantTexture()
	sampler := Sampler{
		MagFilter:    FilterLinear,
		AddressModeU: AddressClampToEdge,
		AddressModeV: AddressClampToEdge,
	}

	got := sampler.Sample(tex, mgl32.Vec2{0.5, 0.5})
	want := mgl32.Vec4{0.5, 0.5, 0.5, 1}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-3 {
			t.Fatalf("center sample: got %v, want %v", got, want)
		}
	}
}

// TestCameraUniformMarshalLayout checks the 80-byte uniform layout:
// view_pos at offset 0, 4 bytes of padding, view_proj at offset 16.
func TestCameraUniformMarshalLayout(t *testing.T) {
	u := CameraUniform{
		ViewPos: mgl32.Vec3{1, 2, 3},
	}
	for i := range u.ViewProj {
		u.ViewProj[i] = float32(i) + 0.5
	}

	buf := u.Marshal()
	if len(buf) != CameraUniformSize {
		t.Fatalf("marshaled size: got %d, want %d", len(buf), CameraUniformSize)
	}

	for i := range 3 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != u.ViewPos[i] {
			t.Errorf("view_pos[%d]: got %f, want %f", i, got, u.ViewPos[i])
		}
	}
	if pad := binary.LittleEndian.Uint32(buf[12:]); pad != 0 {
		t.Errorf("padding at offset 12 not zero: %d", pad)
	}
	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16+i*4:]))
		if got != u.ViewProj[i] {
			t.Errorf("view_proj[%d]: got %f, want %f", i, got, u.ViewProj[i])
		}
	}
}
