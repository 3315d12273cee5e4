package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"terravox/internal/graphics/shading"
	"terravox/internal/player"
)

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         45.0,
		NearPlane:   0.5,
		FarPlane:    100.0,
	}
}

func (c *Camera) SetAspect(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix(p *player.Player) mgl32.Mat4 {
	return p.GetViewMatrix()
}

// Uniform packs the camera state for the shading stage: the combined
// view-projection matrix plus the eye position.
func (c *Camera) Uniform(p *player.Player) shading.CameraUniform {
	return shading.CameraUniform{
		ViewPos:  p.Position,
		ViewProj: c.GetProjectionMatrix().Mul4(c.GetViewMatrix(p)),
	}
}
