package player

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FlySpeed         = 10.0
	MouseSensitivity = 0.1
)

// Player is a free-flying camera: position plus yaw/pitch look angles.
type Player struct {
	Position mgl32.Vec3

	CamYaw   float64
	CamPitch float64

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool
}

func NewPlayer(position mgl32.Vec3, yaw, pitch float64) *Player {
	return &Player{
		Position:   position,
		CamYaw:     yaw,
		CamPitch:   pitch,
		FirstMouse: true,
	}
}

func (p *Player) HandleMouseMovement(xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	p.CamYaw += xoffset * MouseSensitivity
	p.CamPitch += yoffset * MouseSensitivity

	// Constrain pitch
	if p.CamPitch > 89.0 {
		p.CamPitch = 89.0
	}
	if p.CamPitch < -89.0 {
		p.CamPitch = -89.0
	}
}

func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (p *Player) GetViewMatrix() mgl32.Mat4 {
	target := p.Position.Add(p.GetFrontVector())
	return mgl32.LookAtV(p.Position, target, mgl32.Vec3{0, 1, 0})
}

// HandleMovement applies WASD flight plus space/shift vertical motion
// for the elapsed frame time.
func (p *Player) HandleMovement(w *glfw.Window, dt float64) {
	front := p.GetFrontVector()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	step := float32(FlySpeed * dt)

	if w.GetKey(glfw.KeyW) == glfw.Press {
		p.Position = p.Position.Add(front.Mul(step))
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		p.Position = p.Position.Sub(front.Mul(step))
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		p.Position = p.Position.Sub(right.Mul(step))
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		p.Position = p.Position.Add(right.Mul(step))
	}
	if w.GetKey(glfw.KeySpace) == glfw.Press {
		p.Position = p.Position.Add(mgl32.Vec3{0, step, 0})
	}
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press {
		p.Position = p.Position.Sub(mgl32.Vec3{0, step, 0})
	}
}
