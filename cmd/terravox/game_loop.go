package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"terravox/internal/logger"
	"terravox/internal/profiling"
)

// GameLoop manages the main frame loop state
type GameLoop struct {
	window     *glfw.Window
	components *GameComponents
	fpsLimiter *FPSLimiter

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates a new game loop with all components
func NewGameLoop(window *glfw.Window, components *GameComponents, fpsLimit int) *GameLoop {
	return &GameLoop{
		window:           window,
		components:       components,
		fpsLimiter:       NewFPSLimiter(fpsLimit),
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run drives the frame loop until the window closes.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	glfw.PollEvents()

	c := gl.components
	c.Player.HandleMovement(gl.window, dt)

	if err := gl.renderFrame(); err != nil {
		// Surface errors are transient during resizes; reconfigure and
		// try again next frame.
		logger.Log.Warn("frame dropped", zap.Error(err))
		width, height := gl.window.GetFramebufferSize()
		if width > 0 && height > 0 {
			c.Renderer.ConfigureSurface(width, height)
		}
		return
	}

	gl.frames++
	if now.Sub(gl.lastFPSCheckTime) >= time.Second {
		logger.Log.Info("fps",
			zap.Int("frames", gl.frames),
			zap.String("frame_breakdown", profiling.TopN(3)))
		gl.frames = 0
		gl.lastFPSCheckTime = now
	}

	gl.fpsLimiter.Wait()
}

func (gl *GameLoop) renderFrame() error {
	defer profiling.Track("renderer.RenderFrame")()
	c := gl.components
	return c.Renderer.RenderFrame(c.Camera.Uniform(c.Player))
}
