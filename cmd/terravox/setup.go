package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"terravox/internal/config"
	"terravox/internal/graphics"
	"terravox/internal/graphics/renderer"
	"terravox/internal/logger"
	"terravox/internal/meshing"
	"terravox/internal/player"
	"terravox/internal/world"
)

func setupWindow(cfg *config.Config) (*glfw.Window, error) {
	// WebGPU brings its own graphics API; no OpenGL context needed.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(cfg.Graphics.Width, cfg.Graphics.Height, "terravox", nil, nil)
	if err != nil {
		return nil, err
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// GameComponents holds all the initialized game components
type GameComponents struct {
	Renderer *renderer.Renderer
	Camera   *graphics.Camera
	Player   *player.Player
}

func setupGame(window *glfw.Window, cfg *config.Config) (*GameComponents, error) {
	r, err := renderer.NewRenderer(window, cfg.Graphics.VSync)
	if err != nil {
		return nil, err
	}

	atlas, err := graphics.LoadAtlasOrFallback(cfg.Atlas.Path)
	if err != nil {
		logger.Log.Warn("atlas load failed, using built-in fallback",
			zap.String("path", cfg.Atlas.Path), zap.Error(err))
	}
	if err := r.UploadAtlas(atlas); err != nil {
		return nil, err
	}

	gen := world.NewGenerator(cfg.World.Seed)
	gen.SetScale(cfg.World.NoiseScale)
	gen.SetHeightBand(cfg.World.HeightMin, cfg.World.HeightMax)
	chunks := gen.GenerateChunks(cfg.World.ChunkGrid)

	mesh := meshing.BuildWorldMesh(chunks)
	if err := r.UploadMesh(mesh); err != nil {
		return nil, err
	}
	logger.Log.Info("terrain generated",
		zap.Int("chunks", len(chunks)),
		zap.Int("vertices", len(mesh.Vertices())),
		zap.Int("indices", mesh.IndexCount()))

	width, height := window.GetFramebufferSize()
	camera := graphics.NewCamera(width, height)
	p := player.NewPlayer(mgl32.Vec3{0, 5, 10}, -90.0, -20.0)

	components := &GameComponents{
		Renderer: r,
		Camera:   camera,
		Player:   p,
	}

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		p.HandleMouseMovement(xpos, ypos)
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, w2, h2 int) {
		if w2 == 0 || h2 == 0 {
			return
		}
		r.ConfigureSurface(w2, h2)
		camera.SetAspect(w2, h2)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return components, nil
}
