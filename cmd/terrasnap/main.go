// terrasnap renders one frame of generated terrain on the CPU and
// writes it to a PNG. It needs no GPU or window system, which makes it
// useful for quick checks of the terrain generator and the shading
// math.
package main

import (
	"flag"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"terravox/internal/graphics"
	"terravox/internal/graphics/shading"
	"terravox/internal/graphics/softpipe"
	"terravox/internal/logger"
	"terravox/internal/meshing"
	"terravox/internal/player"
	"terravox/internal/world"
)

func main() {
	out := flag.String("o", "terrain.png", "output PNG path")
	width := flag.Int("width", 1280, "image width")
	height := flag.Int("height", 720, "image height")
	seed := flag.Int64("seed", 1234, "terrain seed")
	grid := flag.Int("chunks", 2, "chunks per side")
	atlasPath := flag.String("atlas", "", "atlas PNG (empty for built-in)")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := logger.Init(*level, "", true); err != nil {
		panic(err)
	}
	defer logger.Sync()

	gen := world.NewGenerator(*seed)
	chunks := gen.GenerateChunks(*grid)
	mesh := meshing.BuildWorldMesh(chunks)
	logger.Log.Info("terrain meshed",
		zap.Int("chunks", len(chunks)),
		zap.Int("vertices", len(mesh.Vertices())))

	atlasImg, err := graphics.LoadAtlasOrFallback(*atlasPath)
	if err != nil {
		logger.Log.Warn("atlas load failed, using built-in fallback", zap.Error(err))
	}

	camera := graphics.NewCamera(*width, *height)
	p := player.NewPlayer(mgl32.Vec3{0, 5, 10}, -90.0, -20.0)

	fb := softpipe.NewFramebuffer(*width, *height)
	pass := softpipe.RenderPass{
		Camera:  camera.Uniform(p),
		Texture: shading.NewTexture2D(atlasImg),
		Sampler: shading.NearestSampler(),
	}
	fb.Draw(pass, mesh.Vertices(), mesh.Indices())

	f, err := os.Create(*out)
	if err != nil {
		logger.Log.Fatal("failed to create output file", zap.Error(err))
	}
	defer f.Close()

	if err := png.Encode(f, fb.Color); err != nil {
		logger.Log.Fatal("failed to encode PNG", zap.Error(err))
	}
	logger.Log.Info("wrote snapshot", zap.String("path", *out))
}
