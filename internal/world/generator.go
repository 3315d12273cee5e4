package world

import (
	"math"
)

// Generator fills chunks from a seeded noise heightmap.
type Generator struct {
	seed        int64
	scale       float64
	heightMin   float64
	heightMax   float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewGenerator creates a generator with the default terrain band: heights
// 0..15 at noise scale 50.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		scale:       50.0,
		heightMin:   0.0,
		heightMax:   15.0,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// SetHeightBand overrides the surface height range in blocks.
func (g *Generator) SetHeightBand(min, max float64) {
	g.heightMin = min
	g.heightMax = max
}

// SetScale overrides the noise scale; larger values give gentler terrain.
func (g *Generator) SetScale(scale float64) {
	if scale > 0 {
		g.scale = scale
	}
}

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	n := octaveNoise2D(
		float64(worldX)/g.scale,
		float64(worldZ)/g.scale,
		g.seed, g.octaves, g.persistence, g.lacunarity,
	)
	h := g.heightMin + n*(g.heightMax-g.heightMin)
	if h < 0 {
		h = 0
	}
	if h > ChunkSizeY-1 {
		h = ChunkSizeY - 1
	}
	return int(math.Floor(h))
}

// PopulateChunk fills a chunk from the heightmap: stone at y=0, dirt up
// to the surface, grass at the surface, air above.
func (g *Generator) PopulateChunk(c *Chunk) {
	for x := range ChunkSizeX {
		for z := range ChunkSizeZ {
			height := g.HeightAt(c.X*ChunkSizeX+x, c.Z*ChunkSizeZ+z)
			for y := 0; y <= height; y++ {
				switch {
				case y == 0:
					c.SetBlock(x, y, z, BlockTypeStone)
				case y == height:
					c.SetBlock(x, y, z, BlockTypeGrass)
				default:
					c.SetBlock(x, y, z, BlockTypeDirt)
				}
			}
		}
	}
}

// GenerateChunks builds and populates an n-by-n grid of chunks.
func (g *Generator) GenerateChunks(n int) []*Chunk {
	chunks := make([]*Chunk, 0, n*n)
	for cx := range n {
		for cz := range n {
			c := NewChunk(cx, cz)
			g.PopulateChunk(c)
			chunks = append(chunks, c)
		}
	}
	return chunks
}
