package world

// Chunk dimensions in blocks.
const (
	ChunkSizeX = 32
	ChunkSizeY = 32
	ChunkSizeZ = 32

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Chunk is a 32x32x32 volume of blocks. X and Z are chunk-grid
// coordinates; block (0,0,0) of the chunk sits at world position
// (X*ChunkSizeX, 0, Z*ChunkSizeZ).
type Chunk struct {
	X, Z   int
	blocks []BlockType
}

// NewChunk creates an all-air chunk at the given chunk coordinates.
func NewChunk(x, z int) *Chunk {
	return &Chunk{
		X:      x,
		Z:      z,
		blocks: make([]BlockType, ChunkVolume),
	}
}

func blockIndex(x, y, z int) int {
	return (x*ChunkSizeY+y)*ChunkSizeZ + z
}

// GetBlock returns the block at local coordinates. Out-of-bounds
// coordinates read as air, which makes chunk-boundary faces visible.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock sets the block at local coordinates. Out-of-bounds writes are
// ignored.
func (c *Chunk) SetBlock(x, y, z int, b BlockType) {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return
	}
	c.blocks[blockIndex(x, y, z)] = b
}

// IsAir reports whether the block at local coordinates is air.
// Out-of-bounds counts as air.
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}
