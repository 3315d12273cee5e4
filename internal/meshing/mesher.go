package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"terravox/internal/world"
)

// BuildChunkMesh emits one quad per block face that touches air. Faces
// shared by two solid blocks can never be seen, so they are skipped.
// Faces on the chunk border are always emitted.
func BuildChunkMesh(c *world.Chunk) *TerrainMesh {
	mesh := NewTerrainMesh()

	originX := float32(c.X * world.ChunkSizeX)
	originZ := float32(c.Z * world.ChunkSizeZ)

	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				b := c.GetBlock(x, y, z)
				if b == world.BlockTypeAir {
					continue
				}

				center := mgl32.Vec3{
					originX + float32(x),
					float32(y),
					originZ + float32(z),
				}

				for _, face := range world.Faces {
					dx, dy, dz := face.Offset()
					if !c.IsAir(x+dx, y+dy, z+dz) {
						continue
					}
					mesh.AddQuad(FaceQuad(b, face, center))
				}
			}
		}
	}

	return mesh
}

// BuildWorldMesh meshes every chunk and merges the results into a
// single draw call's worth of geometry.
func BuildWorldMesh(chunks []*world.Chunk) *TerrainMesh {
	meshes := make([]*TerrainMesh, 0, len(chunks))
	for _, c := range chunks {
		meshes = append(meshes, BuildChunkMesh(c))
	}
	return MergeMeshes(meshes)
}
