package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"terravox/internal/graphics/shading"
	"terravox/internal/world"
)

// Terrain atlas geometry: a square atlas of square tiles.
const (
	AtlasSize = 256.0
	TileSize  = 16.0
)

// TileUV returns the four texture-coordinate corners for a block face,
// in the same corner order FaceQuad emits positions. Side faces rotate
// the corners so the tile stands upright on the block.
func TileUV(b world.BlockType, face world.Face) [4]mgl32.Vec2 {
	col, row := b.AtlasTile(face)

	uMin := float32(col) * TileSize / AtlasSize
	vMin := float32(row) * TileSize / AtlasSize
	uMax := uMin + TileSize/AtlasSize
	vMax := vMin + TileSize/AtlasSize

	uv := [4]mgl32.Vec2{
		{uMin, vMin},
		{uMax, vMin},
		{uMax, vMax},
		{uMin, vMax},
	}

	switch face {
	case world.FaceNorth, world.FaceSouth:
		uv = rotateUV(uv, 2)
	case world.FaceWest, world.FaceEast:
		uv = rotateUV(uv, 1)
	}
	return uv
}

func rotateUV(uv [4]mgl32.Vec2, n int) [4]mgl32.Vec2 {
	var out [4]mgl32.Vec2
	for i := range uv {
		out[(i+n)%4] = uv[i]
	}
	return out
}

// faceCorners holds the four corner offsets of each face of a unit cube
// centered on the origin, in quad winding order.
var faceCorners = map[world.Face][4]mgl32.Vec3{
	world.FaceTop: {
		{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	},
	world.FaceBottom: {
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
	},
	world.FaceWest: {
		{-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {-0.5, -0.5, 0.5},
	},
	world.FaceEast: {
		{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5},
	},
	world.FaceNorth: {
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	},
	world.FaceSouth: {
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	},
}

// FaceQuad builds the four vertices of one block face at the given block
// center, with atlas tex coords for the block type.
func FaceQuad(b world.BlockType, face world.Face, center mgl32.Vec3) [4]shading.VertexInput {
	corners := faceCorners[face]
	uv := TileUV(b, face)

	var quad [4]shading.VertexInput
	for i := range quad {
		quad[i] = shading.VertexInput{
			Position:  center.Add(corners[i]),
			TexCoords: uv[i],
		}
	}
	return quad
}
