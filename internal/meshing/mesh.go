// Package meshing turns chunk block data into indexed triangle meshes in
// the vertex format the shading pipeline consumes.
package meshing

import (
	"encoding/binary"
	"math"

	"terravox/internal/graphics/shading"
)

// TerrainMesh accumulates vertices and indices for indexed triangle
// rendering. One quad contributes 4 vertices and 6 indices.
type TerrainMesh struct {
	vertices []shading.VertexInput
	indices  []uint32
}

// NewTerrainMesh returns an empty mesh.
func NewTerrainMesh() *TerrainMesh {
	return &TerrainMesh{}
}

// AddQuad appends a four-corner face as two triangles (0,1,2 and 0,2,3).
func (m *TerrainMesh) AddQuad(corners [4]shading.VertexInput) {
	base := uint32(len(m.vertices))
	m.vertices = append(m.vertices, corners[0], corners[1], corners[2], corners[3])
	m.indices = append(m.indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Vertices returns the accumulated vertex list.
func (m *TerrainMesh) Vertices() []shading.VertexInput {
	return m.vertices
}

// Indices returns the accumulated index list.
func (m *TerrainMesh) Indices() []uint32 {
	return m.indices
}

// IndexCount returns the number of indices to draw.
func (m *TerrainMesh) IndexCount() int {
	return len(m.indices)
}

// Append merges another mesh into this one, rebasing its indices.
func (m *TerrainMesh) Append(other *TerrainMesh) {
	base := uint32(len(m.vertices))
	m.vertices = append(m.vertices, other.vertices...)
	for _, idx := range other.indices {
		m.indices = append(m.indices, base+idx)
	}
}

// VertexBytes serializes the vertices into the 20-byte interleaved layout
// declared by shading.VertexBufferLayout, little-endian, for GPU upload.
func (m *TerrainMesh) VertexBytes() []byte {
	buf := make([]byte, len(m.vertices)*shading.VertexStride)
	off := 0
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, v := range m.vertices {
		put(v.Position.X())
		put(v.Position.Y())
		put(v.Position.Z())
		put(v.TexCoords.X())
		put(v.TexCoords.Y())
	}
	return buf
}

// IndexBytes serializes the indices as little-endian uint32 for GPU
// upload.
func (m *TerrainMesh) IndexBytes() []byte {
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// MergeMeshes combines per-chunk meshes into a single draw-ready mesh.
func MergeMeshes(meshes []*TerrainMesh) *TerrainMesh {
	merged := NewTerrainMesh()
	for _, m := range meshes {
		merged.Append(m)
	}
	return merged
}
