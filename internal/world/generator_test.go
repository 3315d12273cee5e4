package world

import (
	"testing"
)

// TestGeneratorDeterministic verifies the same seed reproduces the same
// terrain.
func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(1234)
	b := NewGenerator(1234)

	for x := -50; x < 50; x += 7 {
		for z := -50; z < 50; z += 7 {
			if ha, hb := a.HeightAt(x, z), b.HeightAt(x, z); ha != hb {
				t.Fatalf("heights differ at (%d,%d): %d vs %d", x, z, ha, hb)
			}
		}
	}

	c := NewGenerator(9999)
	same := true
	for x := 0; x < 100 && same; x++ {
		if a.HeightAt(x, 0) != c.HeightAt(x, 0) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical height rows")
	}
}

// TestHeightAtWithinBand verifies computed heights respect the configured
// band and chunk ceiling.
func TestHeightAtWithinBand(t *testing.T) {
	g := NewGenerator(1234)
	for x := -200; x < 200; x += 3 {
		h := g.HeightAt(x, -x)
		if h < 0 || h > 15 {
			t.Fatalf("height %d at (%d,%d) outside default band 0..15", h, x, -x)
		}
	}

	g.SetHeightBand(0, 1000)
	for x := 0; x < 100; x++ {
		if h := g.HeightAt(x, x); h > ChunkSizeY-1 {
			t.Fatalf("height %d exceeds chunk ceiling", h)
		}
	}
}

// TestPopulateChunkLayers verifies the column structure: stone floor,
// dirt body, grass surface, air above.
func TestPopulateChunkLayers(t *testing.T) {
	g := NewGenerator(1234)
	c := NewChunk(0, 0)
	g.PopulateChunk(c)

	for x := 0; x < ChunkSizeX; x += 5 {
		for z := 0; z < ChunkSizeZ; z += 5 {
			height := g.HeightAt(x, z)

			if height == 0 {
				if got := c.GetBlock(x, 0, z); got != BlockTypeStone {
					t.Fatalf("column (%d,%d): block at y=0 is %v, want stone", x, z, got)
				}
			} else {
				if got := c.GetBlock(x, 0, z); got != BlockTypeStone {
					t.Fatalf("column (%d,%d): block at y=0 is %v, want stone", x, z, got)
				}
				if got := c.GetBlock(x, height, z); got != BlockTypeGrass {
					t.Fatalf("column (%d,%d): surface block is %v, want grass", x, z, got)
				}
				for y := 1; y < height; y++ {
					if got := c.GetBlock(x, y, z); got != BlockTypeDirt {
						t.Fatalf("column (%d,%d): block at y=%d is %v, want dirt", x, z, y, got)
					}
				}
			}
			if got := c.GetBlock(x, height+1, z); got != BlockTypeAir {
				t.Fatalf("column (%d,%d): block above surface is %v, want air", x, z, got)
			}
		}
	}
}

// TestChunkBlockAccess covers set/get round trips and out-of-bounds reads.
func TestChunkBlockAccess(t *testing.T) {
	c := NewChunk(2, -3)

	c.SetBlock(5, 6, 7, BlockTypeStone)
	if got := c.GetBlock(5, 6, 7); got != BlockTypeStone {
		t.Errorf("round trip: got %v, want stone", got)
	}

	if got := c.GetBlock(-1, 0, 0); got != BlockTypeAir {
		t.Errorf("out-of-bounds read: got %v, want air", got)
	}
	if got := c.GetBlock(0, ChunkSizeY, 0); got != BlockTypeAir {
		t.Errorf("out-of-bounds read above: got %v, want air", got)
	}

	// Out-of-bounds writes must be dropped, not panic.
	c.SetBlock(ChunkSizeX, 0, 0, BlockTypeDirt)
	c.SetBlock(0, -1, 0, BlockTypeDirt)
}

// TestGenerateChunksGrid verifies grid layout and count.
func TestGenerateChunksGrid(t *testing.T) {
	g := NewGenerator(1234)
	chunks := g.GenerateChunks(3)
	if len(chunks) != 9 {
		t.Fatalf("chunk count: got %d, want 9", len(chunks))
	}

	seen := make(map[[2]int]bool)
	for _, c := range chunks {
		seen[[2]int{c.X, c.Z}] = true
	}
	for cx := range 3 {
		for cz := range 3 {
			if !seen[[2]int{cx, cz}] {
				t.Errorf("missing chunk (%d,%d)", cx, cz)
			}
		}
	}
}
