package world

// BlockType identifies the material of one terrain block.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
)

// Face identifies one of the six faces of a block.
type Face uint8

const (
	FaceTop Face = iota
	FaceBottom
	FaceWest
	FaceEast
	FaceNorth
	FaceSouth
)

// Faces lists all six faces in a stable order.
var Faces = [6]Face{FaceTop, FaceBottom, FaceWest, FaceEast, FaceNorth, FaceSouth}

// Offset returns the unit step from a block toward the neighbor this face
// looks at.
func (f Face) Offset() (dx, dy, dz int) {
	switch f {
	case FaceTop:
		return 0, 1, 0
	case FaceBottom:
		return 0, -1, 0
	case FaceWest:
		return -1, 0, 0
	case FaceEast:
		return 1, 0, 0
	case FaceNorth:
		return 0, 0, -1
	default: // FaceSouth
		return 0, 0, 1
	}
}

// AtlasTile returns the column and row of the tile in the terrain atlas
// used for a given block face. Grass uses a dedicated top tile, the dirt
// tile underneath, and the grass-side tile on its sides.
func (b BlockType) AtlasTile(face Face) (col, row int) {
	switch b {
	case BlockTypeGrass:
		switch face {
		case FaceTop:
			return 0, 0
		case FaceBottom:
			return 2, 0
		default:
			return 3, 0
		}
	case BlockTypeStone:
		return 1, 0
	default: // dirt; air never reaches the mesher
		return 2, 0
	}
}
