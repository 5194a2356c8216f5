// Package core contains the pure maze simulation: the tile map, the
// grid raycaster, the movement model and the per-frame gameplay state.
// All quantities are float32 so results are reproducible bit for bit.
package core

// Terrain classifies a map cell.
type Terrain uint8

const (
	TerrainOpen    Terrain = iota // Walkable floor
	TerrainWall                   // Solid wall, also the fallback for anything unknown
	TerrainDoorway                // Exit: opaque, not passable, wins the game
	TerrainMirage                 // Looks like a wall, can be walked through
)

// Map file codes. Any other value reads as a wall.
const (
	CodeOpen    uint8 = 0
	CodeWall    uint8 = 1
	CodeDoorway uint8 = 2
	CodeMirage  uint8 = 4
)

// TerrainFromCode maps a map file code to its terrain.
func TerrainFromCode(code uint8) Terrain {
	switch code {
	case CodeOpen:
		return TerrainOpen
	case CodeWall:
		return TerrainWall
	case CodeDoorway:
		return TerrainDoorway
	case CodeMirage:
		return TerrainMirage
	default:
		return TerrainWall
	}
}

// Code returns the canonical map file code for t.
func (t Terrain) Code() uint8 {
	switch t {
	case TerrainOpen:
		return CodeOpen
	case TerrainDoorway:
		return CodeDoorway
	case TerrainMirage:
		return CodeMirage
	default:
		return CodeWall
	}
}

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainOpen:
		return "Open"
	case TerrainWall:
		return "Wall"
	case TerrainDoorway:
		return "Doorway"
	case TerrainMirage:
		return "Mirage"
	default:
		return "Unknown"
	}
}

// Orientation tells which grid-line family a ray hit. Renderers use it to
// shade the two wall faces differently.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}
