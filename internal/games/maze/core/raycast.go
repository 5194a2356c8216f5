package core

import (
	"fmt"

	"github.com/chewxy/math32"
)

const (
	// DefaultFOV is the horizontal field of view in radians.
	DefaultFOV = math32.Pi / 2.7
	// DefaultMaxSteps caps each grid-line search.
	DefaultMaxSteps = 256
	// DefaultWallHeight is the projected height of a wall at distance 1,
	// measured against ReferenceHeight rows.
	DefaultWallHeight float32 = 100
	// ReferenceHeight is the view height the wall constants are tuned for.
	ReferenceHeight = 160
	// LegacySpecialDistance is where door and mirage hits are placed when
	// legacy special terrain is on.
	LegacySpecialDistance float32 = 100
)

// Ray is the result of casting one screen column.
type Ray struct {
	AngleOffset float32 // Ray angle minus the player angle
	Distance    float32 // Euclidean distance to the hit
	Terrain     Terrain // Never TerrainOpen for a resolved ray
	Orientation Orientation
}

// CorrectedDistance is the distance projected onto the view direction.
func (r Ray) CorrectedDistance() float32 {
	return r.Distance * math32.Cos(r.AngleOffset)
}

// WallHeight returns the fisheye-corrected projected height for a wall
// constant of wallHeight.
func (r Ray) WallHeight(wallHeight float32) float32 {
	return wallHeight / r.CorrectedDistance()
}

// CasterConfig tunes a RayCaster.
type CasterConfig struct {
	FOV        float32
	MaxSteps   int
	WallHeight float32

	// RefHeight is the view height WallHeight was tuned for.
	RefHeight int

	// LegacySpecialTerrain reports doorway and mirage hits as walls at
	// LegacySpecialDistance instead of propagating the real terrain.
	LegacySpecialTerrain bool
}

// DefaultCasterConfig returns the stock camera.
func DefaultCasterConfig() CasterConfig {
	return CasterConfig{
		FOV:        DefaultFOV,
		MaxSteps:   DefaultMaxSteps,
		WallHeight: DefaultWallHeight,
		RefHeight:  ReferenceHeight,
	}
}

// RayCaster intersects rays with the grid lines of a TileMap.
// It runs two searches per ray, one over horizontal grid lines and one over
// vertical ones, and keeps the nearer hit.
type RayCaster struct {
	tiles *TileMap
	cfg   CasterConfig
}

// NewRayCaster creates a caster over tiles. Zero fields in cfg take the
// defaults.
func NewRayCaster(tiles *TileMap, cfg CasterConfig) *RayCaster {
	def := DefaultCasterConfig()
	if cfg.FOV <= 0 {
		cfg.FOV = def.FOV
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = def.MaxSteps
	}
	if cfg.WallHeight <= 0 {
		cfg.WallHeight = def.WallHeight
	}
	if cfg.RefHeight <= 0 {
		cfg.RefHeight = def.RefHeight
	}
	return &RayCaster{tiles: tiles, cfg: cfg}
}

// Config returns the effective configuration.
func (c *RayCaster) Config() CasterConfig {
	return c.cfg
}

// ColumnAngle returns the world angle of column i out of columns.
// Column 0 is the left edge of the view.
func (c *RayCaster) ColumnAngle(pose Pose, i, columns int) float32 {
	initial := pose.Angle + c.cfg.FOV*0.5
	step := c.cfg.FOV / float32(columns)
	return initial - float32(i)*step
}

// CastAll fills dst with one ray per column, len(dst) being the column
// count. It panics if a ray resolves to open terrain.
func (c *RayCaster) CastAll(pose Pose, dst []Ray) {
	for i := range dst {
		r := c.Cast(pose, c.ColumnAngle(pose, i, len(dst)))
		if r.Terrain == TerrainOpen {
			panic(fmt.Sprintf("raycast: column %d resolved to open terrain", i))
		}
		dst[i] = r
	}
}

// Cast casts a single ray at the given world angle.
func (c *RayCaster) Cast(pose Pose, angle float32) Ray {
	h := c.horizontal(pose, angle)
	v := c.vertical(pose, angle)
	// A search along a cardinal axis can come back NaN; the other one wins.
	if v.Distance < h.Distance || math32.IsNaN(h.Distance) {
		return v
	}
	return h
}

// horizontal walks the horizontal grid lines (y = integer).
func (c *RayCaster) horizontal(pose Pose, angle float32) Ray {
	// South means the ray heads toward increasing y.
	south := math32.Abs(math32.Mod(math32.Floor(angle/math32.Pi), 2)) != 0

	var firstY float32
	if south {
		firstY = math32.Ceil(pose.Y) - pose.Y
	} else {
		firstY = math32.Floor(pose.Y) - pose.Y
	}
	tan := math32.Tan(angle)
	firstX := -firstY / tan

	dy := float32(-1)
	if south {
		dy = 1
	}
	dx := -dy / tan

	nextX, nextY := firstX, firstY
	for i := 0; i < c.cfg.MaxSteps; i++ {
		cellX := nextX + pose.X
		cellY := nextY + pose.Y
		if !south {
			cellY--
		}
		if r, ok := c.resolve(c.tiles.Read(cellX, cellY), nextX, nextY); ok {
			r.AngleOffset = angle - pose.Angle
			r.Orientation = Horizontal
			return r
		}
		nextX += dx
		nextY += dy
	}
	return Ray{
		AngleOffset: angle - pose.Angle,
		Distance:    distance(nextX, nextY),
		Terrain:     TerrainWall,
		Orientation: Horizontal,
	}
}

// vertical walks the vertical grid lines (x = integer).
func (c *RayCaster) vertical(pose Pose, angle float32) Ray {
	east := math32.Abs(math32.Mod(math32.Floor((angle-math32.Pi/2)/math32.Pi), 2)) != 0

	var firstX float32
	if east {
		firstX = math32.Ceil(pose.X) - pose.X
	} else {
		firstX = math32.Floor(pose.X) - pose.X
	}
	tan := math32.Tan(angle)
	firstY := -tan * firstX

	dx := float32(-1)
	if east {
		dx = 1
	}
	dy := dx * -tan

	nextX, nextY := firstX, firstY
	for i := 0; i < c.cfg.MaxSteps; i++ {
		cellX := nextX + pose.X
		cellY := nextY + pose.Y
		if !east {
			cellX--
		}
		if r, ok := c.resolve(c.tiles.Read(cellX, cellY), nextX, nextY); ok {
			r.AngleOffset = angle - pose.Angle
			r.Orientation = Vertical
			return r
		}
		nextX += dx
		nextY += dy
	}
	return Ray{
		AngleOffset: angle - pose.Angle,
		Distance:    distance(nextX, nextY),
		Terrain:     TerrainWall,
		Orientation: Vertical,
	}
}

// resolve turns the terrain at a grid-line crossing into a hit.
// The second return is false when the search must continue.
func (c *RayCaster) resolve(t Terrain, offX, offY float32) (Ray, bool) {
	switch t {
	case TerrainOpen:
		return Ray{}, false
	case TerrainDoorway, TerrainMirage:
		if c.cfg.LegacySpecialTerrain {
			return Ray{Distance: LegacySpecialDistance, Terrain: TerrainWall}, true
		}
		return Ray{Distance: distance(offX, offY), Terrain: t}, true
	default:
		return Ray{Distance: distance(offX, offY), Terrain: TerrainWall}, true
	}
}

func distance(dx, dy float32) float32 {
	return math32.Sqrt(dx*dx + dy*dy)
}

// WallStrip is the on-screen extent of one column's wall.
type WallStrip struct {
	Top         int // First row, may be negative
	Height      int // Row count, may exceed the view
	Terrain     Terrain
	Orientation Orientation
	Distance    float32
}

// Bottom returns the row just past the strip.
func (s WallStrip) Bottom() int {
	return s.Top + s.Height
}

// Strip projects r into a view viewH rows tall. z is the eye height above
// the floor; a jump shifts the wall down by z times half the projected
// height.
func (c *RayCaster) Strip(r Ray, viewH int, z float32) WallStrip {
	scale := float32(viewH) / float32(c.cfg.RefHeight)
	h := r.WallHeight(c.cfg.WallHeight) * scale
	limit := float32(viewH) * 4
	if !(h < limit) {
		h = limit
	}
	if h < 0 {
		h = 0
	}
	height := int(h)
	mid := viewH / 2
	bob := int(math32.Floor(z * float32(mid) * h / float32(viewH)))
	return WallStrip{
		Top:         mid - height/2 + bob,
		Height:      height,
		Terrain:     r.Terrain,
		Orientation: r.Orientation,
		Distance:    r.Distance,
	}
}
