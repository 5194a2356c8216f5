package core_test

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
)

func TestCastStraightDownCorridor(t *testing.T) {
	c := core.NewRayCaster(lighthouse(t), core.DefaultCasterConfig())
	pose := core.DefaultStart

	r := c.Cast(pose, pose.Angle)

	// Open cells in column 1 from row 1 to row 6, wall at row 7.
	if r.Distance != 5.5 {
		t.Errorf("Distance = %v, expected 5.5", r.Distance)
	}
	if r.Terrain != core.TerrainWall {
		t.Errorf("Terrain = %v, expected Wall", r.Terrain)
	}
	if r.Orientation != core.Horizontal {
		t.Errorf("Orientation = %v, expected Horizontal", r.Orientation)
	}
	if r.AngleOffset != 0 {
		t.Errorf("AngleOffset = %v, expected 0", r.AngleOffset)
	}
}

func TestCastCardinalAngles(t *testing.T) {
	c := core.NewRayCaster(lighthouse(t), core.DefaultCasterConfig())
	pose := core.Pose{X: 1.5, Y: 1.5}

	tests := []struct {
		name   string
		angle  float32
		dist   float32
		orient core.Orientation
	}{
		{"east", 0, 4.5, core.Vertical},
		{"north", math32.Pi / 2, 0.5, core.Horizontal},
		{"west", math32.Pi, 0.5, core.Vertical},
		{"south", -math32.Pi / 2, 5.5, core.Horizontal},
		{"south wrapped", 3 * math32.Pi / 2, 5.5, core.Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Cast(pose, tt.angle)
			if math32.IsNaN(r.Distance) || math32.IsInf(r.Distance, 0) {
				t.Fatalf("Distance = %v, expected finite", r.Distance)
			}
			if !approx(r.Distance, tt.dist, 1e-4) {
				t.Errorf("Distance = %v, expected %v", r.Distance, tt.dist)
			}
			if r.Orientation != tt.orient {
				t.Errorf("Orientation = %v, expected %v", r.Orientation, tt.orient)
			}
			if r.Terrain != core.TerrainWall {
				t.Errorf("Terrain = %v, expected Wall", r.Terrain)
			}
		})
	}
}

func TestCastRotationConsistency(t *testing.T) {
	c := core.NewRayCaster(lighthouse(t), core.DefaultCasterConfig())
	poses := []core.Pose{
		{X: 3.3, Y: 1.4},
		{X: 1.7, Y: 4.2},
		{X: 8.6, Y: 6.3},
	}
	angles := []float32{0.3, 1.1, 2.05, 2.9, 4.0, 4.7, 5.5}

	for _, p := range poses {
		for _, a := range angles {
			r1 := c.Cast(p, a)
			r2 := c.Cast(p, a+2*math32.Pi)
			if !approx(r1.Distance, r2.Distance, 1e-3*math32.Max(1, r1.Distance)) {
				t.Errorf("pose %+v angle %v: Distance %v vs %v after +2π", p, a, r1.Distance, r2.Distance)
			}
		}
	}
}

func TestCastAllFillsEveryColumn(t *testing.T) {
	m := lighthouse(t)
	c := core.NewRayCaster(m, core.DefaultCasterConfig())

	for _, columns := range []int{1, 80, 160} {
		rays := make([]core.Ray, columns)
		c.CastAll(core.DefaultStart, rays)
		for i, r := range rays {
			if r.Terrain == core.TerrainOpen {
				t.Fatalf("columns=%d: ray %d resolved to Open", columns, i)
			}
			if !(r.Distance >= 0) {
				t.Fatalf("columns=%d: ray %d Distance = %v", columns, i, r.Distance)
			}
		}
	}
}

func TestColumnAngles(t *testing.T) {
	c := core.NewRayCaster(lighthouse(t), core.DefaultCasterConfig())
	pose := core.Pose{X: 1.5, Y: 1.5, Angle: 1}

	first := c.ColumnAngle(pose, 0, 160)
	if !approx(first, 1+core.DefaultFOV/2, 1e-6) {
		t.Errorf("column 0 angle = %v, expected %v", first, 1+core.DefaultFOV/2)
	}

	prev := first
	for i := 1; i < 160; i++ {
		a := c.ColumnAngle(pose, i, 160)
		if a >= prev {
			t.Fatalf("column %d angle %v not less than column %d angle %v", i, a, i-1, prev)
		}
		prev = a
	}
}

func TestCastDoorwayTerrain(t *testing.T) {
	m := lighthouse(t)
	pose := core.Pose{X: 18.5, Y: 6.5}

	c := core.NewRayCaster(m, core.DefaultCasterConfig())
	r := c.Cast(pose, 0)
	if r.Terrain != core.TerrainDoorway {
		t.Errorf("Terrain = %v, expected Doorway", r.Terrain)
	}
	if r.Distance != 1.5 {
		t.Errorf("Distance = %v, expected 1.5", r.Distance)
	}

	cfg := core.DefaultCasterConfig()
	cfg.LegacySpecialTerrain = true
	legacy := core.NewRayCaster(m, cfg)
	r = legacy.Cast(pose, 0)
	if r.Terrain != core.TerrainWall {
		t.Errorf("legacy Terrain = %v, expected Wall", r.Terrain)
	}
	if r.Distance != core.LegacySpecialDistance {
		t.Errorf("legacy Distance = %v, expected %v", r.Distance, core.LegacySpecialDistance)
	}
}

func TestCastMirageTerrain(t *testing.T) {
	m := mapFromRows(t, []string{
		"11111",
		"10041",
		"11111",
	})
	pose := core.Pose{X: 1.5, Y: 1.5}

	r := core.NewRayCaster(m, core.DefaultCasterConfig()).Cast(pose, 0)
	if r.Terrain != core.TerrainMirage || r.Distance != 1.5 {
		t.Errorf("Cast() = %v at %v, expected Mirage at 1.5", r.Terrain, r.Distance)
	}

	r = core.NewRayCaster(m.WithoutMirages(), core.DefaultCasterConfig()).Cast(pose, 0)
	if r.Terrain != core.TerrainWall || r.Distance != 1.5 {
		t.Errorf("classic Cast() = %v at %v, expected Wall at 1.5", r.Terrain, r.Distance)
	}
}

func TestCastStepCap(t *testing.T) {
	cfg := core.DefaultCasterConfig()
	cfg.MaxSteps = 2
	c := core.NewRayCaster(lighthouse(t), cfg)

	// Two open cells east of the start, then the cap returns the last offset.
	r := c.Cast(core.Pose{X: 1.5, Y: 1.5}, 0)
	if r.Distance != 2.5 {
		t.Errorf("Distance = %v, expected 2.5", r.Distance)
	}
	if r.Terrain != core.TerrainWall {
		t.Errorf("Terrain = %v, expected Wall", r.Terrain)
	}
}

func TestRayWallHeightFisheye(t *testing.T) {
	straight := core.Ray{Distance: 2}
	slanted := core.Ray{AngleOffset: math32.Pi / 3, Distance: 4}

	if got := straight.WallHeight(100); got != 50 {
		t.Errorf("straight WallHeight() = %v, expected 50", got)
	}
	if got := slanted.WallHeight(100); !approx(got, 50, 1e-3) {
		t.Errorf("slanted WallHeight() = %v, expected 50", got)
	}
}

func TestStrip(t *testing.T) {
	c := core.NewRayCaster(lighthouse(t), core.DefaultCasterConfig())
	r := core.Ray{Distance: 1, Terrain: core.TerrainWall, Orientation: core.Vertical}

	s := c.Strip(r, 160, 0)
	if s.Height != 100 || s.Top != 30 {
		t.Errorf("Strip() = top %d height %d, expected top 30 height 100", s.Top, s.Height)
	}
	if s.Orientation != core.Vertical || s.Terrain != core.TerrainWall {
		t.Errorf("Strip() lost ray attributes: %+v", s)
	}

	// A jump moves the wall down by z times half its height.
	s = c.Strip(r, 160, 0.5)
	if s.Top != 55 {
		t.Errorf("Strip(z=0.5).Top = %d, expected 55", s.Top)
	}

	// Scaled to a 40-row terminal view.
	s = c.Strip(r, 40, 0)
	if s.Height != 25 || s.Top != 8 {
		t.Errorf("Strip(40) = top %d height %d, expected top 8 height 25", s.Top, s.Height)
	}
}

func TestStripClampsZeroDistance(t *testing.T) {
	c := core.NewRayCaster(lighthouse(t), core.DefaultCasterConfig())

	s := c.Strip(core.Ray{Distance: 0, Terrain: core.TerrainWall}, 40, 0)
	if s.Height != 160 {
		t.Errorf("Height = %d, expected clamp to 160", s.Height)
	}
}
