package core

import "github.com/chewxy/math32"

// ViewMode selects what the frame shows.
type ViewMode uint8

const (
	ViewFirstPerson ViewMode = iota
	ViewMapOverlay           // Classic only
	ViewVictory              // Full only
	ViewFooled               // Full only
)

// String returns the view name.
func (v ViewMode) String() string {
	switch v {
	case ViewFirstPerson:
		return "FirstPerson"
	case ViewMapOverlay:
		return "MapOverlay"
	case ViewVictory:
		return "Victory"
	case ViewFooled:
		return "Fooled"
	default:
		return "Unknown"
	}
}

// Variant selects the rule set.
type Variant uint8

const (
	// VariantFull has mirages, a victory screen and a fooled screen.
	VariantFull Variant = iota
	// VariantClassic has a map toggle; doorways only block and mirages are walls.
	VariantClassic
)

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantClassic {
		return "classic"
	}
	return "full"
}

// DefaultStart is the stock spawn pose, facing +y.
var DefaultStart = Pose{X: 1.5, Y: 1.5, Angle: -math32.Pi / 2}

// Options configures a State.
type Options struct {
	Variant Variant
	Physics Physics
	Caster  CasterConfig
	Start   Pose
	Columns int // One ray per column
}

// Outcome reports what happened during one Update.
type Outcome struct {
	Contact Terrain // Terrain the move tried to enter
	Escaped bool    // True only on the first tick a doorway is reached
	Toggled bool    // The map overlay was toggled
}

const toggleMask uint8 = 1

// State is the whole gameplay aggregate: pose, velocity, view and the
// per-column rays. It is owned by a single host loop.
type State struct {
	tiles   *TileMap
	caster  *RayCaster
	physics Physics
	variant Variant
	start   Pose

	pose Pose
	vel  Velocity
	view ViewMode
	won  bool
	prev uint8
	tick uint64

	rays []Ray
}

// NewState creates a state over tiles. The classic variant reads mirages
// as walls. Rays are cast once so they are valid before the first Update.
func NewState(tiles *TileMap, opts Options) *State {
	if opts.Variant == VariantClassic {
		tiles = tiles.WithoutMirages()
	}
	if opts.Physics == (Physics{}) {
		opts.Physics = DefaultPhysics()
	}
	if opts.Columns <= 0 {
		opts.Columns = 1
	}
	s := &State{
		tiles:   tiles,
		caster:  NewRayCaster(tiles, opts.Caster),
		physics: opts.Physics,
		variant: opts.Variant,
		start:   opts.Start,
		pose:    opts.Start,
		view:    ViewFirstPerson,
		rays:    make([]Ray, opts.Columns),
	}
	s.caster.CastAll(s.pose, s.rays)
	return s
}

// Update advances one tick.
func (s *State) Update(in Input) Outcome {
	var out Outcome

	var cur uint8
	if in.Map {
		cur |= toggleMask
	}
	pressed := cur & (cur ^ s.prev)
	s.prev = cur
	if s.variant == VariantClassic && pressed&toggleMask != 0 {
		if s.view == ViewMapOverlay {
			s.view = ViewFirstPerson
		} else {
			s.view = ViewMapOverlay
		}
		out.Toggled = true
	}

	out.Contact = s.physics.Step(s.tiles, &s.pose, &s.vel, in)

	if s.variant == VariantFull {
		switch out.Contact {
		case TerrainOpen:
			if !s.won {
				s.view = ViewFirstPerson
			}
		case TerrainDoorway:
			s.view = ViewVictory
			if !s.won {
				s.won = true
				out.Escaped = true
			}
		case TerrainMirage:
			if !s.won {
				s.view = ViewFooled
			}
		}
	}

	s.caster.CastAll(s.pose, s.rays)
	s.tick++
	return out
}

// Rays returns the rays from the last tick. The slice is reused; callers
// must not keep or modify it.
func (s *State) Rays() []Ray {
	return s.rays
}

// Strips appends the wall strips for a view viewH rows tall to dst.
func (s *State) Strips(viewH int, dst []WallStrip) []WallStrip {
	dst = dst[:0]
	for _, r := range s.rays {
		dst = append(dst, s.caster.Strip(r, viewH, s.pose.Z))
	}
	return dst
}

// SetColumns resizes the ray buffer and recasts.
func (s *State) SetColumns(n int) {
	if n <= 0 {
		n = 1
	}
	if n == len(s.rays) {
		return
	}
	s.rays = make([]Ray, n)
	s.caster.CastAll(s.pose, s.rays)
}

// Columns returns the number of rays per frame.
func (s *State) Columns() int {
	return len(s.rays)
}

// Overhead describes what the overhead map draws.
type Overhead struct {
	Tiles *TileMap
	Pose  Pose

	// FacingX, FacingY mark a point one unit off the player, used for the
	// facing dot.
	FacingX, FacingY float32
}

// Overhead returns the data for the overhead map.
func (s *State) Overhead() Overhead {
	a := s.pose.Angle + math32.Pi/2
	return Overhead{
		Tiles:   s.tiles,
		Pose:    s.pose,
		FacingX: s.pose.X + math32.Sin(a),
		FacingY: s.pose.Y + math32.Cos(a),
	}
}

// Pose returns the current pose.
func (s *State) Pose() Pose { return s.pose }
func (s *State) Velocity() Velocity { return s.vel }
func (s *State) View() ViewMode { return s.view }
func (s *State) Won() bool { return s.won }
func (s *State) Variant() Variant { return s.variant }
func (s *State) Tiles() *TileMap { return s.tiles }
func (s *State) Caster() *RayCaster { return s.caster }
func (s *State) Tick() uint64 { return s.tick }
func (s *State) Physics() Physics { return s.physics }

// Restore replaces pose, velocity, view and latch. Used by restarts and
// snapshots.
func (s *State) Restore(pose Pose, vel Velocity, view ViewMode, won bool) {
	s.pose = pose
	s.vel = vel
	s.view = view
	s.won = won
	s.caster.CastAll(s.pose, s.rays)
}

// Reset returns to the start pose and clears the latch.
func (s *State) Reset() {
	s.Restore(s.start, Velocity{}, ViewFirstPerson, false)
	s.prev = 0
	s.tick = 0
}
