package core

import "github.com/chewxy/math32"

// Movement defaults, tuned for a 60 Hz tick.
const (
	DefaultStepSize   float32 = 0.045
	DefaultGravity    float32 = 6
	DefaultJumpSpeed  float32 = 3
	DefaultAirDamping float32 = 0.975
	DefaultTickRate           = 60
)

// Pose is the player position in map units. Angle is in radians, 0 facing
// +x, increasing counter-clockwise on screen (y grows downward). Z is the
// eye height above the floor.
type Pose struct {
	X, Y  float32
	Angle float32
	Z     float32
}

// Cell returns the integer cell under the pose.
func (p Pose) Cell() (col, row int) {
	return int(math32.Floor(p.X)), int(math32.Floor(p.Y))
}

// Velocity holds the per-tick rates.
type Velocity struct {
	Linear   float32 // Map units per tick along the facing
	Angular  float32 // Radians per tick
	Vertical float32 // Units per second
}

// Input is the set of held controls for one tick.
type Input struct {
	Up, Down    bool
	Left, Right bool
	Jump        bool
	Map         bool
}

// Physics integrates movement and resolves collisions.
type Physics struct {
	StepSize   float32
	Gravity    float32
	JumpSpeed  float32
	AirDamping float32
	DT         float32 // Seconds per tick
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() Physics {
	return Physics{
		StepSize:   DefaultStepSize,
		Gravity:    DefaultGravity,
		JumpSpeed:  DefaultJumpSpeed,
		AirDamping: DefaultAirDamping,
		DT:         1.0 / DefaultTickRate,
	}
}

// Step advances pose and vel by one tick and returns the terrain the move
// tried to enter, before collision resolution.
//
// Walls slide along one axis when possible and revert otherwise. Doorways
// always revert. Mirages are entered.
func (p Physics) Step(tiles *TileMap, pose *Pose, vel *Velocity, in Input) Terrain {
	prevX, prevY := pose.X, pose.Y

	// Steering only works on the ground; a jump keeps its momentum.
	if pose.Z == 0 && !in.Jump {
		vel.Linear = p.StepSize*b2f(in.Up) - p.StepSize*b2f(in.Down)
		vel.Angular = p.StepSize*b2f(in.Left) - p.StepSize*b2f(in.Right)
	}

	pose.X += math32.Cos(pose.Angle) * vel.Linear
	pose.Y += -math32.Sin(pose.Angle) * vel.Linear
	pose.Angle += vel.Angular

	contact := tiles.Read(pose.X, pose.Y)
	switch contact {
	case TerrainOpen, TerrainMirage:
	case TerrainDoorway:
		pose.X, pose.Y = prevX, prevY
	default:
		switch {
		case tiles.Read(pose.X, prevY) == TerrainOpen:
			pose.Y = prevY
		case tiles.Read(prevX, pose.Y) == TerrainOpen:
			pose.X = prevX
		default:
			pose.X, pose.Y = prevX, prevY
		}
	}

	if in.Jump && pose.Z == 0 {
		vel.Vertical = p.JumpSpeed
	}
	if pose.Z > 0 {
		vel.Linear *= p.AirDamping
		vel.Angular *= p.AirDamping
	}

	pose.Z += vel.Vertical * p.DT
	vel.Vertical -= p.Gravity * p.DT
	if pose.Z <= 0 {
		pose.Z = 0
		vel.Vertical = 0
	}

	return contact
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
