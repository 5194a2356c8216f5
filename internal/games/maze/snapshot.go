package maze

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Level    string
	Variant  string
	X        float32
	Y        float32
	Angle    float32
	Z        float32
	View     string
	Won      bool
	Score    int
	GameOver bool
	Paused   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Level:    g.level.ID,
		Variant:  g.variant.String(),
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.state == nil {
		return snap
	}

	pose := g.state.Pose()
	snap.X = pose.X
	snap.Y = pose.Y
	snap.Angle = pose.Angle
	snap.Z = pose.Z
	snap.View = g.state.View().String()
	snap.Won = g.state.Won()
	return snap
}
