package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (one ray per column)
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed; the maze is deterministic and ignores it
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// SaveSignal receives one-shot status tokens from a game, such as
// "started" on reset or "escaped" on the first victory.
// Implementations must not block the frame loop for long.
type SaveSignal interface {
	Signal(gameID, token string)
}

// SaveSignalFunc adapts a plain function to SaveSignal.
type SaveSignalFunc func(gameID, token string)

// Signal calls f(gameID, token).
func (f SaveSignalFunc) Signal(gameID, token string) {
	f(gameID, token)
}
