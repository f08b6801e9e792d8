package m2048

import "github.com/vovakirdan/m2048/internal/games/m2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Size          int
	Grid          engine.Grid
	Score         int
	MaxTile       int
	Moves         int
	SpawnExponent int
	State         GameStateType
}

// Snapshot returns the current game snapshot. The grid is a copy.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:          g.tick,
		Size:          g.eng.Size(),
		Grid:          g.eng.Grid(),
		Score:         g.eng.Score(),
		MaxTile:       g.eng.MaxTile(),
		Moves:         g.eng.Moves(),
		SpawnExponent: g.eng.SpawnExponent(),
		State:         state,
	}
}
