// Package m2048 adapts the 2048 grid engine to the platform's Game interface.
// It registers the "2048" (4×4) and "2048_large" (12×12) variants.
package m2048

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/m2048/internal/config"
	"github.com/vovakirdan/m2048/internal/core"
	"github.com/vovakirdan/m2048/internal/games/m2048/engine"
	"github.com/vovakirdan/m2048/internal/registry"
)

// Variant identifiers.
const (
	IDClassic = "2048"
	IDLarge   = "2048_large"
	IDCustom  = "2048_custom"
)

// Package-level settings applied on the next Reset.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultGameConfig()
)

// Configure replaces the settings used by games on their next Reset.
func Configure(cfg config.GameConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

func currentSettings() config.GameConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game implements the 2048 puzzle on an N×N grid.
type Game struct {
	id     string
	sizeOf func(config.GameConfig) int // Resolves the grid size on Reset

	rng  *rand.Rand
	eng  *engine.Engine
	tick uint64

	display config.DisplayConfig

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates the classic variant, sized by grid.size.
func New() *Game {
	return &Game{
		id:     IDClassic,
		sizeOf: func(c config.GameConfig) int { return c.Grid.Size },
	}
}

// NewLarge creates the large variant, sized by grid.large_size.
func NewLarge() *Game {
	return &Game{
		id:     IDLarge,
		sizeOf: func(c config.GameConfig) int { return c.Grid.LargeSize },
	}
}

// NewSized creates a game with a fixed grid size, ignoring the config sizes.
func NewSized(size int) (*Game, error) {
	if size < config.MinGridSize || size > config.MaxGridSize {
		return nil, fmt.Errorf("%w: %d (allowed %d-%d)",
			engine.ErrInvalidSize, size, config.MinGridSize, config.MaxGridSize)
	}
	return &Game{
		id:     IDCustom,
		sizeOf: func(config.GameConfig) int { return size },
	}, nil
}

func init() {
	registry.Register(registry.Entry{
		ID:      IDClassic,
		Title:   "2048",
		Summary: "Classic 4×4 board",
		New:     func() registry.Game { return New() },
	})
	registry.Register(registry.Entry{
		ID:      IDLarge,
		Title:   "2048 Large",
		Summary: "Wide 12×12 board",
		New:     func() registry.Game { return NewLarge() },
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name including the board size.
func (g *Game) Title() string {
	size := g.sizeOf(currentSettings())
	if g.eng != nil {
		size = g.eng.Size()
	}
	return fmt.Sprintf("2048 (%d×%d)", size, size)
}

// Reset initializes or restarts the game with a fresh board.
// Panics if the configured size is invalid; config.Validate rejects those.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := currentSettings()

	var opts []engine.Option
	if s.Grid.WithReplacement {
		opts = append(opts, engine.WithReplacementSpawns())
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	eng, err := engine.New(g.sizeOf(s), g.rng, opts...)
	if err != nil {
		panic(err)
	}

	g.eng = eng
	g.tick = 0
	g.display = s.Display
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.tooSmall = !g.layout(cfg.ScreenW, cfg.ScreenH).fits
}

// Step applies one input frame: at most one move is played.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform calling Reset.
	if in.Has(core.ActionRestart) {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionOf(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.eng.Play(dir)
	return core.StepResult{State: g.State(), Changed: changed}
}

// directionOf picks the first direction present in the frame.
func directionOf(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// State returns the current game state. The game never ends by itself.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.eng.Score(),
		Paused: g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying grid engine for read-only inspection.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | R: Restart | Ctrl+Y: Copy | Q: Quit"
}

// BoardText returns a header line followed by the grid.
func (g *Game) BoardText() string {
	if g.eng == nil {
		return ""
	}
	return fmt.Sprintf("%s  score %d  max tile %d  moves %d\n%s",
		g.Title(), g.eng.Score(), g.eng.MaxTile(), g.eng.Moves(), g.eng.Grid().String())
}

// RunStats reports the current run for the scoreboard.
func (g *Game) RunStats() registry.RunStats {
	if g.eng == nil {
		return registry.RunStats{}
	}
	return registry.RunStats{
		MaxTile:  g.eng.MaxTile(),
		Moves:    g.eng.Moves(),
		GridSize: g.eng.Size(),
	}
}
