// Package registry keeps the playable game variants.
// Variants register themselves in init() functions so the platform can list
// and create them without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/m2048/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform handles
// input mapping and terminal output.
type Game interface {
	// ID returns the variant identifier used by the CLI and the scoreboard.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input frame. The platform calls it once per key press.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and flags.
	State() core.GameState

	// Controls returns a one-line help text.
	Controls() string

	// BoardText returns the board as plain text for screenshots and the clipboard.
	BoardText() string
}

// Entry describes a registered variant.
type Entry struct {
	ID      string
	Title   string
	Summary string
	New     Factory
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a variant to the registry.
// Panics on a duplicate ID or a nil factory.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if e.New == nil {
		panic(fmt.Sprintf("registry: variant %q has no factory", e.ID))
	}
	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", e.ID))
	}
	if e.Title == "" {
		e.Title = e.New().Title()
	}

	entries[e.ID] = e
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, GameInfo{
			ID:      e.ID,
			Title:   e.Title,
			Summary: e.Summary,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return e.New(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the display title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.Title
	}
	return id
}

// RunStats describes a finished run beyond its score.
type RunStats struct {
	MaxTile  int
	Moves    int
	GridSize int
}

// RunReporter is implemented by games that report run details for the scoreboard.
type RunReporter interface {
	RunStats() RunStats
}
