// Package engine implements the 2048 grid rules: shifting and merging tiles in
// one of four directions and spawning new tiles from an exponent range that
// grows with the largest tile produced so far.
//
// The engine has no dependencies on the platform. It is not safe for
// concurrent use; every game owns its own Engine.
package engine

import (
	"errors"
	"fmt"
	"math/bits"
)

// MinSize is the smallest supported grid dimension.
const MinSize = 2

// Initial board parameters.
const (
	initialTiles    = 2
	initialExponent = 1
	initialMaxTile  = 2
)

var (
	// ErrInvalidSize is returned when the grid dimension is below MinSize.
	ErrInvalidSize = errors.New("engine: invalid grid size")
	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("engine: nil random source")
	// ErrInvalidGrid is returned by FromGrid for non-square grids or non power-of-two tiles.
	ErrInvalidGrid = errors.New("engine: invalid grid")
)

// Rand is the random source used for spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Engine owns an N×N grid and applies moves and spawns to it.
type Engine struct {
	grid        Grid
	rng         Rand
	replacement bool // Spawn positions drawn with replacement
	maxTile     int  // Largest tile ever produced, never decreases
	score       int  // Sum of merge results
	moves       int  // Effective moves played
}

// Option configures an Engine.
type Option func(*Engine)

// WithReplacementSpawns makes Spawn draw positions with replacement, so a
// single call may pick the same empty cell twice and land fewer tiles than
// requested. By default positions are distinct.
func WithReplacementSpawns() Option {
	return func(e *Engine) {
		e.replacement = true
	}
}

// New creates an engine with an empty size×size grid seeded with two tiles of value 2.
func New(size int, rng Rand, opts ...Option) (*Engine, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	e := &Engine{
		grid:    NewGrid(size),
		rng:     rng,
		maxTile: initialMaxTile,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Spawn(initialTiles, initialExponent)
	return e, nil
}

// FromGrid creates an engine around an existing grid without spawning.
// The grid is copied. maxTile starts at the larger of 2 and the grid maximum.
func FromGrid(g Grid, rng Rand, opts ...Option) (*Engine, error) {
	if g.Size() < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, g.Size(), MinSize)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if !g.Valid() {
		return nil, ErrInvalidGrid
	}

	e := &Engine{
		grid:    g.Clone(),
		rng:     rng,
		maxTile: max(initialMaxTile, g.Max()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Size returns the grid dimension.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// Grid returns a snapshot of the board. Changing it does not affect the engine.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// MaxTile returns the largest tile value ever produced.
func (e *Engine) MaxTile() int {
	return e.maxTile
}

// Score returns the sum of all merge results so far.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of effective moves played through Play.
func (e *Engine) Moves() int {
	return e.moves
}

// EmptyCount returns the number of empty cells.
func (e *Engine) EmptyCount() int {
	return len(e.grid.EmptyCells())
}

// SpawnExponent returns the exponent range used for the next spawn:
// max(1, floor(log2(maxTile)) - 1).
func (e *Engine) SpawnExponent() int {
	exp := bits.Len(uint(e.maxTile)) - 1 // floor(log2)
	return max(1, exp-1)
}

// Play performs a move and, when the board changed, spawns one tile.
// Returns whether the board changed.
func (e *Engine) Play(dir Direction) bool {
	if !e.Move(dir) {
		return false
	}
	e.moves++
	e.Spawn(1, e.SpawnExponent())
	return true
}

// Move shifts and merges all tiles toward dir without spawning.
// Returns true if any cell changed value or position.
func (e *Engine) Move(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	turns := int(dir)
	rotated := e.grid.Rotate(turns)

	changed := false
	for x := range rotated.Size() {
		if e.compactColumn(rotated, x) {
			changed = true
		}
	}

	e.grid = rotated.Rotate(-turns)
	return changed
}

// compactColumn slides column x toward row 0, merging equal neighbours once.
func (e *Engine) compactColumn(g Grid, x int) bool {
	n := g.Size()
	out := make([]int, 0, n)
	last := 0 // 0 means no merge candidate

	for y := range n {
		v := g[y][x]
		if v == 0 {
			continue
		}

		if v != last {
			out = append(out, v)
			last = v
			continue
		}

		// Merge into the tile just placed; the run restarts afterwards.
		merged := out[len(out)-1] * 2
		out[len(out)-1] = merged
		e.score += merged
		if merged > e.maxTile {
			e.maxTile = merged
		}
		last = 0
	}

	changed := false
	for y := range n {
		v := 0
		if y < len(out) {
			v = out[y]
		}
		if g[y][x] != v {
			changed = true
		}
		g[y][x] = v
	}
	return changed
}
