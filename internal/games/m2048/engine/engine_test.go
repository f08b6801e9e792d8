package engine

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

// scriptedRand replays fixed values; exhausted scripts return 0.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func mustFromGrid(t *testing.T, g Grid) *Engine {
	t.Helper()
	e, err := FromGrid(g, &scriptedRand{})
	if err != nil {
		t.Fatalf("FromGrid() failed: %v", err)
	}
	return e
}

func TestMoveRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		changed  bool
	}{
		{
			name:     "two independent merges",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			changed:  true,
		},
		{
			name:     "third tile does not merge again",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			changed:  true,
		},
		{
			name:     "tile already at boundary",
			input:    []int{2, 0, 0, 0},
			expected: []int{2, 0, 0, 0},
			changed:  false,
		},
		{
			name:     "merged tile does not chain",
			input:    []int{4, 4, 8, 0},
			expected: []int{8, 8, 0, 0},
			changed:  true,
		},
		{
			name:     "slide without merge",
			input:    []int{0, 4, 0, 2},
			expected: []int{4, 2, 0, 0},
			changed:  true,
		},
		{
			name:     "merge across gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			changed:  false,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			changed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(4)
			copy(g[0], tt.input)
			e := mustFromGrid(t, g)

			changed := e.Move(DirLeft)
			got := e.Grid()[0]

			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Fatalf("Move(left) on %v = %v, want %v", tt.input, got, tt.expected)
				}
			}
			if changed != tt.changed {
				t.Errorf("Move(left) on %v changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestMoveAllDirections(t *testing.T) {
	tests := []struct {
		dir      Direction
		input    Grid
		expected Grid
	}{
		{
			dir: DirLeft,
			input: Grid{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Grid{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			dir: DirRight,
			input: Grid{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Grid{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			dir: DirUp,
			input: Grid{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Grid{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: DirDown,
			input: Grid{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Grid{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			e := mustFromGrid(t, tt.input)
			if !e.Move(tt.dir) {
				t.Errorf("Move(%s) should report a change", tt.dir)
			}
			if got := e.Grid(); !got.Equal(tt.expected) {
				t.Errorf("Move(%s): got\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestMoveRightOrderedTowardEdge(t *testing.T) {
	// [2,2,2,0] moved right merges the two rightmost tiles first.
	g := NewGrid(4)
	copy(g[0], []int{2, 2, 2, 0})
	e := mustFromGrid(t, g)

	e.Move(DirRight)
	want := []int{0, 0, 2, 4}
	got := e.Grid()[0]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Move(right) = %v, want %v", got, want)
		}
	}
}

func TestMoveTracksScoreAndMaxTile(t *testing.T) {
	e := mustFromGrid(t, Grid{
		{16, 16, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if e.MaxTile() != 16 {
		t.Fatalf("MaxTile() = %d, want 16 before moving", e.MaxTile())
	}

	e.Move(DirLeft)

	if e.MaxTile() != 32 {
		t.Errorf("MaxTile() = %d, want 32", e.MaxTile())
	}
	if e.Score() != 32+8 {
		t.Errorf("Score() = %d, want 40", e.Score())
	}
}

func TestMaxTileNeverDecreases(t *testing.T) {
	e := mustFromGrid(t, Grid{
		{64, 64, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	e.Move(DirLeft)

	// Replace the board with small tiles; the tracker keeps the old maximum.
	e.grid = Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	e.Move(DirLeft)

	if e.MaxTile() != 128 {
		t.Errorf("MaxTile() = %d, want 128", e.MaxTile())
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	g := Grid{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	e := mustFromGrid(t, g)

	if e.Move(Direction(7)) {
		t.Error("Move with unknown direction should not change the grid")
	}
	if !e.Grid().Equal(g) {
		t.Error("Grid should be untouched by an unknown direction")
	}
}

func TestMoveIdempotentWithoutSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 50 {
		g := randomGrid(rng, 4+trial%3)
		for _, dir := range Directions() {
			e := mustFromGrid(t, g)

			// Each effective move removes at least one tile or gap, so this settles.
			for range g.Size() * g.Size() {
				if !e.Move(dir) {
					break
				}
			}

			settled := e.Grid()
			if e.Move(dir) {
				t.Fatalf("Move(%s) reported a change on a settled board\n%v", dir, settled)
			}
			if !e.Grid().Equal(settled) {
				t.Fatalf("Move(%s) altered a settled board", dir)
			}
		}
	}
}

func TestMoveWithoutMergePreservesTiles(t *testing.T) {
	// Distinct values in every row and column never merge.
	g := Grid{
		{0, 2, 0, 4},
		{8, 0, 16, 0},
		{0, 32, 0, 64},
		{128, 0, 256, 0},
	}

	for _, dir := range Directions() {
		e := mustFromGrid(t, g)
		e.Move(dir)

		before := tileValues(g)
		after := tileValues(e.Grid())
		if len(before) != len(after) {
			t.Fatalf("Move(%s) changed tile count: %v -> %v", dir, before, after)
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("Move(%s) changed tiles: %v -> %v", dir, before, after)
			}
		}
		if e.Score() != 0 {
			t.Errorf("Move(%s) scored %d without merging", dir, e.Score())
		}
	}
}

func TestLeftThenRightRoundTrip(t *testing.T) {
	rows := [][]int{
		{2, 4, 8, 16},
		{0, 2, 4, 8},
		{0, 0, 0, 2},
	}

	for _, row := range rows {
		g := NewGrid(len(row))
		copy(g[0], row)
		e := mustFromGrid(t, g)

		e.Move(DirLeft)
		e.Move(DirRight)

		got := e.Grid()[0]
		for i := range row {
			if got[i] != row[i] {
				t.Errorf("left then right on %v = %v", row, got)
				break
			}
		}
	}
}

func TestPlaySpawnsOnlyOnChange(t *testing.T) {
	e := mustFromGrid(t, Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if e.Play(DirLeft) {
		t.Fatal("Play(left) should report no change for a tile at the boundary")
	}
	if e.EmptyCount() != 15 {
		t.Errorf("EmptyCount() = %d, want 15 (no spawn)", e.EmptyCount())
	}
	if e.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", e.Moves())
	}

	if !e.Play(DirRight) {
		t.Fatal("Play(right) should report a change")
	}
	if e.EmptyCount() != 14 {
		t.Errorf("EmptyCount() = %d, want 14 (one spawn)", e.EmptyCount())
	}
	if e.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", e.Moves())
	}
}

func TestNewInitialBoard(t *testing.T) {
	for _, size := range []int{2, 4, 12} {
		e, err := New(size, rand.New(rand.NewSource(1145141919810)))
		if err != nil {
			t.Fatalf("New(%d) failed: %v", size, err)
		}

		g := e.Grid()
		if g.Size() != size {
			t.Errorf("Size() = %d, want %d", g.Size(), size)
		}

		tiles := tileValues(g)
		if len(tiles) != 2 {
			t.Errorf("New(%d) placed %d tiles, want 2", size, len(tiles))
		}
		for _, v := range tiles {
			if v != 2 {
				t.Errorf("New(%d) initial tile = %d, want 2", size, v)
			}
		}
		if e.MaxTile() != 2 {
			t.Errorf("MaxTile() = %d, want 2", e.MaxTile())
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(1, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New(1) error = %v, want ErrInvalidSize", err)
	}
	if _, err := New(4, nil); !errors.Is(err, ErrNilRand) {
		t.Errorf("New(nil rng) error = %v, want ErrNilRand", err)
	}
	if _, err := FromGrid(Grid{{3, 0}, {0, 0}}, &scriptedRand{}); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("FromGrid(3) error = %v, want ErrInvalidGrid", err)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() Grid {
		e, err := New(4, rand.New(rand.NewSource(12345)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		for i := range 200 {
			e.Play(Direction(i % 4))
		}
		return e.Grid()
	}

	a, b := play(), play()
	if !a.Equal(b) {
		t.Errorf("same seed should produce the same board:\n%v\nvs\n%v", a, b)
	}
}

func TestSpawnExponent(t *testing.T) {
	tests := []struct {
		maxTile int
		want    int
	}{
		{2, 1},
		{4, 1},
		{8, 2},
		{16, 3},
		{2048, 10},
	}

	for _, tt := range tests {
		e := &Engine{maxTile: tt.maxTile}
		if got := e.SpawnExponent(); got != tt.want {
			t.Errorf("SpawnExponent() with max %d = %d, want %d", tt.maxTile, got, tt.want)
		}
	}
}

func randomGrid(rng *rand.Rand, n int) Grid {
	g := NewGrid(n)
	for y := range n {
		for x := range n {
			if rng.Intn(3) == 0 {
				continue
			}
			g[y][x] = 1 << (1 + rng.Intn(4))
		}
	}
	return g
}

func tileValues(g Grid) []int {
	var vals []int
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				vals = append(vals, v)
			}
		}
	}
	sort.Ints(vals)
	return vals
}
