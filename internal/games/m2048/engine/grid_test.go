package engine

import "testing"

func TestRotateClockwise(t *testing.T) {
	g := Grid{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}

	want := Grid{
		{7, 4, 1},
		{8, 5, 2},
		{9, 6, 3},
	}

	if got := g.Rotate(1); !got.Equal(want) {
		t.Errorf("Rotate(1): got\n%v\nwant\n%v", got, want)
	}

	// Receiver is untouched.
	if g[0][0] != 1 {
		t.Error("Rotate should not modify the receiver")
	}
}

func TestRotateInverse(t *testing.T) {
	g := Grid{
		{2, 0, 4, 8},
		{0, 16, 0, 0},
		{32, 0, 0, 2},
		{0, 0, 64, 0},
	}

	for turns := range 4 {
		if got := g.Rotate(turns).Rotate(-turns); !got.Equal(g) {
			t.Errorf("Rotate(%d) then Rotate(%d) is not identity:\n%v", turns, -turns, got)
		}
		if got := g.Rotate(turns).Rotate(4 - turns); !got.Equal(g) {
			t.Errorf("Rotate(%d) then Rotate(%d) is not identity", turns, 4-turns)
		}
	}

	if got := g.Rotate(4); !got.Equal(g) {
		t.Error("Rotate(4) should be identity")
	}
}

func TestGridValid(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want bool
	}{
		{"empty", NewGrid(3), true},
		{"powers of two", Grid{{2, 4}, {1024, 0}}, true},
		{"one is not a tile", Grid{{1, 0}, {0, 0}}, false},
		{"not a power", Grid{{6, 0}, {0, 0}}, false},
		{"negative", Grid{{-2, 0}, {0, 0}}, false},
		{"ragged", Grid{{2, 0}, {0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	g := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{X: 1, Y: 0}) {
		t.Errorf("first empty cell = %+v, want {1 0}", cells[0])
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Grid{{2, 0}, {0, 4}}
	c := g.Clone()
	c[0][0] = 8

	if g[0][0] != 2 {
		t.Error("Clone should not share rows with the original")
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions() {
		got, err := ParseDirection(dir.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", dir.String(), err)
		}
		if got != dir {
			t.Errorf("ParseDirection(%q) = %v, want %v", dir.String(), got, dir)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestGridString(t *testing.T) {
	g := Grid{{2, 0}, {16, 4}}
	want := " 2  .\n16  4"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
