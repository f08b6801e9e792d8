package engine

import "math"

// Spawn places count new tiles on empty cells and never touches a filled one.
//
// count is clamped to the number of empty cells, so a full board is left
// unchanged. Positions are distinct unless the engine was built with
// WithReplacementSpawns, in which case two draws may hit the same cell.
// Values are 2^(i+1) for i in [0, maxExponent) with weight 2^(-1-i);
// maxExponent below 1 is treated as 1.
func (e *Engine) Spawn(count, maxExponent int) {
	empty := e.grid.EmptyCells()
	if count > len(empty) {
		count = len(empty)
	}
	if count <= 0 {
		return
	}

	maxExponent = max(maxExponent, 1)

	for _, c := range e.pickCells(empty, count) {
		e.grid[c.Y][c.X] = spawnValue(e.rng, maxExponent)
	}
}

// pickCells chooses count cells from empty. empty may be reordered.
func (e *Engine) pickCells(empty []Cell, count int) []Cell {
	picks := make([]Cell, count)

	if e.replacement {
		for i := range picks {
			picks[i] = empty[e.rng.Intn(len(empty))]
		}
		return picks
	}

	// Partial Fisher-Yates: the first count slots end up as a uniform sample.
	for i := range count {
		j := i + e.rng.Intn(len(empty)-i)
		empty[i], empty[j] = empty[j], empty[i]
		picks[i] = empty[i]
	}
	return picks
}

// spawnValue picks a power of two with geometric decay:
// 2 is twice as likely as 4, which is twice as likely as 8, and so on.
func spawnValue(rng Rand, maxExponent int) int {
	total := 0.0
	for i := range maxExponent {
		total += math.Ldexp(1, -1-i)
	}

	r := rng.Float64() * total
	for i := range maxExponent {
		r -= math.Ldexp(1, -1-i)
		if r < 0 {
			return 1 << (i + 1)
		}
	}
	return 1 << maxExponent
}
