package m2048

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/m2048/internal/core"
)

// MaxTileExponent is the largest exponent the tile cache covers (2^30).
const MaxTileExponent = 30

// ErrUnknownTile is returned when a grid value has no cached tile.
var ErrUnknownTile = errors.New("m2048: unknown tile value")

// Tile is the pre-built presentation of one tile value.
type Tile struct {
	Value int
	Label string     // Full number, "" for the empty tile
	Short string     // Compact form such as "2k" for 2048
	Color core.Color // Foreground color
}

// tilePalette is indexed by exponent-1 and wraps around for larger tiles.
var tilePalette = []core.Color{
	core.ColorWhite,
	core.ColorBrightWhite,
	core.ColorYellow,
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
	core.ColorBlue,
	core.ColorBrightBlue,
	core.ColorCyan,
	core.ColorBrightCyan,
	core.ColorGreen,
	core.ColorBrightGreen,
}

// tileCache is built once and never mutated.
var tileCache = BuildTileCache(MaxTileExponent)

// BuildTileCache builds the value -> Tile table for the empty tile and
// every power of two from 2^1 to 2^maxExponent.
func BuildTileCache(maxExponent int) map[int]Tile {
	cache := make(map[int]Tile, maxExponent+1)
	cache[0] = Tile{Value: 0, Color: core.ColorGray}

	for exp := 1; exp <= maxExponent; exp++ {
		value := 1 << exp
		cache[value] = Tile{
			Value: value,
			Label: strconv.Itoa(value),
			Short: shortLabel(value),
			Color: tilePalette[(exp-1)%len(tilePalette)],
		}
	}
	return cache
}

// LookupTile returns the cached tile for value.
func LookupTile(value int) (Tile, error) {
	t, ok := tileCache[value]
	if !ok {
		return Tile{}, fmt.Errorf("%w: %d", ErrUnknownTile, value)
	}
	return t, nil
}

// Text returns the label that fits in width columns, falling back to the
// short form and finally truncating it.
func (t Tile) Text(width int) string {
	switch {
	case len(t.Label) <= width:
		return t.Label
	case len(t.Short) <= width:
		return t.Short
	case width <= 0:
		return ""
	default:
		return t.Short[:width]
	}
}

func shortLabel(value int) string {
	switch {
	case value >= 1<<30:
		return strconv.Itoa(value>>30) + "G"
	case value >= 1<<20:
		return strconv.Itoa(value>>20) + "M"
	case value >= 1<<10:
		return strconv.Itoa(value>>10) + "k"
	default:
		return strconv.Itoa(value)
	}
}
