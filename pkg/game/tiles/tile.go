// Package tiles defines the immutable room-tile catalog for Blue Manor.
// A tile describes a placeable room: which sides have door ports, what it
// costs to select, how rare it is in the deck, where on the board it may be
// placed, and the declarative effects that fire when it is drawn or entered.
// The catalog is loaded once at startup and is read-only afterwards; cells
// on the board reference catalog tiles, they never copy them.
package tiles

import (
	"math"

	"bluemanor/pkg/engine/world"
)

// Ports holds the pre-rotation door flags of a tile, indexed by
// world.Direction (North, East, South, West).
type Ports [world.DirectionCount]bool

// Has reports whether there is a port toward the given direction.
func (p Ports) Has(d world.Direction) bool {
	return p[d]
}

// Rotated returns the port flags after the given number of clockwise
// quarter-turns. A port facing North moves to East after one turn.
func (p Ports) Rotated(quarterTurns int) Ports {
	var out Ports
	for d := 0; d < world.DirectionCount; d++ {
		out[d] = p[((d-quarterTurns)%world.DirectionCount+world.DirectionCount)%world.DirectionCount]
	}
	return out
}

// Count returns the number of sides with a port.
func (p Ports) Count() int {
	n := 0
	for _, has := range p {
		if has {
			n++
		}
	}
	return n
}

// Zone restricts where on the board a tile may be placed.
type Zone int

// Zone constants
const (
	ZoneAny    Zone = iota // no restriction
	ZoneEdge               // any border row or column
	ZoneCorner             // both a border row and a border column
	ZoneCenter             // strictly interior
)

// String returns the string representation of a zone constraint
func (z Zone) String() string {
	switch z {
	case ZoneAny:
		return "any"
	case ZoneEdge:
		return "edge"
	case ZoneCorner:
		return "corner"
	case ZoneCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Tile is a single room definition owned by the catalog.
type Tile struct {
	Name    string
	ImageID string // opaque asset key for the presentation layer
	Ports   Ports
	Cost    int // gems required to select this tile
	Rarity  int // 0 (common) .. 3+ (unique)
	Zone    Zone
	Color   string // cosmetic bucket, also matched by IncreaseWeight effects
	OnEnter []Effect
	OnDraw  []Effect
}

// Weight returns the sampling weight of the tile, 3^-rarity.
func (t *Tile) Weight() float64 {
	return math.Pow(3, -float64(t.Rarity))
}

// PortAt reports whether the tile, placed with the given rotation, has a
// port toward direction d.
func (t *Tile) PortAt(d world.Direction, rotation int) bool {
	return t.Ports.Rotated(rotation).Has(d)
}

// DeckMultiplicity returns how many copies of the tile enter a fresh deck.
func (t *Tile) DeckMultiplicity() int {
	switch {
	case t.Rarity <= 0:
		return 7
	case t.Rarity == 1:
		return 5
	case t.Rarity == 2:
		return 3
	default:
		return 1
	}
}
