// Package deck manages the shrinking pool of undrawn room tiles and the
// rarity-weighted sampling used to draw placement candidates from it.
package deck

import (
	"math/rand"

	"github.com/google/uuid"

	"bluemanor/pkg/game/tiles"
)

// Instance is one drawable copy of a catalog tile. Copies of the same
// definition are value-equal, so each carries its own handle to keep
// removal unambiguous.
type Instance struct {
	ID   uuid.UUID
	Tile *tiles.Tile
}

// Deck is the mutable multiset of undrawn tile instances. It shrinks by
// exactly one instance per committed placement and grows only through
// IncreaseWeight effects.
type Deck struct {
	instances []Instance
}

// New builds a deck from the catalog with per-rarity multiplicity
// (rarity 0 gets 7 copies, 1 gets 5, 2 gets 3, rarer tiles 1) and shuffles
// it with the game's RNG.
func New(c *tiles.Catalog, rng *rand.Rand) *Deck {
	d := &Deck{}
	for _, t := range c.Tiles() {
		for i := 0; i < t.DeckMultiplicity(); i++ {
			d.instances = append(d.instances, Instance{ID: uuid.New(), Tile: t})
		}
	}
	rng.Shuffle(len(d.instances), func(i, j int) {
		d.instances[i], d.instances[j] = d.instances[j], d.instances[i]
	})
	return d
}

// Len returns the number of undrawn instances.
func (d *Deck) Len() int {
	return len(d.instances)
}

// CountOf returns how many instances of the given definition remain.
func (d *Deck) CountOf(t *tiles.Tile) int {
	n := 0
	for _, in := range d.instances {
		if in.Tile == t {
			n++
		}
	}
	return n
}

// Definitions returns the distinct tile definitions still present in the
// deck, in order of first appearance. This is the candidate pool handed to
// the sampler; the deck itself keeps per-instance bookkeeping.
func (d *Deck) Definitions() []*tiles.Tile {
	seen := make(map[*tiles.Tile]bool, len(d.instances))
	var out []*tiles.Tile
	for _, in := range d.instances {
		if seen[in.Tile] {
			continue
		}
		seen[in.Tile] = true
		out = append(out, in.Tile)
	}
	return out
}

// RemoveOne removes exactly one instance of the given definition and
// returns its handle. It reports false if no instance remains.
func (d *Deck) RemoveOne(t *tiles.Tile) (uuid.UUID, bool) {
	for i, in := range d.instances {
		if in.Tile == t {
			d.instances = append(d.instances[:i], d.instances[i+1:]...)
			return in.ID, true
		}
	}
	return uuid.UUID{}, false
}

// Inject appends fresh instances of a definition, biasing future draws.
func (d *Deck) Inject(t *tiles.Tile, copies int) {
	for i := 0; i < copies; i++ {
		d.instances = append(d.instances, Instance{ID: uuid.New(), Tile: t})
	}
}
