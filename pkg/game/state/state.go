// Package state holds the single mutable game state for Blue Manor. The
// core owns it; the presentation layer only reads it between commands.
package state

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/board"
	"bluemanor/pkg/game/deck"
	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/tiles"
)

// Selection is the pending draw while the player chooses a room: the
// candidate tiles, the cell being materialized, the direction the player
// was moving, and the highlighted index.
type Selection struct {
	Candidates []*tiles.Tile
	Cursor     int
	TargetRow  int
	TargetCol  int
	Arrival    world.Direction
}

// Highlighted returns the candidate under the cursor.
func (s *Selection) Highlighted() *tiles.Tile {
	return s.Candidates[s.Cursor]
}

// Game is the complete game state. All randomness flows through Rng, which
// is injected at construction so runs are reproducible under a fixed seed.
type Game struct {
	Catalog   *tiles.Catalog
	Board     *board.Board
	Deck      *deck.Deck
	Inventory *inventory.Inventory

	PlayerRow int
	PlayerCol int

	// Selection is non-nil exactly while the draw/confirm/redraw cycle is
	// in progress.
	Selection *Selection

	Running bool
	Won     bool

	// Message is the last-action message, presentation-facing only.
	Message string

	Rng *rand.Rand

	visited mapset.Set[*board.Cell]
}

// New creates a fresh game: board with the start tile committed, shuffled
// deck, starting inventory, player on the start cell.
func New(catalog *tiles.Catalog, rows, cols int, rng *rand.Rand) *Game {
	b := board.New(rows, cols, catalog.Start())
	g := &Game{
		Catalog:   catalog,
		Board:     b,
		Deck:      deck.New(catalog, rng),
		Inventory: inventory.New(),
		PlayerRow: b.StartRow,
		PlayerCol: b.StartCol,
		Running:   true,
		Rng:       rng,
		visited:   mapset.New[*board.Cell](),
	}
	g.Visit(b.StartCell())
	return g
}

// CurrentCell returns the cell the player stands on.
func (g *Game) CurrentCell() *board.Cell {
	return g.Board.At(g.PlayerRow, g.PlayerCol)
}

// Selecting reports whether a draw is awaiting confirm/redraw.
func (g *Game) Selecting() bool {
	return g.Selection != nil
}

// SetMessagef replaces the last-action message.
func (g *Game) SetMessagef(format string, a ...any) {
	g.Message = fmt.Sprintf(format, a...)
}

// AppendMessagef appends to the last-action message, for effects that pile
// onto the outcome of a move.
func (g *Game) AppendMessagef(format string, a ...any) {
	if g.Message != "" {
		g.Message += " "
	}
	g.Message += fmt.Sprintf(format, a...)
}

// Visit marks a cell as visited by the player.
func (g *Game) Visit(c *board.Cell) {
	g.visited.Put(c)
}

// HasVisited reports whether the player has stood on the cell.
func (g *Game) HasVisited(c *board.Cell) bool {
	return g.visited.Has(c)
}

// VisitedCount returns the number of distinct cells entered so far.
func (g *Game) VisitedCount() int {
	return g.visited.Size()
}
