package gameplay

import (
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/board"
	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/state"
)

// HasLegalMove reports whether the player can still make any move. It must
// look at both committed rooms (can a connecting door be opened with what
// the player holds?) and unmaterialized cells (does the deck still contain
// a tile that is placeable there and affordable?).
func HasLegalMove(g *state.Game) bool {
	gems := g.Inventory.Count(inventory.Gems)
	keys := g.Inventory.Count(inventory.Keys)
	hasKit := g.Inventory.Has(inventory.LockpickKit)

	for _, d := range world.AllDirections() {
		dr, dc := d.Delta()
		tr, tc := g.PlayerRow+dr, g.PlayerCol+dc
		if !g.Board.InBounds(tr, tc) {
			continue
		}
		cell := g.Board.At(tr, tc)

		if cell.Occupied() {
			lock := cell.LockAt(d.Opposite())
			switch {
			case lock <= board.LockOpen:
				return true
			case lock == board.LockWeak && (hasKit || keys > 0):
				return true
			case lock == board.LockStrong && keys > 0:
				return true
			}
			continue
		}

		for _, t := range g.Deck.Definitions() {
			if !g.Board.CanPlace(t, tr, tc, d) {
				continue
			}
			if t.Cost == 0 || t.Cost <= gems {
				return true
			}
		}
	}
	return false
}

// CheckGameOver evaluates the terminal conditions after a command: running
// out of steps, or having no legal move left while not mid-selection.
func CheckGameOver(g *state.Game) {
	if !g.Running {
		return
	}
	if g.Inventory.Count(inventory.Steps) <= 0 {
		g.Running = false
		g.SetMessagef("You ran out of steps! Game over.")
		return
	}
	if !g.Selecting() && !HasLegalMove(g) {
		g.Running = false
		g.SetMessagef("You are walled in with no legal move left. Game over.")
	}
}
