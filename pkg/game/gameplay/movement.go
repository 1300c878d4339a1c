// Package gameplay implements the command surface of the game core: the
// move/confirm/redraw/cursor/interact operations, effect resolution, and
// the reachability check. Every command runs to completion synchronously
// and reports expected rejections as messages, never as faults.
package gameplay

import (
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/board"
	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/state"
)

// Move handles a player command to move one cell in direction d. An
// occupied target resolves door unlocking, step consumption, and on-enter
// effects; an empty target starts a selection cycle instead.
func Move(g *state.Game, d world.Direction) {
	if !g.Running {
		g.SetMessagef("The game is over.")
		return
	}
	if g.Selecting() {
		g.SetMessagef("Choose a room first (confirm, redraw, or move the cursor).")
		return
	}

	dr, dc := d.Delta()
	tr, tc := g.PlayerRow+dr, g.PlayerCol+dc
	if !g.Board.InBounds(tr, tc) {
		g.SetMessagef("A wall. You can't go that way.")
		return
	}

	cell := g.Board.At(tr, tc)
	if cell.Occupied() {
		enterOccupied(g, cell, d)
		return
	}
	beginSelection(g, tr, tc, d)
}

// enterOccupied resolves movement into an already-placed room: unlock the
// door if needed, consume a step, then apply on-enter effects. A failed
// unlock attempt consumes nothing.
func enterOccupied(g *state.Game, cell *board.Cell, d world.Direction) {
	lock := cell.LockAt(d.Opposite())
	if lock > board.LockOpen {
		if !openLock(g, lock) {
			return
		}
		// The door opens on both sides at once.
		g.CurrentCell().SetLock(d, board.LockOpen)
		cell.SetLock(d.Opposite(), board.LockOpen)
	}

	// The step is spent only after the door is open.
	if !g.Inventory.Spend(inventory.Steps, 1) {
		g.SetMessagef("No steps left! You can't move.")
		return
	}

	g.PlayerRow, g.PlayerCol = cell.Row, cell.Col
	g.Visit(cell)
	applyOnEnter(g, cell)
}

// openLock attempts to defeat a locked door. The lockpick kit opens weak
// locks for free; otherwise a key is consumed for either level. It reports
// whether the door opened and sets the message either way.
func openLock(g *state.Game, lock board.Lock) bool {
	if lock == board.LockWeak && g.Inventory.Has(inventory.LockpickKit) {
		g.SetMessagef("Picked the weak lock with the ITEM{lockpick kit}.")
		return true
	}
	if g.Inventory.Spend(inventory.Keys, 1) {
		g.SetMessagef("Used a ITEM{key} to open the door.")
		return true
	}
	g.SetMessagef("The door is locked and you have no key%s.", lockHint(lock))
	return false
}

func lockHint(lock board.Lock) string {
	if lock == board.LockWeak {
		return " or lockpick kit"
	}
	return ""
}

// InteractCurrentCell operates whatever feature sits in the player's cell:
// an interactable first, then a shop offer.
func InteractCurrentCell(g *state.Game) {
	if !g.Running {
		g.SetMessagef("The game is over.")
		return
	}
	if g.Selecting() {
		g.SetMessagef("Choose a room first (confirm, redraw, or move the cursor).")
		return
	}

	cell := g.CurrentCell()
	if cell.Interactable != nil {
		g.SetMessagef("%s", cell.Interactable.Interact(g.Rng, g.Inventory))
		return
	}
	if cell.Shop != nil {
		g.SetMessagef("%s", cell.Shop.Purchase(g.Inventory))
		return
	}
	g.SetMessagef("Nothing to interact with here.")
}
