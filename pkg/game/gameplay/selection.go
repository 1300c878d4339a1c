package gameplay

import (
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/deck"
	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/state"
	"bluemanor/pkg/game/tiles"
)

// maxCandidates is how many rooms a draw puts on offer.
const maxCandidates = 3

// beginSelection starts the draw cycle for the empty cell at (tr, tc). If
// no tile remaining in the deck can legally occupy the cell, the move is
// rejected and the game stays idle.
func beginSelection(g *state.Game, tr, tc int, arrival world.Direction) {
	candidates, ok := drawCandidates(g, tr, tc, arrival)
	if !ok {
		g.SetMessagef("No room left in the deck fits there.")
		return
	}
	g.Selection = &state.Selection{
		Candidates: candidates,
		TargetRow:  tr,
		TargetCol:  tc,
		Arrival:    arrival,
	}
	g.SetMessagef("Choose a room: confirm, redraw (spend a die), or move the cursor.")
}

// drawCandidates produces up to maxCandidates tiles for the target cell.
// The pool is every distinct deck tile the placement solver accepts there;
// it is narrowed to affordable tiles unless that empties it, and a
// zero-cost candidate is forced into the result whenever the pool has one.
func drawCandidates(g *state.Game, tr, tc int, arrival world.Direction) ([]*tiles.Tile, bool) {
	var legal []*tiles.Tile
	for _, t := range g.Deck.Definitions() {
		if g.Board.CanPlace(t, tr, tc, arrival) {
			legal = append(legal, t)
		}
	}
	if len(legal) == 0 {
		return nil, false
	}

	pool := legal
	gems := g.Inventory.Count(inventory.Gems)
	var affordable []*tiles.Tile
	for _, t := range legal {
		if t.Cost == 0 || t.Cost <= gems {
			affordable = append(affordable, t)
		}
	}
	if len(affordable) > 0 {
		pool = affordable
	}

	var picked []*tiles.Tile
	var zeroes []*tiles.Tile
	for _, t := range pool {
		if t.Cost == 0 {
			zeroes = append(zeroes, t)
		}
	}
	if len(zeroes) > 0 {
		picked = append(picked, zeroes[g.Rng.Intn(len(zeroes))])
	}

	rest := make([]*tiles.Tile, 0, len(pool))
	for _, t := range pool {
		if len(picked) == 0 || t != picked[0] {
			rest = append(rest, t)
		}
	}
	picked = append(picked, deck.SampleWithoutReplacement(g.Rng, rest, maxCandidates-len(picked))...)

	// Shuffle so the forced zero-cost tile isn't always the highlighted one.
	g.Rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked, true
}

// MoveSelectionCursor shifts the highlighted candidate by delta, clamped
// to the candidate list.
func MoveSelectionCursor(g *state.Game, delta int) {
	if !g.Selecting() {
		g.SetMessagef("Nothing to choose right now.")
		return
	}
	sel := g.Selection
	sel.Cursor += delta
	if sel.Cursor < 0 {
		sel.Cursor = 0
	}
	if sel.Cursor > len(sel.Candidates)-1 {
		sel.Cursor = len(sel.Candidates) - 1
	}
}

// RedrawSelection spends one die to re-run candidate generation against
// the same target cell and direction.
func RedrawSelection(g *state.Game) {
	if !g.Selecting() {
		g.SetMessagef("Nothing to redraw right now.")
		return
	}
	if !g.Inventory.Spend(inventory.Dice, 1) {
		g.SetMessagef("No dice to spend.")
		return
	}
	sel := g.Selection
	candidates, ok := drawCandidates(g, sel.TargetRow, sel.TargetCol, sel.Arrival)
	if !ok {
		// The deck has not changed since the first draw, so this cannot
		// happen; keep the old candidates if it somehow does.
		g.SetMessagef("Redrew, but no room fits there.")
		return
	}
	sel.Candidates = candidates
	sel.Cursor = 0
	g.SetMessagef("Redrew the candidates (spent a die).")
}

// ConfirmSelection commits the highlighted candidate: deduct its gem cost,
// place it with a valid rotation, establish the door locks on both sides,
// remove one deck instance, apply on-draw effects, then replay the move so
// the player walks into the new room as part of the same command.
func ConfirmSelection(g *state.Game) {
	if !g.Selecting() {
		g.SetMessagef("Nothing to confirm right now.")
		return
	}
	sel := g.Selection
	choice := sel.Highlighted()

	// Candidates were pre-filtered by the solver, so a rotation must exist;
	// resolve it before any mutation so a failure leaves state untouched.
	rot, ok := g.Board.FindValidRotation(choice, sel.TargetRow, sel.TargetCol, sel.Arrival)
	if !ok {
		g.SetMessagef("The %s no longer fits there.", choice.Name)
		return
	}

	if choice.Cost > 0 && !g.Inventory.Spend(inventory.Gems, choice.Cost) {
		g.SetMessagef("Not enough gems to choose the %s (costs %d).", choice.Name, choice.Cost)
		return
	}

	cell := g.Board.At(sel.TargetRow, sel.TargetCol)
	cell.Tile = choice
	cell.Rotation = rot

	lock := g.Board.LockLevelForRow(g.Rng, sel.TargetRow)
	g.CurrentCell().SetLock(sel.Arrival, lock)
	cell.SetLock(sel.Arrival.Opposite(), lock)

	g.Deck.RemoveOne(choice)
	g.SetMessagef("Built the ROOM{%s}.", choice.Name)
	applyOnDraw(g, choice)

	arrival := sel.Arrival
	g.Selection = nil

	// Walk into the new room: door unlocking, step consumption, and
	// on-enter effects run as the chained tail of the confirm.
	Move(g, arrival)
}
