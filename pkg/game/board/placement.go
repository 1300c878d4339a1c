package board

import (
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/tiles"
)

// FindValidRotation returns the smallest clockwise rotation (0-3) under
// which the tile can legally occupy the empty cell at (row, col) when the
// player arrives moving in direction arrival, and whether one exists.
//
// A rotation is legal when all of the following hold:
//  1. the rotated tile has a port facing back toward the cell the player
//     came from,
//  2. no rotated port points off the board edge,
//  3. every already-occupied neighbor agrees with the tile port-for-port:
//     a port toward an occupied neighbor requires the neighbor's rotated
//     port to face back, and vice versa — one-sided ports are illegal.
//
// The tile's zone constraint must also match the cell's position class;
// zone is independent of rotation, so it is checked once up front.
func (b *Board) FindValidRotation(t *tiles.Tile, row, col int, arrival world.Direction) (int, bool) {
	cell := b.At(row, col)
	if cell == nil || cell.Occupied() {
		return 0, false
	}
	if !b.ZoneAllows(t.Zone, row, col) {
		return 0, false
	}

	for rot := 0; rot < world.DirectionCount; rot++ {
		if b.rotationFits(t, rot, row, col, arrival) {
			return rot, true
		}
	}
	return 0, false
}

// CanPlace reports whether some rotation of the tile is legal at the cell.
func (b *Board) CanPlace(t *tiles.Tile, row, col int, arrival world.Direction) bool {
	_, ok := b.FindValidRotation(t, row, col, arrival)
	return ok
}

func (b *Board) rotationFits(t *tiles.Tile, rot, row, col int, arrival world.Direction) bool {
	ports := t.Ports.Rotated(rot)

	// Reciprocity with the arrival cell.
	if !ports.Has(arrival.Opposite()) {
		return false
	}

	for _, d := range world.AllDirections() {
		dr, dc := d.Delta()
		nr, nc := row+dr, col+dc

		if !b.InBounds(nr, nc) {
			// No port may point off the board.
			if ports.Has(d) {
				return false
			}
			continue
		}

		neighbor := b.At(nr, nc)
		if !neighbor.Occupied() {
			continue
		}
		// Two-way agreement with every placed neighbor.
		if ports.Has(d) != neighbor.HasPort(d.Opposite()) {
			return false
		}
	}
	return true
}
