package board

import (
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/tiles"
)

// Default board dimensions, matching the manor's floor plan.
const (
	DefaultRows = 9
	DefaultCols = 5
)

// Board is the fixed R×C grid of cells. Exactly one cell holds the start
// tile from game initialization; every other cell begins empty.
type Board struct {
	Rows int
	Cols int

	// Start cell position: bottom row, middle column.
	StartRow int
	StartCol int

	cells [][]Cell
}

// New creates a board with the start tile committed at the bottom-middle
// cell, rotation 0.
func New(rows, cols int, start *tiles.Tile) *Board {
	b := &Board{
		Rows:     rows,
		Cols:     cols,
		StartRow: rows - 1,
		StartCol: cols / 2,
	}
	b.cells = make([][]Cell, rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, cols)
		for c := range b.cells[r] {
			b.cells[r][c].Row = r
			b.cells[r][c].Col = c
			for d := range b.cells[r][c].locks {
				b.cells[r][c].locks[d] = LockAbsent
			}
		}
	}
	b.cells[b.StartRow][b.StartCol].Tile = start
	return b
}

// InBounds reports whether the position is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// At returns the cell at the position, or nil if out of bounds.
func (b *Board) At(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.cells[row][col]
}

// Neighbor returns the cell adjacent to (row, col) in direction d, or nil
// if that position is off the board.
func (b *Board) Neighbor(row, col int, d world.Direction) *Cell {
	dr, dc := d.Delta()
	return b.At(row+dr, col+dc)
}

// StartCell returns the cell holding the start tile.
func (b *Board) StartCell() *Cell {
	return b.At(b.StartRow, b.StartCol)
}

// ForEachCell calls fn for every cell in row-major order.
func (b *Board) ForEachCell(fn func(cell *Cell)) {
	for r := range b.cells {
		for c := range b.cells[r] {
			fn(&b.cells[r][c])
		}
	}
}

// ZoneAllows reports whether a tile's zone constraint is satisfied at the
// position: edge tiles need a border row or column, corner tiles both, and
// center tiles a strictly interior position.
func (b *Board) ZoneAllows(z tiles.Zone, row, col int) bool {
	onBorderRow := row == 0 || row == b.Rows-1
	onBorderCol := col == 0 || col == b.Cols-1
	switch z {
	case tiles.ZoneEdge:
		return onBorderRow || onBorderCol
	case tiles.ZoneCorner:
		return onBorderRow && onBorderCol
	case tiles.ZoneCenter:
		return !onBorderRow && !onBorderCol
	default:
		return true
	}
}
