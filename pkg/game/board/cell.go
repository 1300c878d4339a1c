// Package board holds the manor grid: cells that materialize one tile
// each, the rotation-aware placement solver, and the depth-correlated
// door-lock policy.
package board

import (
	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/entities"
	"bluemanor/pkg/game/tiles"
)

// Lock is the state of one side of a cell. LockAbsent means no door was
// ever established on that side; the other values gate traversal.
type Lock int

// Lock levels
const (
	LockAbsent Lock = iota - 1
	LockOpen
	LockWeak
	LockStrong
)

// String returns the display name of the lock level.
func (l Lock) String() string {
	switch l {
	case LockAbsent:
		return "absent"
	case LockOpen:
		return "open"
	case LockWeak:
		return "weak"
	case LockStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// Cell is one grid square. Tile is write-once: it is set when a draw is
// committed and never replaced or cleared afterwards.
type Cell struct {
	Row int
	Col int

	Tile     *tiles.Tile // nil until a tile is committed here
	Rotation int         // clockwise quarter-turns applied to Tile's ports

	// Interactable and Shop are created lazily by on-enter effects.
	Interactable *entities.Interactable
	Shop         *entities.Shop

	locks [world.DirectionCount]Lock
}

// Occupied reports whether a tile has been committed to this cell.
func (c *Cell) Occupied() bool {
	return c.Tile != nil
}

// HasPort reports whether the placed tile, after rotation, has a port
// toward direction d. An empty cell has no ports.
func (c *Cell) HasPort(d world.Direction) bool {
	return c.Tile != nil && c.Tile.PortAt(d, c.Rotation)
}

// LockAt returns the lock state on the given side.
func (c *Cell) LockAt(d world.Direction) Lock {
	return c.locks[d]
}

// SetLock records the lock state on the given side.
func (c *Cell) SetLock(d world.Direction, l Lock) {
	c.locks[d] = l
}

// HasUnopenedInteractable reports whether an interactable is present and
// still closed.
func (c *Cell) HasUnopenedInteractable() bool {
	return c.Interactable != nil && !c.Interactable.Opened
}
