package board

import (
	"testing"

	"bluemanor/pkg/engine/world"
	"bluemanor/pkg/game/tiles"
)

// Test tiles built directly; port order is North, East, South, West.
func tileWithPorts(name string, n, e, s, w bool) *tiles.Tile {
	return &tiles.Tile{Name: name, Ports: tiles.Ports{n, e, s, w}}
}

// newTestBoard commits a start tile with ports on all four sides at the
// bottom-middle of a 3x3 grid, then returns the board.
func newTestBoard() *Board {
	start := tileWithPorts("Hall", true, true, true, true)
	return New(3, 3, start)
}

func TestNew_CommitsStartAtBottomMiddle(t *testing.T) {
	b := newTestBoard()
	if b.StartRow != 2 || b.StartCol != 1 {
		t.Fatalf("start position = (%d,%d), want (2,1)", b.StartRow, b.StartCol)
	}
	if !b.StartCell().Occupied() {
		t.Fatal("start cell is empty")
	}
	occupied := 0
	b.ForEachCell(func(c *Cell) {
		if c.Occupied() {
			occupied++
		}
	})
	if occupied != 1 {
		t.Errorf("%d occupied cells on a fresh board, want 1", occupied)
	}
}

func TestFindValidRotation_ArrivalReciprocity(t *testing.T) {
	b := newTestBoard()
	// Moving North from the start: the tile must expose a South-facing port.
	northOnly := tileWithPorts("Nook", true, false, false, false)

	rot, ok := b.FindValidRotation(northOnly, 1, 1, world.North)
	if !ok {
		t.Fatal("a single-port tile should fit by rotating its port to face South")
	}
	if !northOnly.PortAt(world.South, rot) {
		t.Errorf("rotation %d does not face the port back South", rot)
	}
}

func TestFindValidRotation_RejectsOffBoardPorts(t *testing.T) {
	start := tileWithPorts("Hall", true, true, true, true)
	b := New(2, 1, start) // single column, start at (1,0)

	// Every rotation leaves at least one port pointing off the 2x1 board.
	cross := tileWithPorts("Cross", true, true, true, true)
	if _, ok := b.FindValidRotation(cross, 0, 0, world.North); ok {
		t.Error("a four-port tile cannot legally sit in a single-column corner")
	}

	// A straight corridor rotated North-South fits: South faces the start,
	// North faces... the top edge, which is also illegal.
	corridor := tileWithPorts("Corridor", true, false, true, false)
	if _, ok := b.FindValidRotation(corridor, 0, 0, world.North); ok {
		t.Error("a corridor in the top-row corner would point off the board")
	}

	deadEnd := tileWithPorts("Nook", true, false, false, false)
	rot, ok := b.FindValidRotation(deadEnd, 0, 0, world.North)
	if !ok {
		t.Fatal("a dead end should fit in the corner with its port facing South")
	}
	if !deadEnd.PortAt(world.South, rot) {
		t.Errorf("rotation %d does not face the dead end back South", rot)
	}
}

func TestFindValidRotation_TwoWayNeighborAgreement(t *testing.T) {
	b := New(3, 5, tileWithPorts("Hall", true, true, true, true))
	// Start sits at (2,2). Commit a junction above it with ports facing
	// South (back to the start) and East only.
	junction := b.At(1, 2)
	junction.Tile = tileWithPorts("Junction", false, true, true, false)
	junction.Rotation = 0

	// Placing at (1,3), arriving East from the junction: reciprocity wants a
	// West port, and the junction's East port wants it too. A straight
	// corridor fits once rotated to run West-East.
	corridor := tileWithPorts("Corridor", true, false, true, false)
	rot, ok := b.FindValidRotation(corridor, 1, 3, world.East)
	if !ok {
		t.Fatal("corridor should fit east of the junction")
	}
	if !corridor.PortAt(world.West, rot) {
		t.Errorf("rotation %d has no West port toward the junction", rot)
	}

	// North of the junction: arriving North requires a South-facing port,
	// but the junction has no North port to meet it. One-sided ports are
	// illegal, so nothing can ever be placed there from the junction.
	nook := tileWithPorts("Nook", true, false, false, false)
	if _, ok := b.FindValidRotation(nook, 0, 2, world.North); ok {
		t.Error("one-sided port against the junction's blank North side should be illegal")
	}
}

func TestFindValidRotation_RejectsOccupiedAndOOB(t *testing.T) {
	b := newTestBoard()
	tile := tileWithPorts("Nook", true, false, false, false)

	if _, ok := b.FindValidRotation(tile, b.StartRow, b.StartCol, world.North); ok {
		t.Error("placement on the occupied start cell should be rejected")
	}
	if _, ok := b.FindValidRotation(tile, -1, 0, world.North); ok {
		t.Error("placement out of bounds should be rejected")
	}
}

func TestZoneAllows(t *testing.T) {
	b := New(5, 5, tileWithPorts("Hall", true, true, true, true))

	cases := []struct {
		zone     tiles.Zone
		row, col int
		want     bool
	}{
		{tiles.ZoneAny, 2, 2, true},
		{tiles.ZoneAny, 0, 0, true},
		{tiles.ZoneEdge, 0, 2, true},
		{tiles.ZoneEdge, 2, 4, true},
		{tiles.ZoneEdge, 2, 2, false},
		{tiles.ZoneCorner, 0, 0, true},
		{tiles.ZoneCorner, 0, 2, false},
		{tiles.ZoneCorner, 2, 2, false},
		{tiles.ZoneCenter, 2, 2, true},
		{tiles.ZoneCenter, 0, 2, false},
		{tiles.ZoneCenter, 4, 4, false},
	}
	for _, c := range cases {
		if got := b.ZoneAllows(c.zone, c.row, c.col); got != c.want {
			t.Errorf("ZoneAllows(%v, %d, %d) = %v, want %v", c.zone, c.row, c.col, got, c.want)
		}
	}
}

func TestFindValidRotation_HonorsZone(t *testing.T) {
	b := New(5, 5, tileWithPorts("Hall", true, true, true, true))
	centerOnly := &tiles.Tile{
		Name:  "Observatory",
		Ports: tiles.Ports{true, true, true, true},
		Zone:  tiles.ZoneCenter,
	}

	// (3,2) is interior and adjacent to the start at (4,2).
	if _, ok := b.FindValidRotation(centerOnly, 3, 2, world.North); !ok {
		t.Error("center-zone tile should fit in an interior cell")
	}

	if _, ok := b.FindValidRotation(centerOnly, 4, 1, world.West); ok {
		t.Error("center-zone tile must not fit on the bottom edge")
	}
}
