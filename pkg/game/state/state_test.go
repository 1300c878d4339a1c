package state

import (
	"math/rand"
	"testing"

	"bluemanor/pkg/game/tiles"
)

const testCatalogYAML = `
tiles:
  - name: Hall
    ports: [north]
    color: blue
    on_enter:
      - type: start
  - name: Sanctum
    ports: [south]
    rarity: 3
    color: purple
    on_enter:
      - type: goal
`

func newGame(t *testing.T) *Game {
	t.Helper()
	catalog, err := tiles.Parse([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("parsing test catalog: %v", err)
	}
	return New(catalog, 9, 5, rand.New(rand.NewSource(1)))
}

func TestNew_PlacesPlayerOnStart(t *testing.T) {
	g := newGame(t)
	if !g.Running || g.Won {
		t.Error("a fresh game should be running and not won")
	}
	if g.PlayerRow != g.Board.StartRow || g.PlayerCol != g.Board.StartCol {
		t.Errorf("player at (%d,%d), want the start cell", g.PlayerRow, g.PlayerCol)
	}
	if g.CurrentCell() != g.Board.StartCell() {
		t.Error("CurrentCell should be the start cell")
	}
	if !g.HasVisited(g.Board.StartCell()) || g.VisitedCount() != 1 {
		t.Error("the start cell counts as visited from the first turn")
	}
	if g.Selecting() {
		t.Error("a fresh game has no pending draw")
	}
}

func TestVisit_CountsDistinctCells(t *testing.T) {
	g := newGame(t)
	other := g.Board.At(0, 0)
	g.Visit(other)
	g.Visit(other)
	if g.VisitedCount() != 2 {
		t.Errorf("VisitedCount = %d after revisiting, want 2", g.VisitedCount())
	}
}

func TestMessages_SetAndAppend(t *testing.T) {
	g := newGame(t)
	g.SetMessagef("Entered the %s.", "Hall")
	g.AppendMessagef("Found %d coins.", 3)
	if g.Message != "Entered the Hall. Found 3 coins." {
		t.Errorf("message = %q", g.Message)
	}
	g.SetMessagef("reset")
	if g.Message != "reset" {
		t.Errorf("SetMessagef should replace, got %q", g.Message)
	}
}
