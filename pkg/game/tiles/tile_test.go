package tiles

import (
	"testing"

	"bluemanor/pkg/engine/world"
)

func TestPorts_RotatedMovesClockwise(t *testing.T) {
	var p Ports
	p[world.North] = true

	r1 := p.Rotated(1)
	if !r1.Has(world.East) || r1.Count() != 1 {
		t.Errorf("one quarter-turn should move a North port to East, got %v", r1)
	}

	r2 := p.Rotated(2)
	if !r2.Has(world.South) || r2.Count() != 1 {
		t.Errorf("two quarter-turns should move a North port to South, got %v", r2)
	}

	r3 := p.Rotated(3)
	if !r3.Has(world.West) || r3.Count() != 1 {
		t.Errorf("three quarter-turns should move a North port to West, got %v", r3)
	}
}

func TestPorts_RotatedFullTurnIsIdentity(t *testing.T) {
	p := Ports{true, false, true, false}
	if p.Rotated(4) != p {
		t.Errorf("four quarter-turns should be the identity, got %v", p.Rotated(4))
	}
	if p.Rotated(0) != p {
		t.Errorf("zero quarter-turns should be the identity, got %v", p.Rotated(0))
	}
}

func TestPorts_RotatedPreservesCount(t *testing.T) {
	p := Ports{true, true, false, true}
	for rot := 0; rot < 4; rot++ {
		if got := p.Rotated(rot).Count(); got != p.Count() {
			t.Errorf("rotation %d changed port count from %d to %d", rot, p.Count(), got)
		}
	}
}

func TestTile_WeightHalvesByRarityFactor(t *testing.T) {
	common := &Tile{Rarity: 0}
	uncommon := &Tile{Rarity: 1}
	rare := &Tile{Rarity: 2}

	if common.Weight() != 1.0 {
		t.Errorf("rarity 0 weight = %v, want 1", common.Weight())
	}
	if got := common.Weight() / uncommon.Weight(); got < 2.99 || got > 3.01 {
		t.Errorf("rarity 0 should be 3x as likely as rarity 1, ratio %v", got)
	}
	if got := common.Weight() / rare.Weight(); got < 8.99 || got > 9.01 {
		t.Errorf("rarity 0 should be 9x as likely as rarity 2, ratio %v", got)
	}
}

func TestTile_DeckMultiplicity(t *testing.T) {
	cases := []struct {
		rarity int
		want   int
	}{
		{0, 7},
		{1, 5},
		{2, 3},
		{3, 1},
		{7, 1},
	}
	for _, c := range cases {
		tile := &Tile{Rarity: c.rarity}
		if got := tile.DeckMultiplicity(); got != c.want {
			t.Errorf("rarity %d multiplicity = %d, want %d", c.rarity, got, c.want)
		}
	}
}

func TestTile_PortAtUsesRotation(t *testing.T) {
	tile := &Tile{Ports: Ports{true, false, false, false}}
	if !tile.PortAt(world.North, 0) {
		t.Error("unrotated tile should keep its North port")
	}
	if !tile.PortAt(world.East, 1) {
		t.Error("rotated tile should expose the port at East")
	}
	if tile.PortAt(world.North, 1) {
		t.Error("rotated tile should no longer have a North port")
	}
}
