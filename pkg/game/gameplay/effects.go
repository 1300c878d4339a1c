package gameplay

import (
	"bluemanor/pkg/game/board"
	"bluemanor/pkg/game/entities"
	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/state"
	"bluemanor/pkg/game/tiles"
)

// applyOnEnter resolves a tile's on-enter effects after the player steps
// into its cell, then rolls the incidental find. Entering a shop skips the
// incidental roll; the shopkeeper keeps the floor swept.
func applyOnEnter(g *state.Game, cell *board.Cell) {
	t := cell.Tile
	if len(t.OnEnter) == 0 {
		g.SetMessagef("Entered the ROOM{%s}.", t.Name)
		incidentalFind(g)
		return
	}

	shop := false
	g.SetMessagef("Entered the ROOM{%s}.", t.Name)
	for _, e := range t.OnEnter {
		if e.Kind == tiles.EffectShop {
			shop = true
		}
		resolveEffect(g, cell, e)
	}
	if !shop {
		incidentalFind(g)
	}
}

// applyOnDraw resolves a tile's on-draw effects right after it is
// committed to the board.
func applyOnDraw(g *state.Game, t *tiles.Tile) {
	for _, e := range t.OnDraw {
		resolveEffect(g, nil, e)
	}
}

// resolveEffect dispatches one effect. cell is the entered cell for
// on-enter triggers and nil for on-draw triggers; the catalog loader
// guarantees cell-bound effects only appear on on-enter lists.
func resolveEffect(g *state.Game, cell *board.Cell, e tiles.Effect) {
	switch e.Kind {
	case tiles.EffectNone:
		// message only, already set by the caller

	case tiles.EffectStart:
		g.SetMessagef("Back at the entrance.")

	case tiles.EffectGoal:
		g.Running = false
		g.Won = true
		g.SetMessagef("You reached the ROOM{Antechamber}! You win!")

	case tiles.EffectGrantCoins:
		g.Inventory.Add(inventory.Coins, e.Amount)
		g.AppendMessagef("Found ITEM{%d coins}!", e.Amount)

	case tiles.EffectGrantSteps:
		g.Inventory.Add(inventory.Steps, e.Amount)
		g.AppendMessagef("Ate some food and regained ITEM{%d steps}.", e.Amount)

	case tiles.EffectGrantGem:
		g.Inventory.Add(inventory.Gems, 1)
		g.AppendMessagef("Found ITEM{1 gem}!")

	case tiles.EffectSpawn:
		spawnInteractable(g, cell, e.Spawn)

	case tiles.EffectGrantPermanent:
		grantPermanent(g, e.Upgrade)

	case tiles.EffectShop:
		if cell.Shop == nil {
			cell.Shop = entities.NewShop()
		}
		g.AppendMessagef("A shopkeeper offers: %s. Interact to buy.", cell.Shop.Current())

	case tiles.EffectIncreaseWeight:
		injectCopies(g, e)
	}
}

// spawnInteractable creates the named feature in the cell unless an
// unopened one is already there.
func spawnInteractable(g *state.Game, cell *board.Cell, name string) {
	if cell.HasUnopenedInteractable() {
		return
	}
	kind, ok := entities.KindByName(name)
	if !ok {
		// The catalog loader validates spawn names; this is unreachable.
		return
	}
	cell.Interactable = entities.NewInteractable(kind)
	g.AppendMessagef("You found %s! Interact to open it.", kind.Label())
}

// grantPermanent sets an upgrade flag idempotently.
func grantPermanent(g *state.Game, name string) {
	u, ok := inventory.UpgradeByName(name)
	if !ok {
		// Validated at catalog load; unreachable.
		return
	}
	if g.Inventory.Grant(u) {
		g.AppendMessagef("Picked up the ITEM{%s}!", u)
	} else {
		g.AppendMessagef("Another %s. You already carry one.", u)
	}
}

// injectCopies appends extra deck copies of the tiles matched by an
// IncreaseWeight effect, chosen at random among the matches.
func injectCopies(g *state.Game, e tiles.Effect) {
	var matches []*tiles.Tile
	if e.Tile != "" {
		if t, ok := g.Catalog.ByName(e.Tile); ok {
			matches = []*tiles.Tile{t}
		}
	} else {
		matches = g.Catalog.ByColor(e.Color)
	}
	if len(matches) == 0 {
		return
	}
	for i := 0; i < e.Amount; i++ {
		g.Deck.Inject(matches[g.Rng.Intn(len(matches))], 1)
	}
	if e.Tile != "" {
		g.AppendMessagef("The deck now holds more ROOM{%s} rooms.", e.Tile)
	} else {
		g.AppendMessagef("The deck now holds more %s rooms.", e.Color)
	}
}

// incidentalFind rolls the secondary random grant that can follow any
// non-shop room entry: base chance 0.08, +0.05 with the luck charm. The
// found resource is uniform unless the metal detector is held, which
// double-weights keys and coins.
func incidentalFind(g *state.Game) {
	chance := 0.08
	if g.Inventory.Has(inventory.LuckCharm) {
		chance += 0.05
	}
	if g.Rng.Float64() >= chance {
		return
	}

	type find struct {
		resource inventory.Resource
		amount   int
		weight   int
	}
	finds := []find{
		{inventory.Gems, 1, 1},
		{inventory.Keys, 1, 1},
		{inventory.Dice, 1, 1},
		{inventory.Coins, 5, 1},
		{inventory.Steps, 3, 1},
	}
	if g.Inventory.Has(inventory.MetalDetector) {
		for i := range finds {
			if finds[i].resource == inventory.Keys || finds[i].resource == inventory.Coins {
				finds[i].weight = 2
			}
		}
	}

	total := 0
	for _, f := range finds {
		total += f.weight
	}
	r := g.Rng.Intn(total)
	for _, f := range finds {
		r -= f.weight
		if r < 0 {
			g.Inventory.Add(f.resource, f.amount)
			g.AppendMessagef("Found ITEM{%d %s}.", f.amount, f.resource)
			return
		}
	}
}
