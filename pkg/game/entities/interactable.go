// Package entities contains the manor's post-placement features: the
// interactables spawned by tile effects (chests, lockers, dig sites) and
// the shopkeeper's offer cycle.
package entities

import (
	"fmt"
	"math/rand"
	"strings"

	"bluemanor/pkg/game/inventory"
	"bluemanor/pkg/game/tiles"
)

// InteractableKind discriminates the closed set of interactable variants.
type InteractableKind int

// Interactable kinds
const (
	Chest InteractableKind = iota
	Locker
	DigSite
)

// KindByName maps a catalog spawn name to its kind.
func KindByName(name string) (InteractableKind, bool) {
	switch name {
	case tiles.SpawnChest:
		return Chest, true
	case tiles.SpawnLocker:
		return Locker, true
	case tiles.SpawnDigSite:
		return DigSite, true
	default:
		return 0, false
	}
}

// Label returns the indefinite description shown when the feature appears.
func (k InteractableKind) Label() string {
	switch k {
	case Chest:
		return "a chest"
	case Locker:
		return "a locker"
	case DigSite:
		return "a dig site"
	default:
		return "something"
	}
}

// Icon returns the map glyph for the feature.
func (k InteractableKind) Icon() string {
	switch k {
	case Chest:
		return "▣"
	case Locker:
		return "◫"
	case DigSite:
		return "✶"
	default:
		return "?"
	}
}

// Interactable is a feature sitting in a cell. Opened is terminal: once a
// feature has yielded its loot it never closes again.
type Interactable struct {
	Kind   InteractableKind
	Opened bool
}

// NewInteractable creates an unopened feature of the given kind.
func NewInteractable(kind InteractableKind) *Interactable {
	return &Interactable{Kind: kind}
}

// lootEntry is one independent Bernoulli trial in a loot table.
type lootEntry struct {
	Resource inventory.Resource
	Amount   int
	Chance   float64
}

// Per-kind loot tables. Each entry rolls independently; an empty roll is
// replaced by a flat consolation grant.
var (
	lootTableChest = []lootEntry{
		{inventory.Gems, 1, 0.35},
		{inventory.Keys, 1, 0.40},
		{inventory.Coins, 15, 0.50},
	}
	lootTableLocker = []lootEntry{
		{inventory.Keys, 1, 0.60},
		{inventory.Coins, 10, 0.30},
	}
	lootTableDigSite = []lootEntry{
		{inventory.Coins, 8, 0.50},
		{inventory.Keys, 1, 0.20},
		{inventory.Gems, 1, 0.20},
	}
)

// Consolation grant when every loot trial fails.
const (
	consolationCoins = 5
	// Metal detector bonus applied to key and coin entries, capped at 1.0.
	detectorBonus = 0.15
)

// Interact attempts to open the feature. Requirements per kind: a chest
// takes a key (consumed) or the hammer, a locker takes a key only, a dig
// site needs the shovel (kept). On success the feature opens exactly once
// and the loot roll is credited to the inventory. All outcomes are reported
// as a message; a rejection changes nothing.
func (it *Interactable) Interact(rng *rand.Rand, inv *inventory.Inventory) string {
	if it.Opened {
		switch it.Kind {
		case DigSite:
			return "Nothing left to dig here."
		default:
			return fmt.Sprintf("The %s is empty.", it.noun())
		}
	}

	var msg string
	var table []lootEntry

	switch it.Kind {
	case Chest:
		table = lootTableChest
		if inv.Spend(inventory.Keys, 1) {
			msg = "Used a key to open the chest."
		} else if inv.Has(inventory.Hammer) {
			msg = "Used the hammer to smash the chest."
		} else {
			return "A chest is here. You need a key or the hammer."
		}
	case Locker:
		table = lootTableLocker
		if inv.Spend(inventory.Keys, 1) {
			msg = "Locker opened."
		} else {
			return "A locker is here. You need a key."
		}
	case DigSite:
		table = lootTableDigSite
		if inv.Has(inventory.Shovel) {
			msg = "You dug the site."
		} else {
			return "You found a dig site. You need a shovel."
		}
	default:
		return "Nothing happens."
	}

	it.Opened = true
	return msg + rollLoot(rng, inv, table)
}

// noun returns the bare noun for post-open messages.
func (it *Interactable) noun() string {
	switch it.Kind {
	case Chest:
		return "chest"
	case Locker:
		return "locker"
	default:
		return "site"
	}
}

// rollLoot runs the table's independent trials, credits every success to
// the inventory, and returns the formatted grants. The metal detector
// boosts key and coin entries. If every trial fails the consolation coins
// are granted instead.
func rollLoot(rng *rand.Rand, inv *inventory.Inventory, table []lootEntry) string {
	var grants []string
	for _, entry := range table {
		chance := entry.Chance
		if inv.Has(inventory.MetalDetector) &&
			(entry.Resource == inventory.Keys || entry.Resource == inventory.Coins) {
			chance += detectorBonus
			if chance > 1.0 {
				chance = 1.0
			}
		}
		if rng.Float64() < chance {
			inv.Add(entry.Resource, entry.Amount)
			grants = append(grants, fmt.Sprintf("+%d %s", entry.Amount, entry.Resource))
		}
	}
	if len(grants) == 0 {
		inv.Add(inventory.Coins, consolationCoins)
		grants = append(grants, fmt.Sprintf("+%d %s", consolationCoins, inventory.Coins))
	}
	return " ITEM{" + strings.Join(grants, ", ") + "}"
}
