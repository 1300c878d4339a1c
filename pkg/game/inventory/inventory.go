// Package inventory tracks the player's resource economy: consumable
// counters that rise and fall during a run, and permanent upgrade flags
// that are granted once and never revoked.
package inventory

import "bluemanor/pkg/game/tiles"

// Resource identifies a consumable counter.
type Resource int

// Consumable resources
const (
	Steps Resource = iota
	Coins
	Gems
	Keys
	Dice
)

// String returns the display name of the resource.
func (r Resource) String() string {
	switch r {
	case Steps:
		return "steps"
	case Coins:
		return "coins"
	case Gems:
		return "gems"
	case Keys:
		return "keys"
	case Dice:
		return "dice"
	default:
		return "unknown"
	}
}

// AllResources returns the resources in display order.
func AllResources() []Resource {
	return []Resource{Steps, Coins, Gems, Keys, Dice}
}

// Upgrade identifies a permanent boolean upgrade.
type Upgrade int

// Permanent upgrades
const (
	Shovel Upgrade = iota
	Hammer
	LockpickKit
	MetalDetector
	LuckCharm
)

// String returns the display name of the upgrade.
func (u Upgrade) String() string {
	switch u {
	case Shovel:
		return "shovel"
	case Hammer:
		return "hammer"
	case LockpickKit:
		return "lockpick kit"
	case MetalDetector:
		return "metal detector"
	case LuckCharm:
		return "luck charm"
	default:
		return "unknown"
	}
}

// AllUpgrades returns the upgrades in display order.
func AllUpgrades() []Upgrade {
	return []Upgrade{Shovel, Hammer, LockpickKit, MetalDetector, LuckCharm}
}

// UpgradeByName maps a catalog upgrade name to its Upgrade value.
func UpgradeByName(name string) (Upgrade, bool) {
	switch name {
	case tiles.UpgradeShovel:
		return Shovel, true
	case tiles.UpgradeHammer:
		return Hammer, true
	case tiles.UpgradeLockpickKit:
		return LockpickKit, true
	case tiles.UpgradeMetalDetector:
		return MetalDetector, true
	case tiles.UpgradeLuckCharm:
		return LuckCharm, true
	default:
		return 0, false
	}
}

// Inventory holds the consumable counters and permanent upgrade flags.
// Counters never go negative: Spend rejects a shortfall wholesale.
type Inventory struct {
	counts   map[Resource]int
	upgrades map[Upgrade]bool
}

// New returns the starting inventory: 70 steps, 2 gems, nothing else.
func New() *Inventory {
	return &Inventory{
		counts: map[Resource]int{
			Steps: 70,
			Coins: 0,
			Gems:  2,
			Keys:  0,
			Dice:  0,
		},
		upgrades: make(map[Upgrade]bool),
	}
}

// Count returns the current value of a consumable counter.
func (inv *Inventory) Count(r Resource) int {
	return inv.counts[r]
}

// Add increases a consumable counter. Negative amounts are ignored;
// removal goes through Spend so the non-negativity guard cannot be skipped.
func (inv *Inventory) Add(r Resource, amount int) {
	if amount <= 0 {
		return
	}
	inv.counts[r] += amount
}

// Spend decreases a consumable counter by amount if the full amount is
// available. It reports whether the subtraction was applied.
func (inv *Inventory) Spend(r Resource, amount int) bool {
	if amount < 0 || inv.counts[r] < amount {
		return false
	}
	inv.counts[r] -= amount
	return true
}

// Has reports whether a permanent upgrade is held.
func (inv *Inventory) Has(u Upgrade) bool {
	return inv.upgrades[u]
}

// Grant sets a permanent upgrade flag. It reports whether the flag was
// newly set; granting an already-held upgrade is a no-op.
func (inv *Inventory) Grant(u Upgrade) bool {
	if inv.upgrades[u] {
		return false
	}
	inv.upgrades[u] = true
	return true
}
