package tiles

import "fmt"

// EffectKind discriminates the closed set of tile effect variants.
// The catalog loader rejects any kind outside this set, so the resolver can
// match exhaustively and an unrecognized effect can never silently no-op.
type EffectKind int

// Effect kinds
const (
	EffectNone           EffectKind = iota // message only
	EffectStart                            // marks the start tile
	EffectGoal                             // entering wins the game
	EffectGrantCoins                       // +Amount coins
	EffectGrantSteps                       // +Amount steps (food)
	EffectGrantGem                         // +1 gem, unconditional
	EffectSpawn                            // create an interactable in the cell
	EffectGrantPermanent                   // set a permanent upgrade flag
	EffectShop                             // cyclic purchase menu
	EffectIncreaseWeight                   // inject extra copies into the deck
)

// String returns the catalog spelling of the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectStart:
		return "start"
	case EffectGoal:
		return "goal"
	case EffectGrantCoins:
		return "grant_coins"
	case EffectGrantSteps:
		return "grant_steps"
	case EffectGrantGem:
		return "grant_gem"
	case EffectSpawn:
		return "spawn"
	case EffectGrantPermanent:
		return "grant_permanent"
	case EffectShop:
		return "shop"
	case EffectIncreaseWeight:
		return "increase_weight"
	default:
		return "unknown"
	}
}

// Interactable kind names accepted by Spawn effects.
const (
	SpawnChest   = "chest"
	SpawnLocker  = "locker"
	SpawnDigSite = "dig_site"
)

// Upgrade names accepted by GrantPermanent effects.
const (
	UpgradeShovel        = "shovel"
	UpgradeHammer        = "hammer"
	UpgradeLockpickKit   = "lockpick_kit"
	UpgradeMetalDetector = "metal_detector"
	UpgradeLuckCharm     = "luck_charm"
)

// Effect is one declarative effect entry on a tile. Kind selects the
// variant; the payload fields used depend on the kind and are validated at
// catalog load time, so resolvers may assume they are well-formed.
type Effect struct {
	Kind    EffectKind
	Amount  int    // GrantCoins, GrantSteps: quantity. IncreaseWeight: copies.
	Spawn   string // Spawn: one of the Spawn* constants
	Upgrade string // GrantPermanent: one of the Upgrade* constants
	Color   string // IncreaseWeight: color bucket to boost (exclusive with Tile)
	Tile    string // IncreaseWeight: exact tile name to boost
}

// effectKindByName maps catalog spellings to kinds.
var effectKindByName = map[string]EffectKind{
	"none":            EffectNone,
	"start":           EffectStart,
	"goal":            EffectGoal,
	"grant_coins":     EffectGrantCoins,
	"grant_steps":     EffectGrantSteps,
	"grant_gem":       EffectGrantGem,
	"spawn":           EffectSpawn,
	"grant_permanent": EffectGrantPermanent,
	"shop":            EffectShop,
	"increase_weight": EffectIncreaseWeight,
}

// onEnterOnly marks kinds bound to the entered cell (or to the act of
// entering itself). An on_draw trigger has no cell, so the loader rejects
// these kinds on on_draw lists and resolvers may rely on that.
var onEnterOnly = map[EffectKind]bool{
	EffectStart: true,
	EffectGoal:  true,
	EffectSpawn: true,
	EffectShop:  true,
}

var validSpawns = map[string]bool{
	SpawnChest:   true,
	SpawnLocker:  true,
	SpawnDigSite: true,
}

var validUpgrades = map[string]bool{
	UpgradeShovel:        true,
	UpgradeHammer:        true,
	UpgradeLockpickKit:   true,
	UpgradeMetalDetector: true,
	UpgradeLuckCharm:     true,
}

// validate checks the payload fields required by the effect kind.
func (e Effect) validate() error {
	switch e.Kind {
	case EffectGrantCoins, EffectGrantSteps:
		if e.Amount <= 0 {
			return fmt.Errorf("effect %q requires a positive amount", e.Kind)
		}
	case EffectSpawn:
		if !validSpawns[e.Spawn] {
			return fmt.Errorf("effect %q references unknown interactable %q", e.Kind, e.Spawn)
		}
	case EffectGrantPermanent:
		if !validUpgrades[e.Upgrade] {
			return fmt.Errorf("effect %q references unknown upgrade %q", e.Kind, e.Upgrade)
		}
	case EffectIncreaseWeight:
		if e.Amount <= 0 {
			return fmt.Errorf("effect %q requires a positive copy count", e.Kind)
		}
		if (e.Color == "") == (e.Tile == "") {
			return fmt.Errorf("effect %q requires exactly one of color or tile", e.Kind)
		}
	}
	return nil
}
