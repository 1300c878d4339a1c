package entities

import (
	"fmt"

	"bluemanor/pkg/game/inventory"
)

// Offer is one fixed shop trade: Amount of Resource for Price coins.
type Offer struct {
	Resource inventory.Resource
	Amount   int
	Price    int
}

// String formats the offer for the shop prompt.
func (o Offer) String() string {
	return fmt.Sprintf("%d %s for %d coins", o.Amount, o.Resource, o.Price)
}

// shopOffers is the fixed rotation every shopkeeper cycles through.
var shopOffers = []Offer{
	{inventory.Keys, 1, 10},
	{inventory.Dice, 1, 25},
	{inventory.Steps, 5, 8},
}

// Shop is the cyclic purchase menu attached to a shop cell. Each
// interaction attempts the current offer and advances the cycle pointer
// whether or not the purchase went through.
type Shop struct {
	next int
}

// NewShop returns a shop positioned at the first offer.
func NewShop() *Shop {
	return &Shop{}
}

// Current returns the offer on the counter.
func (s *Shop) Current() Offer {
	return shopOffers[s.next]
}

// Purchase attempts to buy the current offer, then moves the cycle to the
// next one. An unaffordable offer is a no-op with a message.
func (s *Shop) Purchase(inv *inventory.Inventory) string {
	offer := s.Current()
	s.next = (s.next + 1) % len(shopOffers)

	if !inv.Spend(inventory.Coins, offer.Price) {
		return fmt.Sprintf("You can't afford %s. Next up: %s.", offer, s.Current())
	}
	inv.Add(offer.Resource, offer.Amount)
	return fmt.Sprintf("Bought ITEM{%d %s} for %d coins. Next up: %s.",
		offer.Amount, offer.Resource, offer.Price, s.Current())
}
