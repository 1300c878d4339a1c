package entities

import (
	"strings"
	"testing"

	"bluemanor/pkg/game/inventory"
)

func TestShop_CyclesThroughOffers(t *testing.T) {
	s := NewShop()
	first := s.Current()

	inv := inventory.New()
	// No coins: every attempt fails but the cycle still advances.
	seen := []inventory.Resource{first.Resource}
	for i := 0; i < len(shopOffers)-1; i++ {
		s.Purchase(inv)
		seen = append(seen, s.Current().Resource)
	}
	s.Purchase(inv)
	if s.Current().Resource != first.Resource {
		t.Errorf("after a full cycle the shop offers %s, want %s", s.Current().Resource, first.Resource)
	}

	distinct := make(map[inventory.Resource]bool)
	for _, r := range seen {
		distinct[r] = true
	}
	if len(distinct) != len(shopOffers) {
		t.Errorf("cycle visited %d distinct offers, want %d", len(distinct), len(shopOffers))
	}
}

func TestShop_PurchaseSpendsCoins(t *testing.T) {
	s := NewShop()
	inv := inventory.New()
	inv.Add(inventory.Coins, 100)

	offer := s.Current()
	msg := s.Purchase(inv)
	if !strings.Contains(msg, "Bought") {
		t.Fatalf("affordable purchase failed: %q", msg)
	}
	if got := inv.Count(inventory.Coins); got != 100-offer.Price {
		t.Errorf("coins after purchase = %d, want %d", got, 100-offer.Price)
	}
	if got := inv.Count(offer.Resource); got < offer.Amount {
		t.Errorf("%s after purchase = %d, want at least %d", offer.Resource, got, offer.Amount)
	}
}

func TestShop_UnaffordableOfferIsANoOp(t *testing.T) {
	s := NewShop()
	inv := inventory.New()
	inv.Add(inventory.Coins, 3)

	offer := s.Current()
	msg := s.Purchase(inv)
	if !strings.Contains(msg, "afford") {
		t.Fatalf("expected an affordability rejection, got %q", msg)
	}
	if inv.Count(inventory.Coins) != 3 {
		t.Error("rejected purchase changed the coin count")
	}
	if inv.Count(offer.Resource) != 0 && offer.Resource != inventory.Steps {
		t.Error("rejected purchase granted the resource")
	}
	if s.Current() == offer {
		t.Error("rejected purchase should still advance the cycle")
	}
}
