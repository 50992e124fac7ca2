package inventory

import "github.com/javierportillar/saviaInventory-sub001/internal/models"

// Adjustment is one signed stock delta aimed at a menu item. Adjustments
// are ephemeral instructions: they are applied immediately and never
// persisted.
type Adjustment struct {
	MenuItemID uint
	Delta      int64 // canonical unit of the target item
	Reason     string
}

// StockPolicy decides what stock value to store when an adjustment batch
// lands. The default is ClampToZero; AllowNegative exists for callers that
// prefer backorder-style accounting.
type StockPolicy func(newStock int64) int64

// ClampToZero floors stock at zero. Recorded consumption beyond recorded
// stock is accepted and lost rather than surfaced as an error.
func ClampToZero(s int64) int64 {
	if s < 0 {
		return 0
	}
	return s
}

// AllowNegative stores the arithmetic result as-is.
func AllowNegative(s int64) int64 { return s }

// NetDeltas sums a batch per target item and drops items whose deltas
// cancel out. Netting before touching stock matters on the edit path, which
// emits a reversal and a forward adjustment for the same item in one batch.
func NetDeltas(adjs []Adjustment) map[uint]int64 {
	net := make(map[uint]int64, len(adjs))
	for _, a := range adjs {
		net[a.MenuItemID] += a.Delta
	}
	for id, d := range net {
		if d == 0 {
			delete(net, id)
		}
	}
	return net
}

// Apply applies a batch of adjustments to a collection of items and
// returns the updated collection, clamping stock at zero. Items the batch
// does not touch come back unchanged. Pure: the caller persists the result.
func Apply(items []models.MenuItem, adjs []Adjustment) []models.MenuItem {
	return ApplyWithPolicy(items, adjs, ClampToZero)
}

// ApplyWithPolicy is Apply with an explicit negative-stock policy.
func ApplyWithPolicy(items []models.MenuItem, adjs []Adjustment, policy StockPolicy) []models.MenuItem {
	net := NetDeltas(adjs)
	if len(net) == 0 {
		return items
	}
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	for i := range out {
		d, ok := net[out[i].ID]
		if !ok {
			continue
		}
		out[i].Stock = policy(out[i].Stock + d)
	}
	return out
}
