package domain

import "strings"

// Item is a warehouse inventory line. Purchase-only items are raw input (F stock);
// the rest queue produced work-in-progress pets of their rank.
type Item struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Stock        int    `json:"stock" yaml:"stock"`
	SafetyStock  int    `json:"safetyStock" yaml:"safetyStock"`
	PurchaseOnly bool   `json:"purchaseOnly,omitempty" yaml:"purchaseOnly,omitempty"`
}

// BelowSafety reports whether stock has dropped under the safety level
func (i Item) BelowSafety() bool {
	return i.Stock < i.SafetyStock
}

// Warehouse is the ordered collection of inventory items
type Warehouse []Item

// FeedItemID returns the id of the item that feeds an NPC of rank r.
// F draws from purchased stock; every other rank draws from its own WIP queue,
// which is also where produced pets of that rank wait for a free slot.
func FeedItemID(r Rank) string {
	if r == RankF {
		return "f-pet-stock"
	}
	return strings.ToLower(r.String()) + "-pet-wip"
}

// Find returns the index of the item with the given id, or -1
func (w Warehouse) Find(id string) int {
	for i, item := range w {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the warehouse
func (w Warehouse) Clone() Warehouse {
	if w == nil {
		return nil
	}
	out := make(Warehouse, len(w))
	copy(out, w)
	return out
}

// Stock returns the stock of item id, or 0 if the item does not exist
func (w Warehouse) Stock(id string) int {
	if i := w.Find(id); i >= 0 {
		return w[i].Stock
	}
	return 0
}

// DefaultWarehouse returns the initial inventory: purchased F stock and one empty
// WIP queue per rank E..A.
func DefaultWarehouse() Warehouse {
	w := Warehouse{
		{ID: FeedItemID(RankF), Name: "F-Pet Stock (Purchased)", Stock: 10, SafetyStock: 5, PurchaseOnly: true},
	}
	for _, r := range NPCRanks[1:] {
		w = append(w, Item{
			ID:   FeedItemID(r),
			Name: r.String() + "-Pets (Awaiting " + r.String() + "-NPC)",
		})
	}
	return w
}
