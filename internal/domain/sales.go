package domain

import "time"

// CollectedPet is a tally of finished pets held for sale or perfection
type CollectedPet struct {
	Rank     Rank `json:"rank" yaml:"rank"`
	Quantity int  `json:"quantity" yaml:"quantity"`
}

// Collection is the held-pet inventory, one entry per rank
type Collection []CollectedPet

// Quantity returns the number of held pets of rank r
func (c Collection) Quantity(r Rank) int {
	for _, p := range c {
		if p.Rank == r {
			return p.Quantity
		}
	}
	return 0
}

// Add returns a new collection with delta applied to rank r.
// Entries that reach zero are dropped; negative deltas on a missing rank are ignored.
func (c Collection) Add(r Rank, delta int) Collection {
	out := make(Collection, 0, len(c)+1)
	found := false
	for _, p := range c {
		if p.Rank == r {
			found = true
			p.Quantity += delta
		}
		if p.Quantity > 0 {
			out = append(out, p)
		}
	}
	if !found && delta > 0 {
		out = append(out, CollectedPet{Rank: r, Quantity: delta})
	}
	return out
}

// SaleRecord is one completed market sale
type SaleRecord struct {
	ID           string    `json:"id" yaml:"id"`
	Rank         Rank      `json:"rank" yaml:"rank"`
	Quantity     int       `json:"quantity" yaml:"quantity"`
	PricePerUnit float64   `json:"pricePerUnit" yaml:"pricePerUnit"`
	Total        float64   `json:"total" yaml:"total"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
}
