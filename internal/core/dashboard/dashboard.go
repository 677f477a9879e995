// Package dashboard derives the at-a-glance alerts and next action shown on
// the farm overview.
package dashboard

import (
	"fmt"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// DefaultExpiryWindow is how far ahead NPC expirations raise an alert
const DefaultExpiryWindow = 24 * time.Hour

// AlertKind classifies an alert
type AlertKind int

const (
	AlertNPCExpiring AlertKind = iota
	AlertLowStock
)

func (k AlertKind) String() string {
	switch k {
	case AlertNPCExpiring:
		return "npc-expiring"
	case AlertLowStock:
		return "low-stock"
	default:
		return "unknown"
	}
}

// Alert is one dashboard warning
type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`
	HouseID int       `json:"houseId,omitempty"`
	Slot    int       `json:"slot,omitempty"`
	ItemID  string    `json:"itemId,omitempty"`
	At      time.Time `json:"at,omitempty"`
}

// Alerts lists NPCs expiring within (now, now+window] followed by warehouse
// items below their safety stock. A non-positive window uses DefaultExpiryWindow.
func Alerts(houses []domain.House, warehouse domain.Warehouse, now time.Time, window time.Duration) []Alert {
	if window <= 0 {
		window = DefaultExpiryWindow
	}
	limit := now.Add(window)

	var alerts []Alert
	for _, h := range houses {
		for i, s := range h.Slots {
			exp := s.NPC.Expiration
			if !s.NPC.Assigned() || exp.IsZero() {
				continue
			}
			if exp.After(now) && !exp.After(limit) {
				alerts = append(alerts, Alert{
					Kind:    AlertNPCExpiring,
					Message: fmt.Sprintf("House %d slot %d: %s-NPC expires in %s", h.ID, i+1, s.NPC.Rank, formatRemaining(exp.Sub(now))),
					HouseID: h.ID,
					Slot:    i,
					At:      exp,
				})
			}
		}
	}

	for _, item := range warehouse {
		if item.BelowSafety() {
			alerts = append(alerts, Alert{
				Kind:    AlertLowStock,
				Message: fmt.Sprintf("%s is low: %d left (safety %d)", item.Name, item.Stock, item.SafetyStock),
				ItemID:  item.ID,
			})
		}
	}
	return alerts
}

// Action is the next upcoming event on the farm
type Action struct {
	HouseID      int         `json:"houseId"`
	Slot         int         `json:"slot"`
	Rank         domain.Rank `json:"rank"`
	ServiceBlock string      `json:"serviceBlock"`
	At           time.Time   `json:"at"`
}

// NextAction returns the pet that finishes soonest strictly after now.
// ok is false when nothing is training.
func NextAction(houses []domain.House, blocks map[int]string, now time.Time) (next Action, ok bool) {
	for _, h := range houses {
		for i, s := range h.Slots {
			if !s.Pet.Scheduled() || !s.Pet.Finish.After(now) {
				continue
			}
			if ok && !s.Pet.Finish.Before(next.At) {
				continue
			}
			next = Action{
				HouseID:      h.ID,
				Slot:         i,
				Rank:         s.NPC.Rank,
				ServiceBlock: blocks[h.ID],
				At:           s.Pet.Finish,
			}
			ok = true
		}
	}
	return next, ok
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
