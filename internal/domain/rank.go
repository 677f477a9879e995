// Package domain contains the core business types for the pet farm planner.
package domain

import (
	"fmt"
	"strings"
)

// Rank is a production-stage tier. The zero value means "no rank".
// Ordering follows F < E < D < C < B < A < S.
type Rank int

const (
	RankNone Rank = iota
	RankF
	RankE
	RankD
	RankC
	RankB
	RankA
	RankS
)

// NPCRanks lists the ranks that can occupy an NPC slot, lowest first.
var NPCRanks = []Rank{RankF, RankE, RankD, RankC, RankB, RankA}

// AllRanks lists every pet rank, lowest first.
var AllRanks = []Rank{RankF, RankE, RankD, RankC, RankB, RankA, RankS}

var rankNames = [...]string{"", "F", "E", "D", "C", "B", "A", "S"}

// successor maps an NPC rank to the rank of the pet it produces.
var successor = map[Rank]Rank{
	RankF: RankE,
	RankE: RankD,
	RankD: RankC,
	RankC: RankB,
	RankB: RankA,
	RankA: RankS,
}

// String returns the rank letter, or "" for RankNone
func (r Rank) String() string {
	if r < RankNone || r > RankS {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Valid reports whether r is one of F..S
func (r Rank) Valid() bool {
	return r >= RankF && r <= RankS
}

// IsNPC reports whether r may be assigned to an NPC slot (F..A)
func (r Rank) IsNPC() bool {
	return r >= RankF && r <= RankA
}

// Next returns the rank produced by an NPC of rank r.
// A produces S; S and RankNone have no successor.
func (r Rank) Next() (Rank, bool) {
	n, ok := successor[r]
	return n, ok
}

// Compare returns -1, 0 or +1 following rank order
func (r Rank) Compare(other Rank) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	default:
		return 0
	}
}

// PetName is the display name of a pet of this rank, e.g. "C-Pet"
func (r Rank) PetName() string {
	return r.String() + "-Pet"
}

// ParseRank parses a rank letter (case-insensitive). The empty string and
// "none" parse to RankNone.
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "NONE" || s == "-" {
		return RankNone, nil
	}
	for i, name := range rankNames {
		if i > 0 && name == s {
			return Rank(i), nil
		}
	}
	return RankNone, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

// MarshalText implements encoding.TextMarshaler
func (r Rank) MarshalText() ([]byte, error) {
	if r != RankNone && !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRank, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
