package domain

import (
	"errors"
	"testing"
)

func TestRank_Next(t *testing.T) {
	tests := []struct {
		rank   Rank
		want   Rank
		wantOK bool
	}{
		{RankF, RankE, true},
		{RankE, RankD, true},
		{RankD, RankC, true},
		{RankC, RankB, true},
		{RankB, RankA, true},
		{RankA, RankS, true},
		{RankS, RankNone, false},
		{RankNone, RankNone, false},
	}

	for _, tt := range tests {
		got, ok := tt.rank.Next()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.Next() = %v, %v; want %v, %v", tt.rank, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRank_Ordering(t *testing.T) {
	for i := 1; i < len(AllRanks); i++ {
		lo, hi := AllRanks[i-1], AllRanks[i]
		if lo.Compare(hi) != -1 || hi.Compare(lo) != 1 || lo.Compare(lo) != 0 {
			t.Errorf("Compare(%v, %v) breaks F<E<D<C<B<A<S", lo, hi)
		}
	}
	if RankS.IsNPC() || RankNone.IsNPC() || !RankA.IsNPC() || !RankF.IsNPC() {
		t.Error("IsNPC() must hold for F..A only")
	}
}

func TestParseRank(t *testing.T) {
	tests := []struct {
		in      string
		want    Rank
		wantErr bool
	}{
		{"F", RankF, false},
		{" c ", RankC, false},
		{"s", RankS, false},
		{"", RankNone, false},
		{"none", RankNone, false},
		{"-", RankNone, false},
		{"X", RankNone, true},
		{"AA", RankNone, true},
	}

	for _, tt := range tests {
		got, err := ParseRank(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRank(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownRank) {
			t.Errorf("ParseRank(%q) err = %v, want ErrUnknownRank", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRank_Text(t *testing.T) {
	b, err := RankB.MarshalText()
	if err != nil || string(b) != "B" {
		t.Fatalf("MarshalText() = %q, %v", b, err)
	}

	var r Rank
	if err := r.UnmarshalText([]byte("a")); err != nil || r != RankA {
		t.Errorf("UnmarshalText(a) = %v, %v", r, err)
	}
	if err := r.UnmarshalText([]byte("Q")); err == nil {
		t.Error("UnmarshalText(Q) should fail")
	}
	if _, err := Rank(42).MarshalText(); err == nil {
		t.Error("MarshalText() of an invalid rank should fail")
	}
}

func TestRank_PetName(t *testing.T) {
	if got := RankC.PetName(); got != "C-Pet" {
		t.Errorf("PetName() = %q", got)
	}
}
