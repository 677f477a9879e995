package domain

import (
	"fmt"
	"strings"
)

// HouseTemplate is a preset slot layout for new houses
type HouseTemplate string

const (
	TemplateANursery HouseTemplate = "A_NURSERY"
	TemplateSNursery HouseTemplate = "S_NURSERY"
	TemplateAFactory HouseTemplate = "A_FACTORY"
	TemplateSFactory HouseTemplate = "S_FACTORY"
	TemplateEmpty    HouseTemplate = "EMPTY"
)

// Templates lists all templates in menu order
var Templates = []HouseTemplate{TemplateANursery, TemplateSNursery, TemplateAFactory, TemplateSFactory, TemplateEmpty}

type templateLayout struct {
	division Division
	ranks    [SlotsPerHouse]Rank
}

var layouts = map[HouseTemplate]templateLayout{
	TemplateANursery: {DivisionNursery, [SlotsPerHouse]Rank{RankF, RankE, RankNone}},
	TemplateSNursery: {DivisionNursery, [SlotsPerHouse]Rank{RankF, RankE, RankD}},
	TemplateAFactory: {DivisionFactory, [SlotsPerHouse]Rank{RankD, RankC, RankB}},
	TemplateSFactory: {DivisionFactory, [SlotsPerHouse]Rank{RankC, RankB, RankA}},
	TemplateEmpty:    {DivisionNursery, [SlotsPerHouse]Rank{}},
}

// ParseTemplate accepts the template name in any case, with '-' or '_'
func ParseTemplate(s string) (HouseTemplate, error) {
	t := HouseTemplate(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	if _, ok := layouts[t]; !ok {
		return "", fmt.Errorf("%w: unknown template %q", ErrInvalidArgument, s)
	}
	return t, nil
}

// Build returns a fresh house with the given id. Assigned NPCs get the default
// lifetime and no expiration.
func (t HouseTemplate) Build(id int) (House, error) {
	layout, ok := layouts[t]
	if !ok {
		return House{}, fmt.Errorf("%w: unknown template %q", ErrInvalidArgument, string(t))
	}
	h := House{ID: id, Division: layout.division}
	for i, r := range layout.ranks {
		if r == RankNone {
			continue
		}
		h.Slots[i].NPC = NPC{Rank: r, Days: DefaultNPCDays}
	}
	return h, nil
}
