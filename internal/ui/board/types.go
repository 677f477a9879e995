package board

import (
	"sort"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Column is one service block with its houses in id order
type Column struct {
	Title    string
	Division domain.Division
	Houses   []domain.House
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index
	House  int // House index within column
}

// BuildColumns groups houses into service block columns. Columns follow
// division order (Champion, Nursery, Factory) and then block label.
func BuildColumns(houses []domain.House, blocks map[int]string) []Column {
	index := make(map[string]int)
	var columns []Column
	for _, h := range houses {
		title := blocks[h.ID]
		if title == "" {
			title = string(h.Division)
		}
		i, ok := index[title]
		if !ok {
			i = len(columns)
			index[title] = i
			columns = append(columns, Column{Title: title, Division: h.Division})
		}
		columns[i].Houses = append(columns[i].Houses, h)
	}

	rank := make(map[domain.Division]int, len(domain.Divisions))
	for i, d := range domain.Divisions {
		rank[d] = i
	}
	sort.SliceStable(columns, func(i, j int) bool {
		if columns[i].Division != columns[j].Division {
			return rank[columns[i].Division] < rank[columns[j].Division]
		}
		return columns[i].Title < columns[j].Title
	})
	for i := range columns {
		hs := columns[i].Houses
		sort.Slice(hs, func(a, b int) bool { return hs[a].ID < hs[b].ID })
	}
	return columns
}

// Clamp keeps the cursor inside the columns
func (c Cursor) Clamp(columns []Column) Cursor {
	if len(columns) == 0 {
		return Cursor{}
	}
	c.Column = max(0, min(c.Column, len(columns)-1))
	n := len(columns[c.Column].Houses)
	c.House = max(0, min(c.House, n-1))
	return c
}

// Selected returns the house under the cursor
func (c Cursor) Selected(columns []Column) (domain.House, bool) {
	c = c.Clamp(columns)
	if len(columns) == 0 || len(columns[c.Column].Houses) == 0 {
		return domain.House{}, false
	}
	return columns[c.Column].Houses[c.House], true
}
