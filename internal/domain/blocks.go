package domain

import (
	"fmt"
	"sort"
)

// DefaultBlocksPerDivision caps how many service blocks a division is split into
const DefaultBlocksPerDivision = 3

// ChampionBlock is the single block shared by every Champion house
const ChampionBlock = "Champion"

// ServiceBlock derives the block label of the index-th house (0-based) of a
// division that has count houses, split into at most maxBlocks blocks.
func ServiceBlock(d Division, index, count, maxBlocks int) string {
	if d == DivisionChampion {
		return ChampionBlock
	}
	if maxBlocks < 1 {
		maxBlocks = 1
	}
	blocks := min(maxBlocks, count)
	if blocks < 1 {
		blocks = 1
	}
	letter := rune('A' + index%blocks)
	return fmt.Sprintf("%s Block %c", d, letter)
}

// AssignServiceBlocks maps house id to its service block. Houses are taken in id
// order and numbered within their division.
func AssignServiceBlocks(houses []House, maxBlocks int) map[int]string {
	ordered := CloneHouses(houses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	counts := make(map[Division]int)
	for _, h := range ordered {
		counts[h.Division]++
	}

	blocks := make(map[int]string, len(ordered))
	seen := make(map[Division]int)
	for _, h := range ordered {
		blocks[h.ID] = ServiceBlock(h.Division, seen[h.Division], counts[h.Division], maxBlocks)
		seen[h.Division]++
	}
	return blocks
}
