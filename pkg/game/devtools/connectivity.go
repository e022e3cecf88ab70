package devtools

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// FloorRegions returns the floor cells of s grouped into 4-connected regions
// of open tiles, in grid order of their first cell. A well formed dungeon has
// exactly one region.
func FloorRegions(s *generator.State) [][]world.Cell {
	grid := s.Grid()
	if grid == nil {
		return nil
	}

	var regions [][]world.Cell
	visited := mapset.New[world.Cell]()
	grid.ForEachCell(func(row, col int, t world.Tile) {
		start := grid.CellAt(row, col)
		if !s.IsFloor(start) || visited.Has(start) {
			return
		}
		regions = append(regions, floodRegion(s, grid, start, visited))
	})
	return regions
}

// floodRegion collects the floor cells reachable from start over open tiles.
// Open tiles that are not floor (such as door gaps) are walked through but
// not counted.
func floodRegion(s *generator.State, grid *world.Grid, start world.Cell, visited mapset.Set[world.Cell]) []world.Cell {
	var region []world.Cell
	q := queue.New[world.Cell]()
	visited.Put(start)
	q.Enqueue(start)
	for !q.Empty() {
		current := q.Dequeue()
		if s.IsFloor(current) {
			region = append(region, current)
		}
		for _, n := range current.Neighbors() {
			if !grid.Contains(n) || visited.Has(n) || grid.At(n) != world.Open {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
	return region
}

// UnreachableFloor returns how many floor cells cannot be reached from the
// first floor cell by walking open tiles.
func UnreachableFloor(s *generator.State) int {
	regions := FloorRegions(s)
	if len(regions) == 0 {
		return 0
	}
	return s.FloorCount() - len(regions[0])
}
