// Package pathfinding computes shortest orthogonal grid paths between two
// world points, avoiding the obstacles stored in an obstacles.Index.
package pathfinding

import (
	"github.com/paulmach/orb"

	"pfd/geometry"
	"pfd/obstacles"
)

// neighborOffsets fixes the BFS exploration order: right, left, down, up.
// This order is the tie-break between equal-length paths, so routing output
// is deterministic for identical inputs.
var neighborOffsets = [4]geometry.Cell{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Finder runs breadth-first searches over the 4-connected routing grid.
// It holds no state between calls beyond the index it queries.
type Finder struct {
	resolution float64
	index      *obstacles.Index
}

// NewFinder creates a finder over the given obstacle index. The resolution
// must match the one the index was built with.
func NewFinder(resolution float64, index *obstacles.Index) *Finder {
	return &Finder{resolution: resolution, index: index}
}

// FindPath returns the shortest orthogonal polyline from start to end in
// world coordinates, simplified to its direction-change vertices. Endpoints
// that fall inside an obstacle are repaired once, before the search, via
// NearestValidCell. When no path exists the two raw anchors are returned
// unmodified as a degraded straight-line result; FindPath never fails.
func (f *Finder) FindPath(start, end orb.Point, bounds *orb.Bound) orb.LineString {
	startCell := geometry.ToGrid(start, f.resolution)
	endCell := geometry.ToGrid(end, f.resolution)

	if f.index.Contains(startCell) {
		startCell = f.NearestValidCell(startCell, bounds)
	}
	if f.index.Contains(endCell) {
		endCell = f.NearestValidCell(endCell, bounds)
	}

	cells, ok := f.FindCells(startCell, endCell, bounds)
	if !ok {
		return orb.LineString{start, end}
	}
	return Simplify(geometry.CellsToWorld(cells, f.resolution))
}

// FindCells runs the BFS between two grid cells and returns the cell path in
// start-to-end order. The boolean is false when the frontier is exhausted
// without reaching the end cell.
func (f *Finder) FindCells(start, end geometry.Cell, bounds *orb.Bound) ([]geometry.Cell, bool) {
	visited := map[geometry.Cell]bool{start: true}
	parent := make(map[geometry.Cell]geometry.Cell)
	queue := []geometry.Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return reconstruct(parent, start, end), true
		}

		for _, d := range neighborOffsets {
			neighbor := geometry.Cell{X: current.X + d.X, Y: current.Y + d.Y}
			if visited[neighbor] {
				continue
			}
			if !f.validMove(neighbor, bounds) {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			queue = append(queue, neighbor)
		}
	}

	return nil, false
}

// validMove reports whether a cell is passable: inside the world bounds when
// given, and not covered by any obstacle. The bounds test happens in world
// space, on the cell's origin corner.
func (f *Finder) validMove(c geometry.Cell, bounds *orb.Bound) bool {
	if bounds != nil && !bounds.Contains(geometry.ToWorld(c, f.resolution)) {
		return false
	}
	return !f.index.Contains(c)
}

// reconstruct walks the parent links from end back to start and reverses
// the result into start-to-end order.
func reconstruct(parent map[geometry.Cell]geometry.Cell, start, end geometry.Cell) []geometry.Cell {
	path := []geometry.Cell{end}
	for current := end; current != start; {
		current = parent[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
