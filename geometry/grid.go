// Package geometry provides the coordinate types shared by the routing
// engine: integer grid cells for pathfinding and orb world points for
// everything the caller sees.
package geometry

import (
	"github.com/paulmach/orb"
)

// Cell is one discrete unit of the routing grid. X is the column and Y
// the row. Cells compare by value and are usable as map keys.
type Cell struct {
	X, Y int
}

// ToGrid maps a world point onto the grid by truncating division.
// Truncation (not rounding) is deliberate: ToGrid(ToWorld(c)) == c holds,
// while the reverse direction is lossy because many world points share a
// cell.
func ToGrid(p orb.Point, resolution float64) Cell {
	return Cell{
		X: int(p[0] / resolution),
		Y: int(p[1] / resolution),
	}
}

// ToWorld maps a grid cell back to the world point at its origin corner.
func ToWorld(c Cell, resolution float64) orb.Point {
	return orb.Point{
		float64(c.X) * resolution,
		float64(c.Y) * resolution,
	}
}

// CellsToWorld converts a cell sequence to a world-space polyline.
func CellsToWorld(cells []Cell, resolution float64) orb.LineString {
	if len(cells) == 0 {
		return nil
	}
	line := make(orb.LineString, len(cells))
	for i, c := range cells {
		line[i] = ToWorld(c, resolution)
	}
	return line
}

// ManhattanDistance is the 4-connected step count between two cells.
func ManhattanDistance(a, b Cell) int {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
