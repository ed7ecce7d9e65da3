package pathfinding

import (
	"github.com/paulmach/orb"

	"pfd/geometry"
)

// maxRecoveryRadius bounds the expanding-ring search for a free cell.
const maxRecoveryRadius = 19

// NearestValidCell finds the closest passable cell to a blocked one by
// examining the square perimeter at each radius from 1 to maxRecoveryRadius.
// If every cell within the bound is blocked the original cell is returned
// unchanged; callers must tolerate a still-blocked result in fully enclosed
// cases.
func (f *Finder) NearestValidCell(c geometry.Cell, bounds *orb.Bound) geometry.Cell {
	if f.validMove(c, bounds) {
		return c
	}

	for radius := 1; radius <= maxRecoveryRadius; radius++ {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				// Only cells on the perimeter of the square.
				if geometry.Abs(dx) != radius && geometry.Abs(dy) != radius {
					continue
				}
				neighbor := geometry.Cell{X: c.X + dx, Y: c.Y + dy}
				if f.validMove(neighbor, bounds) {
					return neighbor
				}
			}
		}
	}

	return c
}
