// Package obstacles maintains the padded rectangular no-entry regions the
// grid search must route around. Obstacles come from two sources: component
// footprints and already-drawn connection segments.
package obstacles

import (
	"fmt"

	"github.com/paulmach/orb"

	"pfd/geometry"
)

// ComponentPadding is the clearance, in grid cells, kept around component
// footprints on every side.
const ComponentPadding = 2

// Obstacle is an axis-aligned rectangle in grid units. Its footprint is the
// half-open range [X, X+Width) x [Y, Y+Height).
type Obstacle struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell falls inside the obstacle.
func (o Obstacle) Contains(c geometry.Cell) bool {
	return c.X >= o.X && c.X < o.X+o.Width &&
		c.Y >= o.Y && c.Y < o.Y+o.Height
}

// String returns a debug representation of the obstacle.
func (o Obstacle) String() string {
	return fmt.Sprintf("Obstacle(x=%d, y=%d, w=%d, h=%d)", o.X, o.Y, o.Width, o.Height)
}

// Index stores the obstacles for one routing pass and answers
// point-containment queries. It is rebuilt before every route; nothing
// persists across unrelated requests.
type Index struct {
	resolution float64
	obstacles  []Obstacle
}

// NewIndex creates an empty index for the given grid resolution.
func NewIndex(resolution float64) *Index {
	return &Index{resolution: resolution}
}

// Resolution returns the grid cell size in world units.
func (ix *Index) Resolution() float64 {
	return ix.resolution
}

// Add stores a raw grid-space obstacle with no padding applied.
func (ix *Index) Add(o Obstacle) {
	ix.obstacles = append(ix.obstacles, o)
}

// AddComponent registers a component's world bounding rectangle as an
// obstacle, expanded by ComponentPadding cells on all sides. Width and
// height are forced to at least one cell before padding is applied.
func (ix *Index) AddComponent(rect orb.Bound) {
	gx := int(rect.Min[0] / ix.resolution)
	gy := int(rect.Min[1] / ix.resolution)
	gw := geometry.Max(1, int((rect.Max[0]-rect.Min[0])/ix.resolution)+1)
	gh := geometry.Max(1, int((rect.Max[1]-rect.Min[1])/ix.resolution)+1)

	ix.Add(Obstacle{
		X:      gx - ComponentPadding,
		Y:      gy - ComponentPadding,
		Width:  gw + ComponentPadding*2,
		Height: gh + ComponentPadding*2,
	})
}

// AddConnection registers an existing connection segment as a thin corridor
// obstacle: the bounding box of the two endpoint cells. A segment whose
// endpoints share a column or row is widened so the corridor spans two cells
// rather than degenerating to a line. The resulting corridor is one cell of
// clearance, intentionally thinner than component padding so new routes can
// pass near, but not through, existing wires.
func (ix *Index) AddConnection(p0, p1 orb.Point) {
	a := geometry.ToGrid(p0, ix.resolution)
	b := geometry.ToGrid(p1, ix.resolution)

	minX := geometry.Min(a.X, b.X)
	maxX := geometry.Max(a.X, b.X)
	minY := geometry.Min(a.Y, b.Y)
	maxY := geometry.Max(a.Y, b.Y)

	if minX == maxX {
		maxX++
	}
	if minY == maxY {
		maxY++
	}

	ix.Add(Obstacle{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	})
}

// Contains reports whether any stored obstacle covers the cell. Obstacles
// are scanned linearly; counts are bounded by what is visible in a scene,
// tens to low hundreds.
func (ix *Index) Contains(c geometry.Cell) bool {
	for _, o := range ix.obstacles {
		if o.Contains(c) {
			return true
		}
	}
	return false
}

// Clear drops all stored obstacles.
func (ix *Index) Clear() {
	ix.obstacles = ix.obstacles[:0]
}

// Len returns the number of stored obstacles.
func (ix *Index) Len() int {
	return len(ix.obstacles)
}

// Obstacles returns the stored obstacles in insertion order.
func (ix *Index) Obstacles() []Obstacle {
	return ix.obstacles
}
