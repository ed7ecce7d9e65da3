package routing

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Tracked is implemented by obstacle-producing entities whose movement
// invalidates cached routes.
type Tracked interface {
	ObstacleID() int
	ObstaclePosition() orb.Point
}

// Cache is a change-detection gate for route recomputation. It remembers
// the last-committed scene bounds and entity positions; any mismatch forces
// a recompute. The cache is purely an optimization: discarding it or
// ignoring its verdict is always safe.
type Cache struct {
	bounds    *orb.Bound
	positions map[int]orb.Point

	unchanged     int
	invalidations int
}

// NewCache creates an empty cache. An empty cache reports every scene as
// changed until the first Commit.
func NewCache() *Cache {
	return &Cache{positions: make(map[int]orb.Point)}
}

// Changed reports whether any entity position, the entity set itself, or
// the scene bounds differ from the last committed state.
func (c *Cache) Changed(entities []Tracked, bounds *orb.Bound) bool {
	if c.changed(entities, bounds) {
		c.invalidations++
		return true
	}
	c.unchanged++
	return false
}

func (c *Cache) changed(entities []Tracked, bounds *orb.Bound) bool {
	if !boundsEqual(c.bounds, bounds) {
		return true
	}
	if len(entities) != len(c.positions) {
		return true
	}
	for _, e := range entities {
		last, ok := c.positions[e.ObstacleID()]
		if !ok || !last.Equal(e.ObstaclePosition()) {
			return true
		}
	}
	return false
}

// Commit records the current scene state as the new baseline.
func (c *Cache) Commit(entities []Tracked, bounds *orb.Bound) {
	if bounds != nil {
		b := *bounds
		c.bounds = &b
	} else {
		c.bounds = nil
	}
	c.positions = make(map[int]orb.Point, len(entities))
	for _, e := range entities {
		c.positions[e.ObstacleID()] = e.ObstaclePosition()
	}
}

// Reset discards the cached state and statistics.
func (c *Cache) Reset() {
	c.bounds = nil
	c.positions = make(map[int]orb.Point)
	c.unchanged = 0
	c.invalidations = 0
}

// Stats returns how often Changed reported a clean vs. a dirty scene.
func (c *Cache) Stats() (unchanged, invalidations int) {
	return c.unchanged, c.invalidations
}

// String returns a debug summary of the cache.
func (c *Cache) String() string {
	return fmt.Sprintf("RouteCache[entities=%d, unchanged=%d, invalidations=%d]",
		len(c.positions), c.unchanged, c.invalidations)
}

func boundsEqual(a, b *orb.Bound) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Min.Equal(b.Min) && a.Max.Equal(b.Max)
}
