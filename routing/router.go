// Package routing composes the obstacle index, grid search and simplifier
// into the engine's primary entry point, and provides the recompute cache
// that lets interactive callers skip redundant routing passes.
package routing

import (
	"github.com/paulmach/orb"

	"pfd/obstacles"
	"pfd/pathfinding"
)

// Router computes obstacle-avoiding orthogonal routes between two world
// anchors. It owns a mutable obstacle index that callers refresh before each
// routing pass; no other state survives between calls.
type Router struct {
	config Config
	index  *obstacles.Index
	finder *pathfinding.Finder
}

// NewRouter creates a router with the given configuration. Invalid
// configurations fall back to defaults.
func NewRouter(config Config) *Router {
	if config.Validate() != nil {
		config = DefaultConfig()
	}
	index := obstacles.NewIndex(config.GridResolution)
	return &Router{
		config: config,
		index:  index,
		finder: pathfinding.NewFinder(config.GridResolution, index),
	}
}

// Config returns the router's configuration.
func (r *Router) Config() Config {
	return r.config
}

// Index exposes the obstacle index, primarily for inspection and debugging.
func (r *Router) Index() *obstacles.Index {
	return r.index
}

// RefreshObstacles rebuilds the obstacle index from the current scene:
// component bounding rectangles and the segments of already-routed
// connections.
func (r *Router) RefreshObstacles(components []orb.Bound, segments [][2]orb.Point) {
	r.index.Clear()
	for _, rect := range components {
		r.index.AddComponent(rect)
	}
	for _, seg := range segments {
		r.index.AddConnection(seg[0], seg[1])
	}
}

// Route returns the shortest orthogonal polyline between two world anchors,
// avoiding the current obstacles and staying within bounds when given. On an
// unreachable target it degrades to the raw two-point straight line; it
// never returns an empty polyline or an error.
func (r *Router) Route(start, end orb.Point, bounds *orb.Bound) orb.LineString {
	return r.finder.FindPath(start, end, bounds)
}
