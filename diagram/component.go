// Package diagram holds the scene model consumed by the routing engine:
// components with their grip descriptors, and connections with their
// adjustable orthogonal paths.
package diagram

import (
	"github.com/paulmach/orb"
)

// Side names the component edge a grip faces. It determines the outward
// direction of a connection stub leaving that grip.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Direction returns the outward unit vector for the side.
func (s Side) Direction() orb.Point {
	switch s {
	case SideLeft:
		return orb.Point{-1, 0}
	case SideRight:
		return orb.Point{1, 0}
	case SideTop:
		return orb.Point{0, -1}
	case SideBottom:
		return orb.Point{0, 1}
	default:
		return orb.Point{0, 0}
	}
}

// Horizontal reports whether the side's outward direction runs along the
// x axis.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Grip is a typed connection-point descriptor. X and Y position the grip as
// percentages of the component bounds (0-100).
type Grip struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Side Side    `yaml:"side"`
}

// DefaultGrips is the fallback pair used by every component that declares
// no grips of its own: one mid-height grip on each of the left and right
// edges.
var DefaultGrips = []Grip{
	{X: 0, Y: 50, Side: SideLeft},
	{X: 100, Y: 50, Side: SideRight},
}

// Component is an obstacle-producing entity on the drawing surface.
type Component struct {
	ID     int
	Bounds orb.Bound
	Grips  []Grip
}

// EffectiveGrips returns the component's grips, or DefaultGrips when none
// are declared.
func (c *Component) EffectiveGrips() []Grip {
	if len(c.Grips) == 0 {
		return DefaultGrips
	}
	return c.Grips
}

// AnchorPoint resolves a grip index to its world point. An out-of-range
// index yields the zero point.
func (c *Component) AnchorPoint(idx int) orb.Point {
	grips := c.EffectiveGrips()
	if idx < 0 || idx >= len(grips) {
		return orb.Point{}
	}
	g := grips[idx]
	return orb.Point{
		c.Bounds.Min[0] + g.X/100*(c.Bounds.Max[0]-c.Bounds.Min[0]),
		c.Bounds.Min[1] + g.Y/100*(c.Bounds.Max[1]-c.Bounds.Min[1]),
	}
}

// GripSide returns the side of the grip at idx, defaulting to left for an
// out-of-range index.
func (c *Component) GripSide(idx int) Side {
	grips := c.EffectiveGrips()
	if idx < 0 || idx >= len(grips) {
		return SideLeft
	}
	return grips[idx].Side
}

// ObstacleID identifies the component for route-cache tracking.
func (c *Component) ObstacleID() int {
	return c.ID
}

// ObstaclePosition is the position tracked by the route cache; moving the
// component invalidates cached routes.
func (c *Component) ObstaclePosition() orb.Point {
	return c.Bounds.Min
}
