package diagram

import (
	"github.com/paulmach/orb"

	"pfd/geometry"
)

// snapPrefilterPadding is the loose bounding-box margin, in world units,
// used to skip components far from the pointer before testing their grips.
const snapPrefilterPadding = 30

// SnapTarget identifies the grip a dragged connection end would attach to.
type SnapTarget struct {
	Component *Component
	GripIndex int
	Side      Side
}

// FindSnapTarget returns the first grip within snapDistance (Manhattan) of
// the pointer, skipping the excluded component (typically the connection's
// own start). The boolean is false when nothing is in range.
func FindSnapTarget(components []*Component, p orb.Point, exclude *Component, snapDistance float64) (SnapTarget, bool) {
	for _, comp := range components {
		if !geometry.PadBound(comp.Bounds, snapPrefilterPadding).Contains(p) {
			continue
		}
		for idx, g := range comp.EffectiveGrips() {
			anchor := comp.AnchorPoint(idx)
			if geometry.ManhattanLength(geometry.Sub(p, anchor)) < snapDistance {
				if comp == exclude {
					continue
				}
				return SnapTarget{Component: comp, GripIndex: idx, Side: g.Side}, true
			}
		}
	}
	return SnapTarget{}, false
}
