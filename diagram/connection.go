package diagram

import (
	"github.com/paulmach/orb"

	"pfd/geometry"
	"pfd/routing"
)

// DefaultStubLength is the base length of the straight stub leaving an
// anchor before start/end adjustments.
const DefaultStubLength = 20

// hitTolerance is the distance, in world units, within which a pointer
// counts as touching a path segment.
const hitTolerance = 5

// Connection is a routed link between two component grips (or a grip and a
// free point while the user is still dragging). Its rendered path is
// governed by three adjustment scalars whose effect is defined by
// CalculatePath; the interactive estimator reads and writes them through
// the Param accessors.
type Connection struct {
	From     *Component
	FromGrip int

	To     *Component
	ToGrip int

	// CurrentPos is the free end position while no target is attached.
	CurrentPos orb.Point

	// PathOffset shifts the middle channel perpendicular to the start stub.
	PathOffset float64
	// StartAdjust lengthens the stub leaving the start grip.
	StartAdjust float64
	// EndAdjust lengthens the stub entering the end grip.
	EndAdjust float64

	// StubLength is the base stub length before adjustments.
	StubLength float64

	Selected bool

	// snap state while dragging toward a target
	snapComponent *Component
	snapGrip      int
	snapSide      Side

	path orb.LineString
}

// NewConnection starts a connection at a component grip with a free end.
func NewConnection(from *Component, grip int) *Connection {
	c := &Connection{
		From:       from,
		FromGrip:   grip,
		StubLength: DefaultStubLength,
	}
	c.CurrentPos = from.AnchorPoint(grip)
	return c
}

// SetEndGrip attaches the free end to a component grip.
func (c *Connection) SetEndGrip(to *Component, grip int) {
	c.To = to
	c.ToGrip = grip
	c.clearSnapState()
}

// SetSnapTarget records the grip the free end would snap to on release and
// previews the path as if already attached.
func (c *Connection) SetSnapTarget(t SnapTarget) {
	c.snapComponent = t.Component
	c.snapGrip = t.GripIndex
	c.snapSide = t.Side
	c.CurrentPos = t.Component.AnchorPoint(t.GripIndex)
}

// ClearSnapTarget drops any pending snap target.
func (c *Connection) ClearSnapTarget() {
	c.clearSnapState()
}

// SnapTarget returns the pending snap target, if any.
func (c *Connection) SnapTarget() (SnapTarget, bool) {
	if c.snapComponent == nil {
		return SnapTarget{}, false
	}
	return SnapTarget{Component: c.snapComponent, GripIndex: c.snapGrip, Side: c.snapSide}, true
}

func (c *Connection) clearSnapState() {
	c.snapComponent = nil
	c.snapGrip = 0
	c.snapSide = ""
}

// Path returns the current polyline. Callers that mutate it must copy.
func (c *Connection) Path() orb.LineString {
	return c.path
}

// SetPath replaces the current polyline, bypassing path construction.
func (c *Connection) SetPath(path orb.LineString) {
	c.path = path
}

// Segments returns the path as endpoint pairs, the form consumed by the
// obstacle index for already-routed connections.
func (c *Connection) Segments() [][2]orb.Point {
	if len(c.path) < 2 {
		return nil
	}
	segments := make([][2]orb.Point, 0, len(c.path)-1)
	for i := 0; i < len(c.path)-1; i++ {
		segments = append(segments, [2]orb.Point{c.path[i], c.path[i+1]})
	}
	return segments
}

// endAnchor resolves the end point and side of the connection: the attached
// grip, a pending snap target, or the free pointer position.
func (c *Connection) endAnchor() (orb.Point, Side, bool) {
	if c.To != nil {
		return c.To.AnchorPoint(c.ToGrip), c.To.GripSide(c.ToGrip), true
	}
	if c.snapComponent != nil {
		return c.snapComponent.AnchorPoint(c.snapGrip), c.snapSide, true
	}
	return c.CurrentPos, "", false
}

// CalculatePath rebuilds the polyline from the adjustment parameters: a
// stub of StubLength+StartAdjust leaves the start grip outward, a stub of
// StubLength+EndAdjust enters the end grip, and the two are joined by a
// channel segment halfway between them, shifted by PathOffset. The result
// is always orthogonal.
func (c *Connection) CalculatePath() {
	start := c.From.AnchorPoint(c.FromGrip)
	startSide := c.From.GripSide(c.FromGrip)
	end, endSide, attached := c.endAnchor()

	startStub := geometry.Add(start, geometry.Scale(startSide.Direction(), c.StubLength+c.StartAdjust))
	endStub := end
	if attached {
		endStub = geometry.Add(end, geometry.Scale(endSide.Direction(), c.StubLength+c.EndAdjust))
	}

	var channelA, channelB orb.Point
	if startSide.Horizontal() {
		midX := (startStub[0]+endStub[0])/2 + c.PathOffset
		channelA = orb.Point{midX, startStub[1]}
		channelB = orb.Point{midX, endStub[1]}
	} else {
		midY := (startStub[1]+endStub[1])/2 + c.PathOffset
		channelA = orb.Point{startStub[0], midY}
		channelB = orb.Point{endStub[0], midY}
	}

	path := orb.LineString{start, startStub, channelA, channelB, endStub}
	if attached {
		path = append(path, end)
	}
	c.path = path
}

// AutoRoute replaces the path with an obstacle-avoiding route computed by
// the router. Components supply padded footprint obstacles and existing
// carries the segments of other connections as corridor obstacles.
func (c *Connection) AutoRoute(r *routing.Router, components []*Component, existing [][2]orb.Point, bounds *orb.Bound) {
	rects := make([]orb.Bound, len(components))
	for i, comp := range components {
		rects[i] = comp.Bounds
	}
	r.RefreshObstacles(rects, existing)

	end, _, _ := c.endAnchor()
	c.path = r.Route(c.From.AnchorPoint(c.FromGrip), end, bounds)
}

// HitTest returns the index of the first path segment within hit tolerance
// of p, or -1 when the pointer misses the connection.
func (c *Connection) HitTest(p orb.Point) int {
	for i := 0; i < len(c.path)-1; i++ {
		if geometry.DistanceToSegment(p, c.path[i], c.path[i+1]) <= hitTolerance {
			return i
		}
	}
	return -1
}

// Param returns the named adjustment scalar. Unknown names yield 0.
func (c *Connection) Param(name string) float64 {
	switch name {
	case "pathOffset":
		return c.PathOffset
	case "startAdjust":
		return c.StartAdjust
	case "endAdjust":
		return c.EndAdjust
	}
	return 0
}

// SetParam assigns the named adjustment scalar. Unknown names are ignored.
func (c *Connection) SetParam(name string, value float64) {
	switch name {
	case "pathOffset":
		c.PathOffset = value
	case "startAdjust":
		c.StartAdjust = value
	case "endAdjust":
		c.EndAdjust = value
	}
}

// Recompute rebuilds the path from the current parameters.
func (c *Connection) Recompute() {
	c.CalculatePath()
}
