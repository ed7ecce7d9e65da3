package interact

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfd/diagram"
)

// scriptedRoute is an Adjustable whose path responds to pathOffset along a
// fixed direction and ignores the other parameters.
type scriptedRoute struct {
	params    map[string]float64
	direction orb.Point
	path      orb.LineString
}

func newScriptedRoute(direction orb.Point) *scriptedRoute {
	r := &scriptedRoute{
		params:    map[string]float64{},
		direction: direction,
	}
	r.Recompute()
	return r
}

func (r *scriptedRoute) Param(name string) float64 { return r.params[name] }
func (r *scriptedRoute) Path() orb.LineString      { return r.path }

func (r *scriptedRoute) SetParam(name string, value float64) { r.params[name] = value }

func (r *scriptedRoute) Recompute() {
	offset := r.params[ParamPathOffset]
	shift := orb.Point{r.direction[0] * offset, r.direction[1] * offset}
	r.path = orb.LineString{
		{shift[0], shift[1]},
		{shift[0] + 10, shift[1]},
	}
}

func TestBeginAdjust_MeasuresSensitivity(t *testing.T) {
	route := newScriptedRoute(orb.Point{3, 4})

	drag := BeginAdjust(route, 0)

	assert.Equal(t, ParamPathOffset, drag.Param)
	assert.Equal(t, orb.Point{3, 4}, drag.Sensitivity)
	assert.Equal(t, 0.0, drag.StartValue)
	// Probing restored the parameter and the path.
	assert.Equal(t, 0.0, route.Param(ParamPathOffset))
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}}, route.Path())
}

func TestDragApply_ProjectsPointerDelta(t *testing.T) {
	route := newScriptedRoute(orb.Point{3, 4})
	drag := BeginAdjust(route, 0)

	// (3*6 + 4*8) / (3² + 4²) = 50/25 = 2.
	value, applied := drag.Apply(route, orb.Point{6, 8})

	require.True(t, applied)
	assert.InDelta(t, 2.0, value, 1e-9)
	assert.InDelta(t, 2.0, route.Param(ParamPathOffset), 1e-9)
}

func TestDragApply_PerpendicularDeltaDoesNothingUseful(t *testing.T) {
	route := newScriptedRoute(orb.Point{1, 0})
	drag := BeginAdjust(route, 0)

	// Pointer motion perpendicular to the sensitivity projects to zero.
	value, applied := drag.Apply(route, orb.Point{0, 50})
	require.True(t, applied)
	assert.InDelta(t, 0.0, value, 1e-9)
}

func TestDragApply_TinySensitivityIsNoop(t *testing.T) {
	route := newScriptedRoute(orb.Point{0, 0})
	drag := BeginAdjust(route, 0)

	value, applied := drag.Apply(route, orb.Point{100, 100})

	assert.False(t, applied)
	assert.Equal(t, drag.StartValue, value)
	assert.Equal(t, 0.0, route.Param(ParamPathOffset))
}

func TestBeginAdjust_OutOfRangeSegment(t *testing.T) {
	route := newScriptedRoute(orb.Point{3, 4})

	drag := BeginAdjust(route, 99)

	// No measurable displacement: defaults to pathOffset with zero
	// sensitivity, and Apply refuses to act on it.
	assert.Equal(t, ParamPathOffset, drag.Param)
	assert.Equal(t, orb.Point{0, 0}, drag.Sensitivity)
	_, applied := drag.Apply(route, orb.Point{10, 10})
	assert.False(t, applied)
}

// Estimator against the real connection model: grabbing the channel segment
// must resolve to the perpendicular offset, grabbing a stub to its
// extension parameter.
func TestBeginAdjust_OverConnection(t *testing.T) {
	from := &diagram.Component{ID: 1, Bounds: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 80}}}
	to := &diagram.Component{ID: 2, Bounds: orb.Bound{Min: orb.Point{300, 100}, Max: orb.Point{400, 180}}}

	conn := diagram.NewConnection(from, 1)
	conn.SetEndGrip(to, 0)
	conn.CalculatePath()

	// Segment 2 is the vertical channel between the stubs.
	drag := BeginAdjust(conn, 2)
	assert.Equal(t, ParamPathOffset, drag.Param)
	assert.Equal(t, orb.Point{1, 0}, drag.Sensitivity)

	// Dragging the channel 25 units right moves the offset by 25.
	value, applied := drag.Apply(conn, orb.Point{25, 0})
	require.True(t, applied)
	assert.InDelta(t, 25.0, value, 1e-9)
	assert.InDelta(t, 25.0, conn.PathOffset, 1e-9)

	// Segment 0 leaves the start grip: its extension dominates.
	conn.PathOffset = 0
	conn.CalculatePath()
	drag = BeginAdjust(conn, 0)
	assert.Equal(t, ParamStartAdjust, drag.Param)
}

func TestBeginAdjust_RestoresConnectionState(t *testing.T) {
	from := &diagram.Component{ID: 1, Bounds: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{100, 80}}}
	to := &diagram.Component{ID: 2, Bounds: orb.Bound{Min: orb.Point{300, 100}, Max: orb.Point{400, 180}}}

	conn := diagram.NewConnection(from, 1)
	conn.SetEndGrip(to, 0)
	conn.CalculatePath()
	before := append(orb.LineString(nil), conn.Path()...)

	BeginAdjust(conn, 2)

	assert.Equal(t, before, conn.Path())
	assert.Equal(t, 0.0, conn.PathOffset)
	assert.Equal(t, 0.0, conn.StartAdjust)
	assert.Equal(t, 0.0, conn.EndAdjust)
}
