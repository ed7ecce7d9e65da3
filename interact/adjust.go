// Package interact resolves a user's drag of one rendered path segment to a
// single adjustment parameter, then maps pointer motion onto that parameter
// by 1-D projection. Three scalars jointly shape a connection's path; the
// estimator picks the one that best explains the grabbed segment's movement
// so the drag feels like a single physical axis.
package interact

import (
	"github.com/paulmach/orb"

	"pfd/geometry"
)

// Parameter names understood by Adjustable implementations.
const (
	ParamPathOffset  = "pathOffset"
	ParamStartAdjust = "startAdjust"
	ParamEndAdjust   = "endAdjust"
)

// adjustableParams fixes the probing order; ties keep the earlier parameter.
var adjustableParams = []string{ParamPathOffset, ParamStartAdjust, ParamEndAdjust}

// probeDelta is the finite-difference step used to measure each parameter's
// effect on the grabbed segment.
const probeDelta = 1.0

// minSensitivitySq is the squared-magnitude floor below which a parameter is
// treated as having no visible effect on the segment; pointer moves are then
// ignored rather than dividing by a near-zero projection basis.
const minSensitivitySq = 0.001

// Adjustable is a route whose polyline is rebuilt from named scalar
// parameters. The path-construction function belongs to the implementor;
// the estimator only reads and writes the scalars and asks for recomputes.
type Adjustable interface {
	Param(name string) float64
	SetParam(name string, value float64)
	Recompute()
	Path() orb.LineString
}

// Drag captures the outcome of grabbing a path segment: which parameter the
// drag controls, the segment midpoint displacement per unit of that
// parameter, and the parameter's value at drag start.
type Drag struct {
	Param       string
	Sensitivity orb.Point
	StartValue  float64
}

// BeginAdjust determines which parameter best explains movement of the
// segment at the given index. Each parameter is perturbed by probeDelta, the
// path recomputed, the segment midpoint displacement measured, and the value
// restored; the parameter with the largest squared displacement wins. The
// target's path is restored to its pre-probe state before returning.
func BeginAdjust(target Adjustable, segment int) Drag {
	base := append(orb.LineString(nil), target.Path()...)

	best := Drag{Param: ParamPathOffset}
	bestMagSq := -1.0

	for _, name := range adjustableParams {
		old := target.Param(name)
		target.SetParam(name, old+probeDelta)
		target.Recompute()
		probed := target.Path()

		var sens orb.Point
		if segment >= 0 && segment < len(base)-1 && segment < len(probed)-1 {
			baseMid := geometry.Midpoint(base[segment], base[segment+1])
			probedMid := geometry.Midpoint(probed[segment], probed[segment+1])
			sens = geometry.Sub(probedMid, baseMid)
		}

		target.SetParam(name, old)

		if magSq := geometry.MagnitudeSq(sens); magSq > bestMagSq {
			bestMagSq = magSq
			best = Drag{Param: name, Sensitivity: sens, StartValue: old}
		}
	}

	target.Recompute()
	return best
}

// Apply projects the pointer delta since drag start onto the sensitivity
// vector (t = delta·s / |s|²) and sets the chosen parameter to
// StartValue + t, recomputing the path. When the sensitivity is below the
// floor the move is a no-op and the start value is returned unchanged.
func (d Drag) Apply(target Adjustable, delta orb.Point) (float64, bool) {
	sensSq := geometry.MagnitudeSq(d.Sensitivity)
	if sensSq <= minSensitivitySq {
		return d.StartValue, false
	}

	t := geometry.Dot(delta, d.Sensitivity) / sensSq
	value := d.StartValue + t
	target.SetParam(d.Param, value)
	target.Recompute()
	return value, true
}
