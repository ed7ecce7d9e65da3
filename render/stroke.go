// Package render adapts routed polylines into drawable vector strokes.
// Actual rasterization is the caller's concern; this package only owns the
// offset-trimming math and the stroke path assembly.
package render

import (
	"github.com/paulmach/orb"
	"github.com/tdewolff/canvas"

	"pfd/geometry"
)

// TrimPolyline shrinks the first segment from its start and the last segment
// from its end by the given Euclidean distances, moving each endpoint toward
// the interior along its segment direction. This leaves a visual gap near
// the connected shapes without altering the routed geometry. Zero-length
// segments skip the trim rather than normalizing a zero vector; fewer than
// two points are returned unchanged.
func TrimPolyline(points orb.LineString, startOffset, endOffset float64) orb.LineString {
	if len(points) < 2 {
		return points
	}

	trimmed := make(orb.LineString, len(points))
	copy(trimmed, points)

	if startOffset > 0 {
		dir := geometry.Sub(trimmed[1], trimmed[0])
		if dist := geometry.Magnitude(dir); dist > 0 {
			trimmed[0] = geometry.Add(trimmed[0], geometry.Scale(dir, startOffset/dist))
		}
	}

	if endOffset > 0 {
		last := len(trimmed) - 1
		dir := geometry.Sub(trimmed[last], trimmed[last-1])
		if dist := geometry.Magnitude(dir); dist > 0 {
			trimmed[last] = geometry.Sub(trimmed[last], geometry.Scale(dir, endOffset/dist))
		}
	}

	return trimmed
}

// BuildStroke turns a routed polyline into a canvas path, applying the trim
// offsets from TrimPolyline. Fewer than two points carry no drawable stroke
// and yield an empty path.
func BuildStroke(points orb.LineString, startOffset, endOffset float64) *canvas.Path {
	path := &canvas.Path{}
	if len(points) < 2 {
		return path
	}

	trimmed := TrimPolyline(points, startOffset, endOffset)
	path.MoveTo(trimmed[0][0], trimmed[0][1])
	for _, p := range trimmed[1:] {
		path.LineTo(p[0], p[1])
	}
	return path
}

// AddJumpOvers would add visual jump arcs where the stroke crosses existing
// connection segments. Crossing indication is a documented non-feature: the
// input path is returned unchanged.
func AddJumpOvers(path *canvas.Path, existing [][2]orb.Point, jumpHeight float64) *canvas.Path {
	return path
}
