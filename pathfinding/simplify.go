package pathfinding

import (
	"math"

	"github.com/paulmach/orb"
)

// directionEpsilon tolerates floating noise when deciding whether two
// consecutive segments run along different axes.
const directionEpsilon = 0.1

// Simplify reduces a polyline to its minimal orthogonal form: the first and
// last points plus every direction-change vertex. Straight runs of unit grid
// steps collapse into single segments. Running Simplify on an already
// simplified polyline returns it unchanged.
func Simplify(points orb.LineString) orb.LineString {
	if len(points) == 0 {
		return nil
	}

	simplified := orb.LineString{points[0]}

	for i := 1; i < len(points)-1; i++ {
		prev := points[i-1]
		curr := points[i]
		next := points[i+1]

		horizontalToVertical := math.Abs(prev[0]-curr[0]) > directionEpsilon &&
			math.Abs(curr[1]-next[1]) > directionEpsilon
		verticalToHorizontal := math.Abs(prev[1]-curr[1]) > directionEpsilon &&
			math.Abs(curr[0]-next[0]) > directionEpsilon

		if horizontalToVertical || verticalToHorizontal {
			simplified = append(simplified, curr)
		}
	}

	if len(points) > 1 {
		simplified = append(simplified, points[len(points)-1])
	}

	return simplified
}
