package obstacles

import (
	"strings"

	"pfd/geometry"
)

// Visualize renders the blocked cells of an index between min and max
// (inclusive) as ASCII art, one rune per cell. Blocked cells are '#',
// free cells '.'. Useful when debugging routing detours.
func Visualize(ix *Index, min, max geometry.Cell) string {
	var sb strings.Builder
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if ix.Contains(geometry.Cell{X: x, Y: y}) {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
