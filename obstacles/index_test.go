package obstacles

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfd/geometry"
)

func TestObstacle_ContainsHalfOpen(t *testing.T) {
	o := Obstacle{X: 2, Y: 3, Width: 4, Height: 2}

	assert.True(t, o.Contains(geometry.Cell{X: 2, Y: 3}))
	assert.True(t, o.Contains(geometry.Cell{X: 5, Y: 4}))
	// Upper edges are exclusive.
	assert.False(t, o.Contains(geometry.Cell{X: 6, Y: 3}))
	assert.False(t, o.Contains(geometry.Cell{X: 2, Y: 5}))
	assert.False(t, o.Contains(geometry.Cell{X: 1, Y: 3}))
}

func TestIndex_AddComponent_Padding(t *testing.T) {
	ix := NewIndex(10)
	ix.AddComponent(orb.Bound{Min: orb.Point{50, 50}, Max: orb.Point{100, 80}})

	require.Equal(t, 1, ix.Len())
	got := ix.Obstacles()[0]

	// Grid origin (5,5), raw extent (5+1)x(3+1), grown by 2 cells per side.
	assert.Equal(t, Obstacle{X: 3, Y: 3, Width: 10, Height: 8}, got)
}

func TestIndex_AddComponent_MinimumExtent(t *testing.T) {
	ix := NewIndex(10)
	// A degenerate zero-size rectangle still produces a real obstacle.
	ix.AddComponent(orb.Bound{Min: orb.Point{50, 50}, Max: orb.Point{50, 50}})

	got := ix.Obstacles()[0]
	assert.Equal(t, Obstacle{X: 3, Y: 3, Width: 5, Height: 5}, got)
}

func TestIndex_AddConnection_BoundingCorridor(t *testing.T) {
	ix := NewIndex(10)
	ix.AddConnection(orb.Point{20, 30}, orb.Point{70, 90})

	got := ix.Obstacles()[0]
	assert.Equal(t, Obstacle{X: 2, Y: 3, Width: 6, Height: 7}, got)
}

func TestIndex_AddConnection_DegenerateSegmentsWiden(t *testing.T) {
	ix := NewIndex(10)

	// Horizontal segment: endpoints share a row, corridor forced 2 cells tall.
	ix.AddConnection(orb.Point{0, 40}, orb.Point{60, 40})
	assert.Equal(t, Obstacle{X: 0, Y: 4, Width: 7, Height: 2}, ix.Obstacles()[0])

	// Both endpoints in the same cell.
	ix.Clear()
	ix.AddConnection(orb.Point{11, 11}, orb.Point{12, 12})
	assert.Equal(t, Obstacle{X: 1, Y: 1, Width: 2, Height: 2}, ix.Obstacles()[0])
}

func TestIndex_Contains(t *testing.T) {
	ix := NewIndex(10)
	ix.Add(Obstacle{X: 5, Y: 5, Width: 2, Height: 2})
	ix.Add(Obstacle{X: 20, Y: 0, Width: 1, Height: 1})

	assert.True(t, ix.Contains(geometry.Cell{X: 5, Y: 6}))
	assert.True(t, ix.Contains(geometry.Cell{X: 20, Y: 0}))
	assert.False(t, ix.Contains(geometry.Cell{X: 7, Y: 5}))
	assert.False(t, ix.Contains(geometry.Cell{X: 0, Y: 0}))
}

func TestIndex_Clear(t *testing.T) {
	ix := NewIndex(10)
	ix.Add(Obstacle{X: 0, Y: 0, Width: 3, Height: 3})
	require.Equal(t, 1, ix.Len())

	ix.Clear()
	assert.Equal(t, 0, ix.Len())
	assert.False(t, ix.Contains(geometry.Cell{X: 1, Y: 1}))
}

func TestVisualize(t *testing.T) {
	ix := NewIndex(10)
	ix.Add(Obstacle{X: 1, Y: 1, Width: 2, Height: 1})

	got := Visualize(ix, geometry.Cell{X: 0, Y: 0}, geometry.Cell{X: 3, Y: 2})
	want := "....\n" +
		".##.\n" +
		"....\n"
	assert.Equal(t, want, got)
}
