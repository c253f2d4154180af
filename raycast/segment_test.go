package raycast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/darkmaze/labyrinth"
)

func TestSegmentVecAndLen(t *testing.T) {
	s := Segment{A: Vec2{1, 1}, B: Vec2{4, 5}}
	assert.Equal(t, Vec2{3, 4}, s.Vec())
	assert.Equal(t, 5.0, s.Len())
	assert.Equal(t, Vec2{2.5, 3}, s.Midpoint())
}

func TestSegmentsFromEdgesScaling(t *testing.T) {
	edges := []labyrinth.Edge{
		{Start: labyrinth.Point{X: 0, Y: 0}, End: labyrinth.Point{X: 1, Y: 0}},
		{Start: labyrinth.Point{X: 2, Y: 1}, End: labyrinth.Point{X: 2, Y: 2}},
	}
	segments := SegmentsFromEdges(edges, 30)

	require.Len(t, segments, 2)
	assert.Equal(t, Segment{A: Vec2{0, 0}, B: Vec2{30, 0}}, segments[0])
	assert.Equal(t, Segment{A: Vec2{60, 30}, B: Vec2{60, 60}}, segments[1])
	for _, s := range segments {
		assert.Equal(t, 30.0, s.Len())
	}
}

func TestSegmentsFromEdgesWholeMaze(t *testing.T) {
	grid, err := labyrinth.NewGrid(5, 5)
	require.NoError(t, err)
	walls := labyrinth.NewGenerator(rand.New(rand.NewSource(3))).Generate(grid)

	segments := SegmentsFromEdges(walls, 10)
	require.Len(t, segments, len(walls))
	for _, s := range segments {
		assert.Equal(t, 10.0, s.Len(), "every maze wall is one cell long")
	}
}
