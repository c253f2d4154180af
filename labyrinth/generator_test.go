package labyrinth

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateWalls builds a grid, runs a seeded generator, and returns both.
func generateWalls(t *testing.T, width, height int, seed int64) (*Grid, []Edge) {
	t.Helper()
	grid, err := NewGrid(width, height)
	require.NoError(t, err)
	gen := NewGenerator(rand.New(rand.NewSource(seed)))
	return grid, gen.Generate(grid)
}

func TestGenerateSpanningTree(t *testing.T) {
	cases := []struct{ w, h int }{{1, 1}, {2, 2}, {1, 8}, {8, 1}, {5, 4}, {12, 9}}
	for _, c := range cases {
		grid, walls := generateWalls(t, c.w, c.h, 42)

		wallSet := make(map[Edge]bool, len(walls))
		for _, e := range walls {
			wallSet[e] = true
		}

		// Removed interior edges are the passages of the dual graph. A
		// perfect maze has exactly cells-1 of them, and they connect all
		// cells without cycles.
		uf := newUnionFind(grid.CellCount())
		passages := 0
		for _, e := range grid.Edges() {
			cells := grid.BorderingCells(e)
			if len(cells) < 2 || wallSet[e] {
				continue
			}
			passages++
			assert.True(t, uf.union(cells[0], cells[1]),
				"%dx%d: passage %v closes a cycle", c.w, c.h, e)
		}
		assert.Equal(t, grid.CellCount()-1, passages, "%dx%d passage count", c.w, c.h)

		for id := 1; id < grid.CellCount(); id++ {
			assert.True(t, uf.connected(0, id),
				"%dx%d: cell %d unreachable from cell 0", c.w, c.h, id)
		}
	}
}

func TestGenerateRetainsAllBorderEdges(t *testing.T) {
	grid, walls := generateWalls(t, 7, 5, 7)

	wallSet := make(map[Edge]bool, len(walls))
	for _, e := range walls {
		wallSet[e] = true
	}
	for _, e := range grid.Edges() {
		if len(grid.BorderingCells(e)) == 1 {
			assert.True(t, wallSet[e], "border edge %v missing from walls", e)
		}
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	_, first := generateWalls(t, 10, 10, 1234)
	_, second := generateWalls(t, 10, 10, 1234)
	assert.Equal(t, first, second)

	_, other := generateWalls(t, 10, 10, 5678)
	assert.NotEqual(t, first, other, "different seeds should produce different mazes")
}

func TestGenerateOneByOne(t *testing.T) {
	grid, walls := generateWalls(t, 1, 1, 0)

	// Degenerate maze: all four boundary edges retained, nothing removed.
	assert.Len(t, walls, 4)
	assert.ElementsMatch(t, grid.Edges(), walls)
}

func TestNewGeneratorNilSource(t *testing.T) {
	gen := NewGenerator(nil)
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)
	walls := gen.Generate(grid)

	// 3x3 grid: 24 edges total, 8 passages carved.
	assert.Len(t, walls, 24-8)
}
