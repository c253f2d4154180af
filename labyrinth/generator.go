package labyrinth

import (
	"math/rand"
	"time"
)

// Generator produces perfect mazes with a configurable random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator using the given random source. A nil rng
// falls back to a time-seeded source; tests pass a fixed-seed source for
// reproducible mazes.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate runs randomized Kruskal over the grid's edges and returns the
// retained edges, which are the maze walls. Edges on the outer boundary are
// always retained. An interior edge is removed (carving a passage) when its
// two cells are not yet connected, and retained when removing it would only
// add a second path between already-connected cells. The result is a perfect
// maze: the passages form a spanning tree of the cells.
//
// For a fixed random source the returned slice is identical across runs.
func (g *Generator) Generate(grid *Grid) []Edge {
	edges := grid.Edges()
	g.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	uf := newUnionFind(grid.CellCount())
	walls := make([]Edge, 0, len(edges))

	for _, e := range edges {
		cells := grid.BorderingCells(e)
		if len(cells) < 2 {
			// Border edge, always a wall.
			walls = append(walls, e)
			continue
		}
		if uf.union(cells[0], cells[1]) {
			// The edge separated two disconnected regions; removing it
			// carves a passage between them.
			continue
		}
		walls = append(walls, e)
	}

	return walls
}
