// Package labyrinth generates perfect mazes on a rectangular grid. A grid of
// cells is built with its full set of boundary edges, and a randomized
// Kruskal pass over those edges carves passages until exactly one simple path
// exists between any two cells. The retained edges are the maze walls.
package labyrinth

import "errors"

// ErrInvalidDimension is returned when a grid is requested with a
// non-positive width or height.
var ErrInvalidDimension = errors.New("labyrinth: grid dimensions must be positive")

// Position identifies a cell by its grid coordinates.
type Position struct {
	X, Y int
}

// Point is a grid-line intersection, the endpoint of an Edge. Points are in
// grid units; multiply by a cell size to get world coordinates.
type Point struct {
	X, Y int
}

// Edge is a unit-length segment between two adjacent grid-line points. Edges
// are comparable values; the same geometric edge produced from either of its
// two bordering cells compares equal because both cells derive it with the
// same endpoint order.
type Edge struct {
	Start, End Point
}

// Grid owns the cells and deduplicated edges of a width x height rectangular
// grid, plus the mapping from each edge to the cells that border it.
type Grid struct {
	width  int
	height int

	// edges holds every distinct edge in deterministic order: row-major cell
	// scan, top/left/bottom/right within each cell, first occurrence wins.
	edges []Edge

	// borders maps each edge to the ids of its bordering cells, length 1 for
	// border edges and 2 for interior edges. Cell id = y*width + x.
	borders map[Edge][]int
}

// NewGrid builds the cell and edge structure for a width x height grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	g := &Grid{
		width:   width,
		height:  height,
		borders: make(map[Edge][]int),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := y*width + x
			for _, e := range cellEdges(x, y) {
				if _, seen := g.borders[e]; !seen {
					g.edges = append(g.edges, e)
				}
				g.borders[e] = append(g.borders[e], id)
			}
		}
	}

	return g, nil
}

// cellEdges returns the four boundary edges of the cell at (x, y), in
// top/left/bottom/right order. Endpoint order within each edge is fixed so
// that adjacent cells produce identical Edge values for a shared edge.
func cellEdges(x, y int) [4]Edge {
	return [4]Edge{
		{Point{x, y}, Point{x + 1, y}},         // top
		{Point{x, y}, Point{x, y + 1}},         // left
		{Point{x, y + 1}, Point{x + 1, y + 1}}, // bottom
		{Point{x + 1, y}, Point{x + 1, y + 1}}, // right
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int { return g.width * g.height }

// Edges returns a copy of every distinct edge in the grid, in the grid's
// deterministic enumeration order.
func (g *Grid) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// BorderingCells returns the ids of the cells bordering the given edge: two
// for interior edges, one for edges on the grid's outer boundary, none if
// the edge does not belong to the grid.
func (g *Grid) BorderingCells(e Edge) []int {
	return g.borders[e]
}

// CellPosition converts a cell id back to its grid coordinates.
func (g *Grid) CellPosition(id int) Position {
	return Position{X: id % g.width, Y: id / g.width}
}
