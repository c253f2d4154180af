package raycast

import "chosenoffset.com/darkmaze/labyrinth"

// Segment is a wall segment between two world-space endpoints.
type Segment struct {
	A, B Vec2
}

// Vec returns the segment's direction vector B - A.
func (s Segment) Vec() Vec2 {
	return s.B.Sub(s.A)
}

// Len returns the segment's length.
func (s Segment) Len() float64 {
	return s.Vec().Len()
}

// Midpoint returns the point halfway between the segment's endpoints.
func (s Segment) Midpoint() Vec2 {
	return s.A.Add(s.B).Scale(0.5)
}

// SegmentsFromEdges materializes maze edges as wall segments in world units,
// scaling grid coordinates by cellSize.
func SegmentsFromEdges(edges []labyrinth.Edge, cellSize float64) []Segment {
	segments := make([]Segment, len(edges))
	for i, e := range edges {
		segments[i] = Segment{
			A: Vec2{float64(e.Start.X) * cellSize, float64(e.Start.Y) * cellSize},
			B: Vec2{float64(e.End.X) * cellSize, float64(e.End.Y) * cellSize},
		}
	}
	return segments
}
