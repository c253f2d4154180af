package raycast

import (
	"errors"
	"math"
	"runtime"
	"sync"
)

var (
	// ErrNoRays is returned when a Caster is requested with a non-positive
	// ray count.
	ErrNoRays = errors.New("raycast: ray count must be positive")

	// ErrDegenerateWall is returned when a zero-length wall segment is
	// supplied to NewCaster.
	ErrDegenerateWall = errors.New("raycast: wall segment has zero length")

	// ErrZeroDirection is returned when WallCollision is called with a
	// zero-length direction vector.
	ErrZeroDirection = errors.New("raycast: direction must have nonzero length")
)

// DefaultTolerance is the determinant threshold below which a ray and a wall
// are treated as parallel.
const DefaultTolerance = 1e-10

// Options configures a Caster.
type Options struct {
	// Tolerance gates the near-parallel case in the intersection math.
	Tolerance float64

	// Workers is the number of goroutines a visibility fan is split across.
	// Values below 1 fall back to a single worker.
	Workers int
}

// DefaultOptions returns the options used when NewCaster receives nil.
func DefaultOptions() *Options {
	return &Options{
		Tolerance: DefaultTolerance,
		Workers:   runtime.NumCPU(),
	}
}

// Hit is the result of one ray or collision query. OK is false when the ray
// intersected nothing.
type Hit struct {
	Point    Vec2
	Distance float64
	OK       bool
}

// Caster answers visibility-fan and movement-collision queries against an
// immutable wall set. Changing the walls means building a new Caster; a
// built Caster is safe for concurrent queries since nothing mutates it.
type Caster struct {
	walls     []Segment
	dirs      []Vec2
	tolerance float64
	workers   int
}

// NewCaster builds a Caster over the given walls with rayCount fan
// directions evenly spaced over a full turn, starting at angle 0.
func NewCaster(walls []Segment, rayCount int, opts *Options) (*Caster, error) {
	if rayCount <= 0 {
		return nil, ErrNoRays
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	owned := make([]Segment, len(walls))
	copy(owned, walls)
	for _, w := range owned {
		if w.Vec().IsZero() {
			return nil, ErrDegenerateWall
		}
	}

	dirs := make([]Vec2, rayCount)
	step := 2 * math.Pi / float64(rayCount)
	for k := range dirs {
		angle := float64(k) * step
		dirs[k] = Vec2{math.Cos(angle), math.Sin(angle)}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return &Caster{
		walls:     owned,
		dirs:      dirs,
		tolerance: tolerance,
		workers:   workers,
	}, nil
}

// RayCount returns the number of rays in the fan.
func (c *Caster) RayCount() int { return len(c.dirs) }

// Walls returns a copy of the caster's wall set.
func (c *Caster) Walls() []Segment {
	out := make([]Segment, len(c.walls))
	copy(out, c.walls)
	return out
}

// RayIntersections casts the full fan from origin and returns one Hit per
// ray in angular order. Each Hit is the nearest wall intersection along that
// ray, or OK=false if the ray crosses no wall (only possible when the walls
// do not enclose the origin).
//
// Every (ray, wall) pair is independent, so the fan is split across the
// configured worker count in contiguous ray chunks. Workers write disjoint
// index ranges of the result; the output is identical for any worker count.
func (c *Caster) RayIntersections(origin Vec2) []Hit {
	hits := make([]Hit, len(c.dirs))

	workers := c.workers
	if workers > len(c.dirs) {
		workers = len(c.dirs)
	}
	if workers <= 1 {
		c.castRange(origin, hits, 0, len(c.dirs))
		return hits
	}

	var wg sync.WaitGroup
	chunk := (len(c.dirs) + workers - 1) / workers
	for start := 0; start < len(c.dirs); start += chunk {
		end := start + chunk
		if end > len(c.dirs) {
			end = len(c.dirs)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			c.castRange(origin, hits, start, end)
		}(start, end)
	}
	wg.Wait()

	return hits
}

// castRange fills hits[start:end] with the nearest intersection for each of
// the corresponding fan directions.
func (c *Caster) castRange(origin Vec2, hits []Hit, start, end int) {
	for i := start; i < end; i++ {
		hits[i] = c.nearest(origin, c.dirs[i], false)
	}
}

// WallCollision finds the nearest wall crossed by the bounded segment from
// origin to origin+dir. The returned Hit has OK=false when no wall lies
// within the direction's own length.
func (c *Caster) WallCollision(origin, dir Vec2) (Hit, error) {
	if dir.IsZero() {
		return Hit{}, ErrZeroDirection
	}
	return c.nearest(origin, dir, true), nil
}

// nearest evaluates one ray against every wall and keeps the valid
// intersection with the smallest real-world distance t*|dir|.
func (c *Caster) nearest(origin, dir Vec2, bounded bool) Hit {
	dirLen := dir.Len()

	best := Hit{}
	for _, w := range c.walls {
		t, ok := intersectRaySegment(origin, dir, w, c.tolerance, bounded)
		if !ok {
			continue
		}
		dist := t * dirLen
		if !best.OK || dist < best.Distance {
			best = Hit{
				Point:    origin.Add(dir.Scale(t)),
				Distance: dist,
				OK:       true,
			}
		}
	}
	return best
}

// intersectRaySegment solves origin + t*dir = seg.A + u*segVec for t and u
// via Cramer's rule. A valid intersection needs u in [0,1]; t must be
// non-negative, and additionally at most 1 in bounded mode. Determinants
// within tolerance of zero mean the ray and segment are parallel, which is a
// normal no-hit outcome rather than an error.
func intersectRaySegment(origin, dir Vec2, seg Segment, tolerance float64, bounded bool) (float64, bool) {
	segVec := seg.Vec()

	det := dir.Cross(segVec)
	if math.Abs(det) < tolerance {
		return 0, false
	}

	b := seg.A.Sub(origin)
	t := b.Cross(segVec) / det
	u := b.Cross(dir) / det

	if u < 0 || u > 1 {
		return 0, false
	}
	if t < 0 || (bounded && t > 1) {
		return 0, false
	}
	return t, true
}
