// Package game holds the state of one maze round: the generated walls, the
// ray caster built over them, the player and goal positions, the movement
// trace, and the win flag. All geometry is in world units (pixels).
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/darkmaze/labyrinth"
	"chosenoffset.com/darkmaze/raycast"
)

// Config defines the shape of a session.
type Config struct {
	Width    int     // maze width in cells
	Height   int     // maze height in cells
	CellSize float64 // cell edge length in world units
	Rays     int     // visibility fan size
	Seed     int64   // RNG seed; 0 seeds from the clock
}

// DefaultConfig matches the original demo: a 40x20 maze of 30-unit cells
// scanned by 120 rays.
func DefaultConfig() Config {
	return Config{
		Width:    40,
		Height:   20,
		CellSize: 30,
		Rays:     120,
	}
}

// ScreenSize returns the pixel dimensions needed to show the whole maze,
// including the far border lines.
func (c Config) ScreenSize() (width, height int) {
	return c.Width*int(c.CellSize) + 1, c.Height*int(c.CellSize) + 1
}

// Session is one playable round. It is not safe for concurrent use; the
// game loop drives it from a single goroutine.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	radius float64

	id       uuid.UUID
	walls    []raycast.Segment
	caster   *raycast.Caster
	position raycast.Vec2
	goal     raycast.Vec2
	trace    []raycast.Vec2
	won      bool
}

// NewSession validates the config, seeds the session RNG, and starts the
// first round.
func NewSession(cfg Config) (*Session, error) {
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("game: cell size must be positive, got %v", cfg.CellSize)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		radius: cfg.CellSize / 4,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new round: a fresh round id, a new maze and caster, random
// player and goal cells, an empty trace.
func (s *Session) Reset() error {
	grid, err := labyrinth.NewGrid(s.cfg.Width, s.cfg.Height)
	if err != nil {
		return fmt.Errorf("game: building grid: %w", err)
	}
	edges := labyrinth.NewGenerator(s.rng).Generate(grid)
	s.walls = raycast.SegmentsFromEdges(edges, s.cfg.CellSize)

	caster, err := raycast.NewCaster(s.walls, s.cfg.Rays, nil)
	if err != nil {
		return fmt.Errorf("game: building caster: %w", err)
	}
	s.caster = caster

	s.id = uuid.New()
	s.position = s.randomCellCenter()
	s.goal = s.randomCellCenter()
	s.trace = nil
	s.won = false
	return nil
}

// randomCellCenter picks a uniformly random cell and returns its center in
// world units.
func (s *Session) randomCellCenter() raycast.Vec2 {
	return raycast.Vec2{
		X: (float64(s.rng.Intn(s.cfg.Width)) + 0.5) * s.cfg.CellSize,
		Y: (float64(s.rng.Intn(s.cfg.Height)) + 0.5) * s.cfg.CellSize,
	}
}

// Advance moves the player one tick toward target. The raw direction is the
// vector from the player to the target; if that vector crosses a wall, it is
// cut back to stop one player radius short of the intersection (going
// negative reverses it, pushing the player off a wall it is touching). The
// player then covers 10% of the adjusted direction this tick. A trace point
// is recorded once the player has moved more than one radius past the last
// one, and the round is won when the player overlaps the goal.
func (s *Session) Advance(target raycast.Vec2) {
	dir := target.Sub(s.position)
	if dir.IsZero() {
		return
	}

	hit, err := s.caster.WallCollision(s.position, dir)
	if err == nil && hit.OK && hit.Point != s.position {
		dir = hit.Point.Sub(s.position)
		dir = dir.Normalize().Scale(dir.Len() - s.radius)
	}

	s.position = s.position.Add(dir.Scale(0.1))

	if len(s.trace) == 0 || s.position.Sub(s.trace[len(s.trace)-1]).LenSq() > s.radius*s.radius {
		s.trace = append(s.trace, s.position)
	}

	if s.goal.Sub(s.position).LenSq() < s.radius*s.radius {
		s.won = true
	}
}

// ID returns the current round's id.
func (s *Session) ID() uuid.UUID { return s.id }

// Position returns the player's position.
func (s *Session) Position() raycast.Vec2 { return s.position }

// Goal returns the goal position.
func (s *Session) Goal() raycast.Vec2 { return s.goal }

// Radius returns the player circle radius.
func (s *Session) Radius() float64 { return s.radius }

// Won reports whether the player has reached the goal this round.
func (s *Session) Won() bool { return s.won }

// Walls returns the current maze's wall segments.
func (s *Session) Walls() []raycast.Segment { return s.walls }

// Trace returns the recorded movement trail.
func (s *Session) Trace() []raycast.Vec2 { return s.trace }

// Rays returns the visibility fan from the player's current position.
func (s *Session) Rays() []raycast.Hit {
	return s.caster.RayIntersections(s.position)
}

// Collision returns the wall hit between the player and target, if any.
// A target on top of the player yields no hit.
func (s *Session) Collision(target raycast.Vec2) raycast.Hit {
	dir := target.Sub(s.position)
	if dir.IsZero() {
		return raycast.Hit{}
	}
	hit, err := s.caster.WallCollision(s.position, dir)
	if err != nil {
		return raycast.Hit{}
	}
	return hit
}
