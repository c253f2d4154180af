package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/darkmaze/labyrinth"
	"chosenoffset.com/darkmaze/raycast"
)

// testConfig is a small seeded maze so tests run fast and reproducibly.
func testConfig() Config {
	return Config{Width: 4, Height: 3, CellSize: 30, Rays: 36, Seed: 99}
}

func TestNewSessionValidation(t *testing.T) {
	t.Run("bad dimensions", func(t *testing.T) {
		cfg := testConfig()
		cfg.Width = 0
		_, err := NewSession(cfg)
		assert.ErrorIs(t, err, labyrinth.ErrInvalidDimension)
	})

	t.Run("bad ray count", func(t *testing.T) {
		cfg := testConfig()
		cfg.Rays = 0
		_, err := NewSession(cfg)
		assert.ErrorIs(t, err, raycast.ErrNoRays)
	})

	t.Run("bad cell size", func(t *testing.T) {
		cfg := testConfig()
		cfg.CellSize = 0
		_, err := NewSession(cfg)
		assert.Error(t, err)
	})
}

func TestNewSessionSpawnsInsideMaze(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	for name, p := range map[string]raycast.Vec2{"player": s.Position(), "goal": s.Goal()} {
		assert.GreaterOrEqual(t, p.X, 0.0, name)
		assert.LessOrEqual(t, p.X, 4*30.0, name)
		assert.GreaterOrEqual(t, p.Y, 0.0, name)
		assert.LessOrEqual(t, p.Y, 3*30.0, name)
	}
	assert.Equal(t, 7.5, s.Radius())
	assert.False(t, s.Won())
	assert.Empty(t, s.Trace())
}

func TestResetChangesRound(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	id := s.ID()
	walls := s.Walls()
	require.NoError(t, s.Reset())

	assert.NotEqual(t, id, s.ID(), "reset should mint a new round id")
	assert.NotEqual(t, walls, s.Walls(), "reset should generate a new maze")
	assert.False(t, s.Won())
	assert.Empty(t, s.Trace())
}

func TestAdvanceMovesTowardTarget(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	start := s.Position()
	// A target a few units away in open space: one tick covers 10% of it.
	target := start.Add(raycast.Vec2{X: 5})
	s.Advance(target)

	assert.InDelta(t, start.X+0.5, s.Position().X, 1e-9)
	assert.InDelta(t, start.Y, s.Position().Y, 1e-9)
}

func TestAdvanceZeroTargetIsNoOp(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	start := s.Position()
	s.Advance(start)
	assert.Equal(t, start, s.Position())
}

func TestAdvanceStopsAtWalls(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	// Hammer a far-away target for many ticks; the walls must keep the
	// player at least one radius from any wall crossing ever mattering,
	// and always inside the maze bounds.
	target := raycast.Vec2{X: 1000, Y: 1000}
	for i := 0; i < 500; i++ {
		s.Advance(target)
		p := s.Position()
		require.GreaterOrEqual(t, p.X, 0.0, "tick %d", i)
		require.LessOrEqual(t, p.X, 4*30.0, "tick %d", i)
		require.GreaterOrEqual(t, p.Y, 0.0, "tick %d", i)
		require.LessOrEqual(t, p.Y, 3*30.0, "tick %d", i)
	}
}

func TestAdvanceRecordsTrace(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	target := s.Position().Add(raycast.Vec2{X: 20})
	for i := 0; i < 50; i++ {
		s.Advance(target)
	}

	trace := s.Trace()
	require.NotEmpty(t, trace)
	// Consecutive trace points are more than one radius apart.
	for i := 1; i < len(trace); i++ {
		assert.Greater(t, trace[i].Dist(trace[i-1]), s.Radius())
	}
}

func TestAdvanceWinsAtGoal(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	// Teleport-by-ticks: advance straight at the goal; with no walls between
	// ticks shrinking the step below reach this converges, but walls can
	// block, so assert via the direct overlap rule instead: place the target
	// at the goal and run until within a radius or the tick budget ends.
	for i := 0; i < 2000 && !s.Won(); i++ {
		s.Advance(s.Goal())
	}

	if s.Goal().Sub(s.Position()).Len() < s.Radius() {
		assert.True(t, s.Won())
	}
}

func TestCollisionQuery(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	// The maze border always lies within 1000 units in any direction.
	hit := s.Collision(s.Position().Add(raycast.Vec2{X: 1000}))
	assert.True(t, hit.OK)

	// Target on the player: no direction, no hit.
	assert.False(t, s.Collision(s.Position()).OK)
}

func TestRaysAlwaysTerminate(t *testing.T) {
	s, err := NewSession(testConfig())
	require.NoError(t, err)

	hits := s.Rays()
	require.Len(t, hits, 36)
	for i, h := range hits {
		assert.True(t, h.OK, "ray %d escaped the maze border", i)
	}
}

func TestSeedDeterminism(t *testing.T) {
	a, err := NewSession(testConfig())
	require.NoError(t, err)
	b, err := NewSession(testConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Walls(), b.Walls())
	assert.Equal(t, a.Position(), b.Position())
	assert.Equal(t, a.Goal(), b.Goal())
	assert.NotEqual(t, a.ID(), b.ID(), "round ids are unique even for equal seeds")
}
