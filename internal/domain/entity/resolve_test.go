package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obstacles(rects ...Rect) []Obstacle {
	out := make([]Obstacle, len(rects))
	for i, r := range rects {
		out[i] = NewObstacle(r)
	}
	return out
}

func TestResolveMove_NoObstacles(t *testing.T) {
	r, vx, vy := ResolveMove(Rect{X: 0, Y: 0, W: 10, H: 10}, Motion{VX: 3, VY: 7}, nil)

	assert.Equal(t, Rect{X: 3, Y: 7, W: 10, H: 10}, r)
	assert.Equal(t, 3, vx)
	assert.Equal(t, 7, vy)
}

func TestResolveMove_LandsOnGround(t *testing.T) {
	ground := obstacles(Rect{X: 0, Y: 600, W: 1000, H: 50})

	r, vx, vy := ResolveMove(Rect{X: 100, Y: 495, W: 60, H: 100}, Motion{VX: 3, VY: 10}, ground)

	assert.Equal(t, 600, r.Bottom())
	assert.Equal(t, 103, r.X)
	assert.Equal(t, 3, vx)
	assert.Equal(t, 5, vy)
}

func TestResolveMove_JumpingLandingBecomesImpulse(t *testing.T) {
	ground := obstacles(Rect{X: 0, Y: 600, W: 1000, H: 50})

	r, _, vy := ResolveMove(Rect{X: 100, Y: 500, W: 60, H: 100}, Motion{VY: 1, Jumping: true, JumpImpulse: 17}, ground)

	assert.Equal(t, -16, vy)
	assert.Equal(t, 484, r.Y)
}

func TestResolveMove_StopsAtWall(t *testing.T) {
	obs := obstacles(
		Rect{X: 0, Y: 600, W: 1000, H: 50},
		Rect{X: 162, Y: 400, W: 50, H: 200},
	)

	r, vx, vy := ResolveMove(Rect{X: 100, Y: 500, W: 60, H: 100}, Motion{VX: 3, VY: 1}, obs)

	assert.Equal(t, 102, r.X)
	assert.Equal(t, 2, vx)
	assert.Equal(t, 0, vy)
}

func TestResolveMove_HitsCeiling(t *testing.T) {
	ceiling := obstacles(Rect{X: 0, Y: 0, W: 1000, H: 100})

	r, _, vy := ResolveMove(Rect{X: 100, Y: 105, W: 60, H: 100}, Motion{VY: -16}, ceiling)

	assert.Equal(t, 100, r.Y)
	assert.Equal(t, -5, vy)
}

func TestResolveMove_NeverOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 2000; i++ {
		obs := make([]Obstacle, 1+rng.Intn(6))
		for j := range obs {
			obs[j] = NewObstacle(NewRect(rng.Intn(400), rng.Intn(400), 5+rng.Intn(120), 5+rng.Intn(120)))
		}
		start := NewRect(rng.Intn(400), rng.Intn(400), 10+rng.Intn(60), 10+rng.Intn(100))
		if !clearOf(start, obs) {
			continue
		}
		m := Motion{
			VX:          rng.Intn(41) - 20,
			VY:          rng.Intn(41) - 20,
			Jumping:     rng.Intn(2) == 0,
			JumpImpulse: 17,
		}

		r, vx, vy := ResolveMove(start, m, obs)

		require.Equal(t, start.Translate(vx, vy), r, "case %d", i)
		for _, o := range obs {
			require.False(t, r.Intersects(o.Rect()), "case %d: %+v overlaps %+v", i, r, o.Rect())
		}
	}
}

func TestResolveMove_StartingOverlapDoesNotHang(t *testing.T) {
	obs := obstacles(Rect{X: 0, Y: 0, W: 100, H: 100})

	r, vx, vy := ResolveMove(Rect{X: 10, Y: 10, W: 10, H: 10}, Motion{}, obs)

	assert.Equal(t, Rect{X: 10, Y: 10, W: 10, H: 10}, r)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}
