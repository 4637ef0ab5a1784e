package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestBoss() *ClassicBoss {
	return NewClassicBoss(Rect{X: 540, Y: 300, W: 200, H: 300}, testRNG())
}

func TestSummon_Step(t *testing.T) {
	s := NewSummon(10, 20, -3, 0)
	s.Step()

	assert.Equal(t, Rect{X: 7, Y: 20, W: SummonSize, H: SummonSize}, s.Rect)
	assert.False(t, s.Vertical())
}

func TestSummon_HitBox(t *testing.T) {
	s := NewSummon(100, 50, 0, 2)

	assert.Equal(t, Rect{X: 100, Y: 50, W: 6, H: 7}, s.HitBox(4.2, 4, 10))
}

func TestNewClassicBoss(t *testing.T) {
	b := createTestBoss()

	assert.Equal(t, ClassicBossHP, b.HP)
	assert.Equal(t, PhaseRowLeft, b.Phase)
	assert.False(t, b.Attacking)
	assert.Empty(t, b.Summons)
	assert.False(t, b.PreviousDirection())
}

func TestClassicBoss_RowWaves(t *testing.T) {
	tests := []struct {
		phase  int
		startX int
	}{
		{PhaseRowLeft, 100},
		{PhaseRowRight, 150},
	}

	for _, tt := range tests {
		b := createTestBoss()
		b.Phase = tt.phase

		b.Attack()

		require.Len(t, b.Summons, 6)
		assert.True(t, b.Attacking)
		assert.True(t, b.SwordVertical())
		for i, s := range b.Summons {
			assert.Equal(t, tt.startX+i*180, s.Rect.X)
			assert.Equal(t, 50, s.Rect.Y)
			assert.Equal(t, SummonSize, s.Rect.W)
		}

		b.Attack()
		assert.Len(t, b.Summons, 6, "no second wave in flight")
		assert.Equal(t, 52, b.Summons[0].Rect.Y)
	}
}

func TestClassicBoss_PairWave(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b := NewClassicBoss(Rect{}, rand.New(rand.NewSource(seed)))
		b.Phase = PhasePair

		b.Attack()

		require.Len(t, b.Summons, 2)
		first, second := b.Summons[0].Rect, b.Summons[1].Rect
		assert.Equal(t, 1030, first.X)
		assert.Equal(t, 1030, second.X)
		assert.GreaterOrEqual(t, first.Y, 290)
		assert.LessOrEqual(t, first.Y, 450)
		assert.Equal(t, first.Y+90, second.Y)
		assert.False(t, b.SwordVertical())

		b.Attack()
		assert.Equal(t, 1027, b.Summons[0].Rect.X)
	}
}

func TestClassicBoss_EndWave(t *testing.T) {
	b := createTestBoss()
	b.Attack()

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		b.EndWave()
		assert.False(t, b.Attacking)
		assert.GreaterOrEqual(t, b.Phase, 1)
		assert.LessOrEqual(t, b.Phase, 3)
		seen[b.Phase] = true
	}
	assert.Len(t, seen, 3)
}

func TestClassicBoss_DeadBossSpawnsNothing(t *testing.T) {
	b := createTestBoss()
	b.HP = 0

	b.Attack()

	assert.Empty(t, b.Summons)
	assert.True(t, b.Removable())
}

func TestClassicBoss_RemovableNeedsEmptyWave(t *testing.T) {
	b := createTestBoss()
	b.Attack()
	b.HP = 0

	assert.False(t, b.Removable())
	b.Summons = nil
	assert.True(t, b.Removable())
}

func TestClassicBoss_SameSeedSameWave(t *testing.T) {
	a := NewClassicBoss(Rect{}, testRNG())
	b := NewClassicBoss(Rect{}, testRNG())
	a.Phase, b.Phase = PhasePair, PhasePair

	a.Attack()
	b.Attack()

	assert.Equal(t, a.Summons, b.Summons)
}
