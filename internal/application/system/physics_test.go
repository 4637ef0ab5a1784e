package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/nova/internal/domain/entity"
)

func TestPhysicsSystem_MovesEveryActor(t *testing.T) {
	sys := NewPhysicsSystem()
	l := createTestLevel()
	enemy := entity.NewShortScope(entity.Rect{X: 1000, Y: 500, W: 40, H: 100}, entity.TypeDefault)
	l.Enemies = []entity.Character{enemy}
	l.FinalBoss = entity.NewFinalBoss(entity.Rect{X: 3000, Y: 400, W: 180, H: 200}, entity.TypeDefault)
	l.Finalize()
	l.Player.MoveRight(true)

	sys.Update(l)

	assert.Equal(t, 103, l.Player.Rect.X)
	assert.Equal(t, 600, l.Player.Rect.Bottom())
	assert.Equal(t, 1001, enemy.Rect.X)
	assert.Equal(t, 3002, l.FinalBoss.Rect.X)
	// Companion steers to 60px above-left of the moved player.
	assert.Equal(t, 43, l.Companion.Rect.X)
}

func TestPhysicsSystem_DeadPlayerStays(t *testing.T) {
	sys := NewPhysicsSystem()
	l := createTestLevel()
	l.Finalize()
	l.Player.Rect.Y = 0
	l.Player.Dead = true

	sys.Update(l)

	assert.Equal(t, 0, l.Player.Rect.Y)
}

func TestPhysicsSystem_NoObstaclesFreeFall(t *testing.T) {
	sys := NewPhysicsSystem()
	l := entity.NewLevel(1, 0, 0)
	l.Finalize()
	y := l.Player.Rect.Y

	for i := 0; i < 3; i++ {
		sys.Update(l)
	}

	assert.Equal(t, y+6, l.Player.Rect.Y)
}
