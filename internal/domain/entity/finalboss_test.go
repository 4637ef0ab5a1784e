package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFinalBoss(t *testing.T) {
	b := NewFinalBoss(Rect{X: 0, Y: 0, W: 200, H: 200}, TypeDefault)

	assert.Equal(t, FinalBossHP, b.HP)
	assert.Equal(t, FinalBossSpeed, b.VX)
	assert.False(t, b.Defeated)
}

func TestFinalBoss_NoObstaclesNoToggle(t *testing.T) {
	b := NewFinalBoss(Rect{X: 0, Y: 0, W: 200, H: 200}, TypeDefault)

	for i := 0; i < 50; i++ {
		b.Update(nil)
	}

	assert.Equal(t, 100, b.Rect.X)
	assert.False(t, b.PreviousDirection())
}

func TestFinalBoss_ReversesOnWall(t *testing.T) {
	wall := []Obstacle{NewObstacle(Rect{X: 301, Y: 0, W: 50, H: 500})}
	b := NewFinalBoss(Rect{X: 100, Y: 0, W: 200, H: 200}, TypeDefault)

	b.Update(wall)

	assert.Equal(t, 98, b.Rect.X)
	assert.Equal(t, -FinalBossSpeed, b.VX)
	assert.True(t, b.PreviousDirection())

	b.Update(wall)
	assert.Equal(t, 96, b.Rect.X)
	assert.True(t, b.PreviousDirection())
}

func TestFinalBoss_DefeatedExitsOnce(t *testing.T) {
	b := NewFinalBoss(Rect{X: 100, Y: 300, W: 200, H: 200}, TypeDefault)
	b.HP = 0

	b.Update(nil)
	assert.True(t, b.Defeated)
	assert.True(t, b.JustDefeated())
	assert.Equal(t, Rect{X: 2100, Y: 100, W: 200, H: 200}, b.Rect)

	b.Update(nil)
	assert.False(t, b.JustDefeated())
	assert.Equal(t, Rect{X: 2100, Y: 100, W: 200, H: 200}, b.Rect, "stays present off stage")
}
