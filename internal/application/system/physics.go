package system

import "github.com/younwookim/nova/internal/domain/entity"

// PhysicsSystem advances every movable actor of a level by one tick
type PhysicsSystem struct{}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update moves the player, the companion, every enemy and the final boss,
// in that order.
func (s *PhysicsSystem) Update(l *entity.Level) {
	if !l.Player.Dead {
		l.Player.Update(l.Obstacles)
	}
	if l.Companion != nil {
		l.Companion.Update(l.Player.Rect, l.Obstacles, l.Flashbacks)
	}
	for _, e := range l.Enemies {
		e.Update(l.Obstacles)
	}
	if l.FinalBoss != nil {
		l.FinalBoss.Update(l.Obstacles)
	}
}
