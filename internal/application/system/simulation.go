package system

import "github.com/younwookim/nova/internal/domain/entity"

// Simulation runs the fixed per-tick order over a level.
type Simulation struct {
	physics *PhysicsSystem
	combat  *CombatSystem
}

// NewSimulation creates a simulation from its systems.
func NewSimulation(physics *PhysicsSystem, combat *CombatSystem) *Simulation {
	return &Simulation{physics: physics, combat: combat}
}

// Step advances l by one tick: boss attack, movement, then the
// interaction pass. A level that is over does not advance. Step reports
// whether the level advanced.
func (s *Simulation) Step(l *entity.Level) bool {
	if l.Over {
		return false
	}
	s.combat.BossAttack(l)
	s.physics.Update(l)
	s.combat.Interact(l)
	return true
}

// Attack resolves one player attack.
func (s *Simulation) Attack(l *entity.Level) {
	s.combat.PlayerAttack(l)
}
