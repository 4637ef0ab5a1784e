package system

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/nova/internal/application/event"
	"github.com/younwookim/nova/internal/domain/entity"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

type fixture struct {
	cfg    *config.GameConfig
	clock  *ManualClock
	bus    *event.Bus
	events []event.Event
	combat *CombatSystem
	sim    *Simulation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cfg:   config.Default(),
		clock: NewManualClock(),
		bus:   event.NewBus(),
	}
	f.bus.Subscribe(func(e event.Event) { f.events = append(f.events, e) })
	f.combat = NewCombatSystem(&f.cfg.Combat, testRNG(), f.clock, f.bus, testLogger())
	f.sim = NewSimulation(NewPhysicsSystem(), f.combat)
	return f
}

// tick advances the clock by one 10ms tick, steps and flushes.
func (f *fixture) tick(l *entity.Level) bool {
	f.clock.Advance(10 * time.Millisecond)
	ok := f.sim.Step(l)
	f.bus.Flush()
	return ok
}

func (f *fixture) interact(l *entity.Level) {
	f.combat.Interact(l)
	f.bus.Flush()
}

func (f *fixture) count(kind event.Kind) int {
	n := 0
	for _, e := range f.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// createTestLevel returns a flat level with the player standing on the ground.
func createTestLevel() *entity.Level {
	l := entity.NewLevel(1, 8000, 720)
	l.Obstacles = []entity.Obstacle{entity.NewObstacle(entity.Rect{X: 0, Y: 600, W: 8000, H: 100})}
	l.Player = entity.NewPlayer(entity.Rect{X: 100, Y: 500, W: 60, H: 100})
	l.Companion = entity.NewCompanion(entity.Rect{X: 40, Y: 450, W: 50, H: 50})
	return l
}
