// Package session runs a play session across levels: it owns the current
// level, applies input intents, drives the fixed-step simulation and the
// deferred timers tied to the level's lifetime.
package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/nova/internal/application/event"
	"github.com/younwookim/nova/internal/application/state"
	"github.com/younwookim/nova/internal/application/system"
	"github.com/younwookim/nova/internal/domain/entity"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

// Options configures a session.
type Options struct {
	Config     *config.GameConfig
	Loader     *config.Loader
	Seed       int64
	StartLevel int
	Logger     *log.Logger
	// Reloads delivers level-file change notifications. Optional.
	Reloads <-chan string
}

// Banner is the narrative text shown after collecting a flashback object.
type Banner struct {
	Nb      string
	Text    string
	Visible bool
}

// Session is a single play-through. It is not safe for concurrent use;
// Update and the read accessors must be called from the same goroutine.
type Session struct {
	cfg    *config.GameConfig
	stages *system.StageLoader
	clock  *system.ManualClock
	sched  *system.Scheduler
	bus    *event.Bus
	sim    *system.Simulation
	log    *log.Logger

	level   *entity.Level
	state   state.GameState
	resume  state.GameState
	reloads <-chan string

	// pendingReload holds a change seen while the level could not restart.
	pendingReload string

	held         heldKeys
	banner       Banner
	bannerToken  system.Token
	loadingFrame int
	ticks        uint64
	seed         int64
}

type heldKeys struct {
	left, right, jump bool
}

// New creates a session and loads its starting level.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	clock := system.NewManualClock()
	bus := event.NewBus()
	combat := system.NewCombatSystem(&cfg.Combat, rng, clock, bus, logger)

	s := &Session{
		cfg:     cfg,
		stages:  system.NewStageLoader(opts.Loader, cfg, rng, logger),
		clock:   clock,
		sched:   system.NewScheduler(clock),
		bus:     bus,
		sim:     system.NewSimulation(system.NewPhysicsSystem(), combat),
		log:     logger,
		reloads: opts.Reloads,
		seed:    opts.Seed,
	}
	bus.Subscribe(s.onEvent)
	s.Load(opts.StartLevel)
	bus.Flush()
	return s
}

// Bus returns the event bus collaborators subscribe to.
func (s *Session) Bus() *event.Bus { return s.bus }

// Level returns the current level.
func (s *Session) Level() *entity.Level { return s.level }

// State returns the lifecycle state.
func (s *Session) State() state.GameState { return s.state }

// Banner returns the narrative banner.
func (s *Session) Banner() Banner { return s.banner }

// LoadingFrame returns the loading animation frame.
func (s *Session) LoadingFrame() int { return s.loadingFrame }

// Ticks returns how many simulation ticks have run.
func (s *Session) Ticks() uint64 { return s.ticks }

// Now returns the elapsed simulated time.
func (s *Session) Now() time.Duration { return s.clock.Now() }

// Seed returns the seed the session's generator started from.
func (s *Session) Seed() int64 { return s.seed }

// Update applies intents and then advances one tick. While paused only
// intents are applied: the level and the timers stay frozen.
func (s *Session) Update(intents []system.Intent) {
	s.drainReloads()
	for _, in := range intents {
		s.apply(in)
	}

	if s.state.Timed() {
		s.clock.Advance(s.cfg.Display.TickDuration())
		s.sched.RunDue()
	}
	if s.state.Simulating() && s.sim.Step(s.level) {
		s.ticks++
		if s.level.Over {
			s.state = state.StateGameOver
		}
	}
	s.bus.Flush()
}

func (s *Session) apply(in system.Intent) {
	switch in := in.(type) {
	case system.MoveIntent:
		if in.Left {
			s.held.left = in.Active
			s.level.Player.MoveLeft(in.Active)
		} else {
			s.held.right = in.Active
			s.level.Player.MoveRight(in.Active)
		}
	case system.JumpIntent:
		s.held.jump = in.Active
		s.level.Player.Jump(in.Active)
		s.level.Companion.Jump(in.Active)
	case system.AttackIntent:
		if s.state.Simulating() {
			s.sim.Attack(s.level)
		}
	case system.PauseIntent:
		s.TogglePause()
	case system.AdvanceIntent:
		if s.state.Simulating() && s.level.NearDoor {
			s.Advance()
		}
	case system.RestartIntent:
		if s.state.Restartable() {
			s.Restart()
		}
	}
}

// TogglePause pauses or resumes. Game over cannot be paused.
func (s *Session) TogglePause() {
	switch {
	case s.state == state.StatePaused:
		s.state = s.resume
	case s.state.Pausable():
		s.resume = s.state
		s.state = state.StatePaused
	}
}

// Load tears down the current level and loads number in its place.
func (s *Session) Load(number int) {
	s.teardown()
	s.level = s.stages.Load(number)
	s.restoreHeld()
	s.state = state.StatePlaying
	s.bus.Emit(event.Event{Kind: event.LevelLoaded, Level: number})
}

// Restart reloads the current level from its description.
func (s *Session) Restart() {
	s.log.Info("restarting level", "level", s.level.Number)
	s.Load(s.level.Number)
}

// Advance moves to the next level, through the loading screen when the
// catalog asks for one.
func (s *Session) Advance() {
	from := s.level.Number
	next := from + 1
	s.log.Info("advancing level", "from", from, "to", next)

	if !s.cfg.Levels.ShowsLoading(from) {
		s.Load(next)
		return
	}

	s.teardown()
	s.state = state.StateLoading
	s.loadingFrame = 0
	s.scheduleLoadingFrame()
	s.sched.After(s.cfg.Timing.LoadingDelay(), func() { s.Load(next) })
}

func (s *Session) scheduleLoadingFrame() {
	s.sched.After(s.cfg.Timing.LoadingFrame(), func() {
		s.loadingFrame++
		s.scheduleLoadingFrame()
	})
}

// teardown cancels every timer owned by the current level.
func (s *Session) teardown() {
	s.sched.CancelAll()
	s.banner = Banner{}
	s.bannerToken = 0
}

// restoreHeld re-applies held keys to a freshly loaded player.
func (s *Session) restoreHeld() {
	p := s.level.Player
	p.MoveLeft(s.held.left)
	p.MoveRight(s.held.right)
	p.Jump(s.held.jump)
}

func (s *Session) onEvent(e event.Event) {
	if e.Kind != event.FlashbackCollected {
		return
	}
	if s.bannerToken != 0 {
		s.sched.Cancel(s.bannerToken)
	}
	s.banner = Banner{Nb: e.Nb, Text: e.Text, Visible: true}
	s.bannerToken = s.sched.After(s.cfg.Timing.BannerDuration(), func() {
		s.banner.Visible = false
		s.bannerToken = 0
	})
}

func (s *Session) drainReloads() {
	if s.reloads == nil && s.pendingReload == "" {
		return
	}
drain:
	for s.reloads != nil {
		select {
		case file, ok := <-s.reloads:
			if !ok {
				s.reloads = nil
				break drain
			}
			s.pendingReload = file
		default:
			break drain
		}
	}
	if s.pendingReload == "" || s.state == state.StateLoading || s.state == state.StatePaused {
		return
	}
	s.log.Info("level file changed, reloading", "file", s.pendingReload)
	s.pendingReload = ""
	s.Restart()
}
