package system

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/nova/internal/application/event"
	"github.com/younwookim/nova/internal/domain/entity"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

// CombatSystem handles boss attacks, the interaction pass and player attacks
type CombatSystem struct {
	config *config.CombatConfig
	rng    *rand.Rand
	clock  Clock
	bus    *event.Bus
	log    *log.Logger
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.CombatConfig, rng *rand.Rand, clock Clock, bus *event.Bus, logger *log.Logger) *CombatSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &CombatSystem{
		config: cfg,
		rng:    rng,
		clock:  clock,
		bus:    bus,
		log:    logger,
	}
}

// BossAttack runs the classic boss attack step if a boss is present.
func (s *CombatSystem) BossAttack(l *entity.Level) {
	if l.Boss != nil {
		l.Boss.Attack()
	}
}

// Interact resolves cross-entity effects after every actor has moved.
func (s *CombatSystem) Interact(l *entity.Level) {
	p := l.Player

	if p.Rect.Bottom() > l.Height+s.config.OutOfBoundsMargin {
		p.HP = 0
		s.killPlayer(l)
		return
	}

	s.resolveSummons(l)
	if l.Over {
		return
	}

	if l.Boss != nil && l.Boss.Removable() {
		l.Boss = nil
		s.emit(l, event.Event{Kind: event.BossDefeated})
	}

	s.collectPieces(l)
	s.collectFlashbacks(l)

	s.resolveContact(l)
	if l.Over {
		return
	}

	if l.FinalBoss != nil && l.FinalBoss.JustDefeated() {
		s.emit(l, event.Event{Kind: event.FinalBossDefeated})
	}

	near := l.Door != nil && l.Door.Rect.Intersects(p.Rect) && l.DoorUnlocked()
	if near && !l.NearDoor {
		s.emit(l, event.Event{Kind: event.DoorReached})
	}
	l.NearDoor = near
}

// resolveSummons retires summons that hit the player or left the arena.
// A wave that empties this way ends and the boss re-rolls its phase.
func (s *CombatSystem) resolveSummons(l *entity.Level) {
	b := l.Boss
	if b == nil || len(b.Summons) == 0 {
		return
	}
	p := l.Player
	hb := s.config.SummonHitbox
	bounds := s.config.SummonBounds

	retired := false
	kept := b.Summons[:0]
	for _, sm := range b.Summons {
		if sm.HitBox(hb.WidthDivisor, hb.HeightDivisor, hb.Inset).Intersects(p.Rect) {
			retired = true
			if b.Attacking {
				s.damagePlayer(l, 1)
			}
			continue
		}
		if sm.Rect.Y > bounds.MaxY || sm.Rect.X < bounds.MinX {
			retired = true
			continue
		}
		kept = append(kept, sm)
	}
	b.Summons = kept

	if retired && len(b.Summons) == 0 {
		b.EndWave()
	}
}

func (s *CombatSystem) collectPieces(l *entity.Level) {
	p := l.Player
	kept := l.Pieces[:0]
	for _, pc := range l.Pieces {
		if pc.Rect.Intersects(p.Rect) {
			p.AddPiece()
			continue
		}
		kept = append(kept, pc)
	}
	l.Pieces = kept
}

func (s *CombatSystem) collectFlashbacks(l *entity.Level) {
	p := l.Player
	kept := l.Flashbacks[:0]
	for _, fo := range l.Flashbacks {
		if fo.Rect.Intersects(p.Rect) {
			p.AddFlashback()
			s.emit(l, event.Event{Kind: event.FlashbackCollected, Nb: fo.Nb, Text: fo.Text})
			continue
		}
		kept = append(kept, fo)
	}
	l.Flashbacks = kept
}

// resolveContact runs the continuous-contact damage timer.
func (s *CombatSystem) resolveContact(l *entity.Level) {
	p := l.Player
	now := s.clock.Now()

	touching := false
	for _, e := range l.Enemies {
		if e.Base().Rect.Intersects(p.Rect) {
			touching = true
			break
		}
	}
	if l.FinalBoss != nil && l.FinalBoss.Rect.Intersects(p.Rect) {
		touching = true
	}

	if !touching {
		p.EndContact()
		return
	}
	p.StartContact(now)
	if p.ContactExpired(now, s.config.ContactDamageDelay()) {
		s.damagePlayer(l, 1)
	}
}

// PlayerAttack resolves one player attack against every enemy and boss.
func (s *CombatSystem) PlayerAttack(l *entity.Level) {
	p := l.Player
	if l.Over || p.Dead {
		return
	}
	box := p.AttackBox(s.config.AttackScale)

	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		if e.Base().Rect.Intersects(box) && e.Base().TakeDamage(1) {
			p.AddPiece()
			continue
		}
		kept = append(kept, e)
	}
	clear(l.Enemies[len(kept):])
	l.Enemies = kept

	if b := l.Boss; b != nil && b.Rect.Intersects(box) {
		b.TakeDamage(1)
	}

	if fb := l.FinalBoss; fb != nil && !fb.Defeated && fb.Rect.Intersects(box) {
		fb.TakeDamage(1)
		if r := s.config.Reinforcement; fb.HP <= 0 && r.Every > 0 && fb.HP%r.Every == 0 {
			x := r.MinX + s.rng.Intn(r.MaxX-r.MinX+1)
			l.Enemies = append(l.Enemies, entity.NewShortScope(entity.NewRect(x, fb.Rect.Y, r.Width, r.Height), r.Type))
			s.log.Debug("final boss reinforcement", "x", x, "hp", fb.HP)
		}
	}
}

func (s *CombatSystem) damagePlayer(l *entity.Level, damage int) {
	p := l.Player
	p.SetInvulnerable(true, s.clock.Now())
	if p.TakeDamage(damage) {
		s.killPlayer(l)
	}
}

// killPlayer ends the level once; later calls do nothing.
func (s *CombatSystem) killPlayer(l *entity.Level) {
	if l.Over {
		return
	}
	l.Over = true
	l.Player.Dead = true
	s.log.Info("game over", "level", l.Number, "hp", l.Player.HP)
	s.emit(l, event.Event{Kind: event.GameOver})
}

func (s *CombatSystem) emit(l *entity.Level, e event.Event) {
	e.Level = l.Number
	s.bus.Emit(e)
}
