package entity

import "time"

const (
	PlayerHP = 6
	// PiecesPerHeal is the piece counter modulus; each wrap restores 1 HP.
	PiecesPerHeal = 10
	// ContactDamageDelay is how long enemy contact must last before it hurts.
	ContactDamageDelay = 400 * time.Millisecond
	// InvulnerabilityDuration is the lifetime of the invulnerable flag.
	InvulnerabilityDuration = time.Second
)

// Movement tunes the player-class resolver.
type Movement struct {
	SpeedFactor  int
	Gravity      int
	MaxFallSpeed int
	JumpImpulse  int
}

// DefaultMovement returns the stock player movement values.
func DefaultMovement() Movement {
	return Movement{SpeedFactor: 3, Gravity: 1, MaxFallSpeed: 10, JumpImpulse: 17}
}

// Player is the main character.
type Player struct {
	Body
	Movement Movement
	MaxHP    int

	// Input intents, set from outside the tick.
	Left, Right bool
	Jumping     bool

	Pieces     int
	Flashbacks int

	contactActive bool
	contactStart  time.Duration

	invulnerable      bool
	invulnerableSince time.Duration
}

// NewPlayer creates a player at r with full health.
func NewPlayer(r Rect) *Player {
	return &Player{
		Body:     Body{Rect: r, HP: PlayerHP, Type: TypeDefault},
		Movement: DefaultMovement(),
		MaxHP:    PlayerHP,
	}
}

// MoveLeft sets the left intent; pressing it faces the player left.
func (p *Player) MoveLeft(enable bool) {
	p.Left = enable
	if enable {
		p.FacingLeft = true
	}
}

// MoveRight sets the right intent; pressing it faces the player right.
func (p *Player) MoveRight(enable bool) {
	p.Right = enable
	if enable {
		p.FacingLeft = false
	}
}

// Jump sets the jump intent. There is no ground check: the resolver turns
// the next landing into an upward impulse while the intent is held.
func (p *Player) Jump(enable bool) {
	p.Jumping = enable
}

// Update applies input and gravity and resolves against obstacles.
func (p *Player) Update(obstacles []Obstacle) {
	mv := p.Movement
	p.VX = mv.SpeedFactor * (boolInt(p.Right) - boolInt(p.Left))
	p.VY = min(p.VY+mv.Gravity, mv.MaxFallSpeed)

	p.Rect, p.VX, p.VY = ResolveMove(p.Rect, Motion{
		VX:          p.VX,
		VY:          p.VY,
		Jumping:     p.Jumping,
		JumpImpulse: mv.JumpImpulse,
	}, obstacles)
}

// Attack is resolved by the level against its enemies.
func (p *Player) Attack() {}

// AttackBox returns the enlarged, center-preserving attack hitbox.
func (p *Player) AttackBox(scale float64) Rect {
	return p.Rect.Scale(scale)
}

// AddPiece advances the piece counter and heals on every wrap.
func (p *Player) AddPiece() {
	p.Pieces = (p.Pieces + 1) % PiecesPerHeal
	if p.Pieces == 0 {
		p.HP++
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// AddFlashback increments the collected flashback counter.
func (p *Player) AddFlashback() {
	p.Flashbacks++
}

// StartContact starts the contact timer unless it is already running.
func (p *Player) StartContact(now time.Duration) {
	if p.contactActive {
		return
	}
	p.contactActive = true
	p.contactStart = now
}

// EndContact stops the contact timer.
func (p *Player) EndContact() {
	p.contactActive = false
}

// InContact reports whether the contact timer is running.
func (p *Player) InContact() bool {
	return p.contactActive
}

// ContactExpired reports whether contact has lasted at least delay.
// An expired timer is stopped so the next contact starts a new window.
func (p *Player) ContactExpired(now, delay time.Duration) bool {
	if !p.contactActive || now-p.contactStart < delay {
		return false
	}
	p.contactActive = false
	return true
}

// SetInvulnerable raises or clears the invulnerable flag.
func (p *Player) SetInvulnerable(enable bool, now time.Duration) {
	p.invulnerable = enable
	if enable {
		p.invulnerableSince = now
	}
}

// CheckInvulnerability expires the flag once more than
// InvulnerabilityDuration has passed and returns its current value.
func (p *Player) CheckInvulnerability(now time.Duration) bool {
	if p.invulnerable && now-p.invulnerableSince > InvulnerabilityDuration {
		p.invulnerable = false
	}
	return p.invulnerable
}

// VisibleHP returns health floored at zero.
func (p *Player) VisibleHP() int {
	return max(p.HP, 0)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
