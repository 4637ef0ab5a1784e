package entity

const (
	FinalBossHP    = 32
	FinalBossSpeed = 2

	// Offset applied once when the final boss is defeated.
	finalBossExitX = 2000
	finalBossExitY = -200
)

// FinalBoss patrols horizontally until defeated. A defeated boss is moved
// off stage once and stays in the level so the victory state can render.
type FinalBoss struct {
	Body
	Defeated bool

	defeatedTicks int
}

// NewFinalBoss creates the final boss walking right.
func NewFinalBoss(r Rect, typ int) *FinalBoss {
	b := &FinalBoss{Body: Body{Rect: r, HP: FinalBossHP, Type: typ}}
	b.VX = FinalBossSpeed
	return b
}

// Update walks the boss and reverses it on any obstacle hit.
func (b *FinalBoss) Update(obstacles []Obstacle) {
	if b.HP <= 0 {
		if !b.Defeated {
			b.Defeated = true
			b.Rect = b.Rect.Translate(finalBossExitX, finalBossExitY)
		}
		b.defeatedTicks++
		return
	}

	next := b.Rect.Translate(b.VX, 0)
	if overlapsAny(next, obstacles) {
		b.VX = -b.VX
		b.FacingLeft = !b.FacingLeft
		next = next.Translate(2*b.VX, 0)
	}
	b.Rect = next
}

// Attack does nothing; the final boss only hurts through contact.
func (b *FinalBoss) Attack() {}

// JustDefeated reports whether the last Update was the first one in the
// defeated state.
func (b *FinalBoss) JustDefeated() bool {
	return b.defeatedTicks == 1
}
