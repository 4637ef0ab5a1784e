package entity

// SummonSize is the side length of a boss summon.
const SummonSize = 70

// Summon is one boss attack instance. It moves by its own velocity every
// tick and is retired by the level's interaction pass.
type Summon struct {
	Rect   Rect
	VX, VY int
}

// NewSummon creates a summon at (x, y) moving by (vx, vy) per tick.
func NewSummon(x, y, vx, vy int) Summon {
	return Summon{Rect: NewRect(x, y, SummonSize, SummonSize), VX: vx, VY: vy}
}

// Step advances the summon by one tick.
func (s *Summon) Step() {
	s.Rect = s.Rect.Translate(s.VX, s.VY)
}

// Vertical reports whether the summon sweeps downward.
func (s *Summon) Vertical() bool {
	return s.VY != 0
}

// HitBox returns the inner region tested against the player. The origin
// is kept and the size shrinks by the given divisors and inset.
func (s *Summon) HitBox(wDiv, hDiv float64, inset int) Rect {
	return NewRect(s.Rect.X, s.Rect.Y,
		int(float64(s.Rect.W)/wDiv)-inset,
		int(float64(s.Rect.H)/hDiv)-inset)
}
