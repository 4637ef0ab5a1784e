package entity

// Actor type tags. The tag only selects a sprite variant.
const (
	TypeDefault = 0
	TypeVariant = 1
	TypeAlt     = 2
)

// DefaultHP is the health of an actor that does not override it.
const DefaultHP = 3

// Body holds the state shared by every movable actor.
// Variants embed it and expose it through Character.Base.
type Body struct {
	Rect   Rect
	VX, VY int
	HP     int
	Dead   bool
	Type   int

	// FacingLeft mirrors the previous-direction flag used for sprite selection.
	FacingLeft bool
}

// NewBody creates a body at the given rect with DefaultHP.
func NewBody(r Rect, typ int) Body {
	return Body{Rect: r, HP: DefaultHP, Type: typ}
}

// Base returns the body itself so embedding types satisfy Character.
func (b *Body) Base() *Body { return b }

// PreviousDirection reports the facing flag.
func (b *Body) PreviousDirection() bool { return b.FacingLeft }

// TakeDamage subtracts damage and reports whether the actor is now at or below zero.
// Health may go negative.
func (b *Body) TakeDamage(damage int) bool {
	b.HP -= damage
	return b.HP <= 0
}

// IsAlive returns true while HP is positive and the dead flag is unset.
func (b *Body) IsAlive() bool {
	return b.HP > 0 && !b.Dead
}

// Character is the capability set shared by the player and every enemy variant.
type Character interface {
	// Update advances position for one tick against the static obstacle set.
	Update(obstacles []Obstacle)
	// Attack runs the variant's attack step. Variants without one do nothing.
	Attack()
	PreviousDirection() bool
	Base() *Body
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
