package entity

const (
	ShortScopeSpeed = 1
	// ledgeReach is how many steps ahead the ledge probe looks.
	ledgeReach = 60
)

// ShortScope is the patrol enemy. It walks back and forth and turns around
// at ledges and walls. It is not affected by gravity.
type ShortScope struct {
	Body
}

// NewShortScope creates a patrol enemy walking right.
func NewShortScope(r Rect, typ int) *ShortScope {
	s := &ShortScope{Body: NewBody(r, typ)}
	s.VX = ShortScopeSpeed
	return s
}

// Update turns around when there is no ground ahead, then steps forward,
// bouncing back off any obstacle in the way.
func (s *ShortScope) Update(obstacles []Obstacle) {
	probe := s.Rect.Translate(s.VX*ledgeReach, s.Rect.H/4+1)
	if !overlapsAny(probe, obstacles) {
		s.reverse()
	}

	next := s.Rect.Translate(s.VX, 0)
	if overlapsAny(next, obstacles) {
		s.reverse()
		next = next.Translate(2*s.VX, 0)
	}
	s.Rect = next
}

// Attack does nothing; patrol enemies only hurt through contact.
func (s *ShortScope) Attack() {}

func (s *ShortScope) reverse() {
	s.VX = -s.VX
	s.FacingLeft = !s.FacingLeft
}

func overlapsAny(r Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
