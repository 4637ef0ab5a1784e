package entity

const (
	// maxAxisSteps bounds the shrink loop for a single obstacle.
	maxAxisSteps = 64
	// maxSettlePasses bounds re-checks over the whole obstacle set after
	// the per-obstacle pass.
	maxSettlePasses = 4
)

// Motion is the velocity to resolve for one tick.
type Motion struct {
	VX, VY int
	// Jumping turns a landing from above into a jump impulse.
	Jumping     bool
	JumpImpulse int
}

// ResolveMove moves r by the motion's velocity, resolving overlap against
// each obstacle in collection order. It returns the new rect and the
// resolved velocity. When r starts clear of every obstacle the result is
// also clear of every obstacle.
func ResolveMove(r Rect, m Motion, obstacles []Obstacle) (Rect, int, int) {
	vx, vy := m.VX, m.VY

	for _, o := range obstacles {
		vx, vy = resolveAgainst(r, vx, vy, m, o.Rect())
	}

	// A later obstacle can push the velocity back into an earlier one.
	for pass := 0; pass < maxSettlePasses; pass++ {
		hit := false
		for _, o := range obstacles {
			if r.Translate(vx, vy).Intersects(o.Rect()) {
				hit = true
				vx, vy = resolveAgainst(r, vx, vy, Motion{}, o.Rect())
			}
		}
		if !hit {
			return r.Translate(vx, vy), vx, vy
		}
	}

	for _, c := range [][2]int{{vx, vy}, {vx, 0}, {0, vy}} {
		if clearOf(r.Translate(c[0], c[1]), obstacles) {
			return r.Translate(c[0], c[1]), c[0], c[1]
		}
	}
	return r, 0, 0
}

// resolveAgainst shrinks the velocity until r+velocity no longer overlaps o.
// The axis whose speed-to-overlap ratio is larger gets reduced; ratios use
// integer division.
func resolveAgainst(r Rect, vx, vy int, m Motion, o Rect) (int, int) {
	for step := 0; step < maxAxisSteps; step++ {
		inter := r.Translate(vx, vy).Intersection(o)
		if inter.Empty() {
			return vx, vy
		}

		fixY := abs(vy/inter.H) >= abs(vx/inter.W)
		if fixY && vy == 0 {
			fixY = false
		}
		if !fixY && vx == 0 {
			if vy == 0 {
				// Already overlapping without moving.
				return vx, vy
			}
			fixY = true
		}

		if fixY {
			switch {
			case vy > 0 && m.Jumping:
				vy -= m.JumpImpulse
			case vy > 0:
				vy -= inter.H
			default:
				vy += inter.H
			}
		} else {
			if vx > 0 {
				vx -= inter.W
			} else {
				vx += inter.W
			}
		}
	}
	return vx, vy
}

func clearOf(r Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if r.Intersects(o.Rect()) {
			return false
		}
	}
	return true
}
