package entity

import "math"

const (
	companionMargin      = 60
	companionSightRange  = 500
	companionDeadband    = 10
	companionApproach    = 4
	companionRetreat     = -10
	companionMaxFall     = 10
	companionJumpImpulse = 17
	bobAmplitude         = 12
	bobFrequency         = 0.05
)

// Companion follows the player and drifts toward nearby flashback objects.
// It holds no ownership of what it follows.
type Companion struct {
	Rect   Rect
	VX, VY int

	// GroundLevel is the bottom edge the companion never sinks below.
	GroundLevel int

	jumpRequested bool
	time          int
}

// NewCompanion creates a companion whose ground level is its spawn bottom.
func NewCompanion(r Rect) *Companion {
	return &Companion{Rect: r, GroundLevel: r.Bottom()}
}

// Grounded reports whether the companion rests on its ground level.
func (c *Companion) Grounded() bool {
	return c.Rect.Bottom() >= c.GroundLevel
}

// Jump requests a jump for the next update. It is honored only on the ground.
func (c *Companion) Jump(enable bool) {
	if enable && c.Rect.Bottom() == c.GroundLevel {
		c.jumpRequested = true
	}
}

// Target returns the position the companion steers to, and whether it is
// locked onto a flashback object.
func (c *Companion) Target(player Rect, objects []FlashbackObject) (x, y int, locked bool) {
	if o, ok := c.nearest(objects); ok {
		return o.Rect.X - c.Rect.W, o.Rect.Y - c.Rect.H, true
	}
	return player.X - companionMargin, player.Y - companionMargin, false
}

// NearObject reports whether any flashback object is within sight.
func (c *Companion) NearObject(objects []FlashbackObject) bool {
	_, ok := c.nearest(objects)
	return ok
}

// nearest returns the first object in sight; iteration order wins.
func (c *Companion) nearest(objects []FlashbackObject) (FlashbackObject, bool) {
	cx, cy := c.Rect.Center()
	for _, o := range objects {
		ox, oy := o.Rect.Center()
		if abs(cx-ox) <= companionSightRange && abs(cy-oy) <= companionSightRange {
			return o, true
		}
	}
	return FlashbackObject{}, false
}

// Update steers toward the target, avoids obstacles, adds the bob and
// clamps to the ground level.
func (c *Companion) Update(player Rect, obstacles []Obstacle, objects []FlashbackObject) {
	tx, ty, locked := c.Target(player, objects)
	dx := tx - c.Rect.X
	dy := ty - c.Rect.Y
	if locked {
		c.VX = cruise(dx)
		c.VY = cruise(dy)
	} else {
		c.VX, c.VY = dx, dy
	}
	if c.jumpRequested {
		c.VY = -companionJumpImpulse
		c.jumpRequested = false
	}
	c.VY = min(c.VY, companionMaxFall)

	if top, hit := c.avoid(obstacles); hit && c.Rect.Y < top {
		c.Rect = c.Rect.MoveBottom(top)
		c.VY = 0
	}

	bob := int(bobAmplitude * math.Sin(bobFrequency*float64(c.time)))
	c.Rect = c.Rect.Translate(c.VX, c.VY+bob)

	if c.Rect.Bottom() > c.GroundLevel {
		c.Rect = c.Rect.MoveBottom(c.GroundLevel)
		c.VY = 0
	}
	c.time++
}

// avoid adjusts VY against every obstacle the next move would hit: a
// grounded companion hops, an airborne one rises to clear the top. It
// returns the lowest top among the hit obstacles.
func (c *Companion) avoid(obstacles []Obstacle) (top int, hit bool) {
	top = math.MinInt
	for _, o := range obstacles {
		or := o.Rect()
		if !c.Rect.Translate(c.VX, c.VY).Intersects(or) {
			continue
		}
		hit = true
		switch {
		case c.Rect.Bottom() <= or.Y && c.Grounded():
			c.VY = -companionJumpImpulse
		case c.Rect.Bottom() > or.Y && !c.Grounded():
			c.VY = or.Y - c.Rect.Bottom() - 1
		}
		top = max(top, or.Y)
	}
	return top, hit
}

// cruise snaps a delta beyond the deadband to the fixed approach or
// retreat speed and passes smaller deltas through.
func cruise(delta int) int {
	if abs(delta) <= companionDeadband {
		return delta
	}
	if delta > 0 {
		return companionApproach
	}
	return companionRetreat
}
