package entity

import "math/rand"

const (
	ClassicBossHP = 12

	// Phase 1 and 3: a row across the top sweeping down.
	rowSummons   = 6
	rowSpacing   = 180
	rowY         = 50
	rowStartX1   = 100
	rowStartX3   = 150
	rowFallSpeed = 2

	// Phase 2: a pair at the right edge sweeping left.
	pairSummons    = 2
	pairX          = 1030
	pairMinY       = 290
	pairMaxY       = 450
	pairSpacing    = 90
	pairSweepSpeed = -3
)

// Boss phases.
const (
	PhaseRowLeft  = 1
	PhasePair     = 2
	PhaseRowRight = 3
)

// ClassicBoss is the phased summon boss. It never moves; its attack step
// either spawns a wave for the current phase or advances the wave in flight.
type ClassicBoss struct {
	Body
	Phase     int
	Attacking bool
	Summons   []Summon

	rng *rand.Rand
}

// NewClassicBoss creates a boss in phase 1 drawing randomness from rng.
func NewClassicBoss(r Rect, rng *rand.Rand) *ClassicBoss {
	return &ClassicBoss{
		Body:  Body{Rect: r, HP: ClassicBossHP, Type: TypeDefault},
		Phase: PhaseRowLeft,
		rng:   rng,
	}
}

// Update does nothing; the boss is stationary.
func (b *ClassicBoss) Update([]Obstacle) {}

// PreviousDirection is always false for the stationary boss.
func (b *ClassicBoss) PreviousDirection() bool { return false }

// Attack spawns a new wave when none is in flight, otherwise moves the
// current wave one step. A boss at or below zero health starts no new waves.
func (b *ClassicBoss) Attack() {
	if b.Attacking {
		for i := range b.Summons {
			b.Summons[i].Step()
		}
		return
	}
	if b.HP <= 0 {
		return
	}

	switch b.Phase {
	case PhaseRowLeft:
		b.spawnRow(rowStartX1)
	case PhaseRowRight:
		b.spawnRow(rowStartX3)
	case PhasePair:
		for i := 0; i < pairSummons; i++ {
			y := pairMinY + b.rng.Intn(pairMaxY-pairMinY+1) + i*pairSpacing
			b.Summons = append(b.Summons, NewSummon(pairX, y, pairSweepSpeed, 0))
		}
	default:
		return
	}
	b.Attacking = true
}

func (b *ClassicBoss) spawnRow(startX int) {
	for i := 0; i < rowSummons; i++ {
		b.Summons = append(b.Summons, NewSummon(startX+i*rowSpacing, rowY, 0, rowFallSpeed))
	}
}

// EndWave re-rolls the phase uniformly among 1..3 and allows a new wave.
func (b *ClassicBoss) EndWave() {
	b.Phase = b.rng.Intn(3) + 1
	b.Attacking = false
}

// SwordVertical reports whether the current wave sweeps downward.
func (b *ClassicBoss) SwordVertical() bool {
	return b.Phase != PhasePair
}

// Removable reports whether the boss may be taken out of the level.
func (b *ClassicBoss) Removable() bool {
	return b.HP <= 0 && len(b.Summons) == 0
}
