package weapon

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/interfaces"
)

const (
	trailStep      = 20.0
	trailRadius    = 25.0
	trailTickEvery = 10.0
)

// Zone: горящий участок следа.
type Zone struct {
	Pos  component.Position
	Life float64
}

// Trail оставляет за игроком горящий след.
type Trail struct {
	base
	Duration float64
	Zones    []Zone
	last     component.Position
	started  bool
}

func NewTrail(owner interfaces.Owner) *Trail {
	return &Trail{base: base{kind: defs.WeaponTrail, level: 1, owner: owner}, Duration: 100}
}

func (w *Trail) Upgrade() {
	w.level++
	w.Duration += 20
}

func (w *Trail) Update(dt float64, ctx interfaces.GameContext) {
	pos := w.owner.Position()
	if !w.started {
		w.last, w.started = pos, true
	}
	if pos.DistanceTo(w.last) > trailStep {
		w.Zones = append(w.Zones, Zone{Pos: pos, Life: w.Duration})
		w.last = pos
	}

	damage := 0.5 + float64(w.level)*0.5
	live := w.active()
	kept := w.Zones[:0]
	for _, z := range w.Zones {
		z.Life -= dt
		if z.Life <= 0 {
			continue
		}
		kept = append(kept, z)
		if !live || math.Mod(z.Life, trailTickEvery) >= dt {
			continue
		}
		for _, e := range ctx.LiveEnemies() {
			if z.Pos.DistanceTo(e.Pos) < trailRadius+e.Radius {
				e.TakeDamage(damage, ctx)
			}
		}
	}
	w.Zones = kept
}
