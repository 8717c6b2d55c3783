package weapon

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/interfaces"
	"go-void-survivor/internal/types"
)

const (
	missileHitRadius   = 20.0
	missileHitCooldown = 30.0
	missileSpin        = 0.05
)

// Missile: снаряды, кружащие вокруг игрока.
type Missile struct {
	base
	Count  int
	Radius float64
	Angle  float64
	// кулдаун попадания по каждой цели
	hitCooldowns map[types.EntityID]float64
}

func NewMissile(owner interfaces.Owner) *Missile {
	return &Missile{
		base:         base{kind: defs.WeaponMissile, level: 1, owner: owner},
		Count:        1,
		Radius:       60,
		hitCooldowns: make(map[types.EntityID]float64),
	}
}

func (w *Missile) Upgrade() {
	w.level++
	w.Count++
	w.Radius += 10
}

// Positions: текущие позиции снарядов на орбите.
func (w *Missile) Positions() []component.Position {
	pos := w.owner.Position()
	out := make([]component.Position, w.Count)
	for i := range out {
		a := w.Angle + (math.Pi*2/float64(w.Count))*float64(i)
		out[i] = component.Position{X: pos.X + math.Cos(a)*w.Radius, Y: pos.Y + math.Sin(a)*w.Radius}
	}
	return out
}

// HitCooldown: оставшийся кулдаун по цели (0, если цели нет в карте).
func (w *Missile) HitCooldown(id types.EntityID) float64 { return w.hitCooldowns[id] }

func (w *Missile) Update(dt float64, ctx interfaces.GameContext) {
	w.Angle += missileSpin * dt
	for id, left := range w.hitCooldowns {
		if left > 0 {
			w.hitCooldowns[id] = left - dt
		} else {
			delete(w.hitCooldowns, id)
		}
	}
	if !w.active() {
		return
	}

	damage := 3 + float64(w.level)*0.8
	enemies := ctx.LiveEnemies()
	for _, m := range w.Positions() {
		for _, e := range enemies {
			if !e.Alive() || math.Hypot(m.X-e.Pos.X, m.Y-e.Pos.Y) >= missileHitRadius+e.Radius {
				continue
			}
			if _, cooling := w.hitCooldowns[e.ID]; cooling {
				continue
			}
			e.TakeDamage(damage, ctx)
			w.hitCooldowns[e.ID] = missileHitCooldown
		}
	}
}
