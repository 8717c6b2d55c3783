package weapon

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/interfaces"
)

const strikeLife = 20.0

// Strike: след молнии для отрисовки.
type Strike struct {
	Pos  component.Position
	Life float64
}

// Lightning бьёт случайных врагов независимо от расстояния.
type Lightning struct {
	base
	Cooldown float64
	Damage   float64
	timer    float64
	Strikes  []Strike
}

func NewLightning(owner interfaces.Owner) *Lightning {
	return &Lightning{base: base{kind: defs.WeaponLightning, level: 1, owner: owner}, Cooldown: 200, Damage: 6}
}

func (w *Lightning) Upgrade() {
	w.level++
	w.Damage += 2
	w.Cooldown *= 0.9
}

// Targets: число целей за разряд.
func (w *Lightning) Targets() int { return 1 + w.level/2 }

func (w *Lightning) Update(dt float64, ctx interfaces.GameContext) {
	w.timer -= dt
	kept := w.Strikes[:0]
	for _, s := range w.Strikes {
		s.Life -= dt
		if s.Life > 0 {
			kept = append(kept, s)
		}
	}
	w.Strikes = kept

	if w.timer > 0 || !w.active() {
		return
	}
	w.timer = w.cooldown(w.Cooldown)

	pool := ctx.LiveEnemies()
	rng := ctx.Rand()
	for i := 0; i < w.Targets() && len(pool) > 0; i++ {
		idx := rng.Intn(len(pool))
		e := pool[idx]
		e.TakeDamage(w.Damage, ctx)
		w.Strikes = append(w.Strikes, Strike{Pos: e.Pos, Life: strikeLife})
		pool = append(pool[:idx], pool[idx+1:]...)
		ctx.Dispatch(event.Event{Type: event.LightningStruck, Data: e.Pos})
	}
}
