package weapon

import (
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/interfaces"
)

const auraCooldown = 30.0

// Aura: постоянная зона урона вокруг игрока.
type Aura struct {
	base
	Radius float64
	Damage float64
	timer  float64
}

func NewAura(owner interfaces.Owner) *Aura {
	return &Aura{base: base{kind: defs.WeaponAura, level: 1, owner: owner}, Radius: 80, Damage: 1}
}

func (w *Aura) Upgrade() {
	w.level++
	w.Radius += 10
	w.Damage += 0.1
}

func (w *Aura) Update(dt float64, ctx interfaces.GameContext) {
	w.timer -= dt
	if w.timer > 0 || !w.active() {
		return
	}
	w.timer = w.cooldown(auraCooldown)
	pos := w.owner.Position()
	for _, e := range ctx.LiveEnemies() {
		if pos.DistanceTo(e.Pos) < w.Radius+e.Radius {
			e.TakeDamage(w.Damage, ctx)
		}
	}
}
