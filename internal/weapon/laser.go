package weapon

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/interfaces"
)

const (
	laserSpread = 0.2
	laserSpeed  = 8.0
)

// Laser: пушка, стреляющая веером пробивающих лучей.
type Laser struct {
	base
	Cooldown float64
	Damage   float64
	timer    float64
}

func NewLaser(owner interfaces.Owner) *Laser {
	return &Laser{base: base{kind: defs.WeaponLaser, level: 1, owner: owner}, Cooldown: 180, Damage: 2.5}
}

func (w *Laser) Upgrade() {
	w.level++
	w.Damage++
	w.Cooldown *= 0.9
}

// Barrels: число лучей в залпе.
func (w *Laser) Barrels() int { return w.level + 1 }

func (w *Laser) Update(dt float64, ctx interfaces.GameContext) {
	w.timer -= dt
	if w.timer > 0 || !w.active() {
		return
	}
	w.timer = w.cooldown(w.Cooldown)

	pos := w.owner.Position()
	count := w.Barrels()
	start := w.owner.Facing() - float64(count-1)*laserSpread/2
	for i := 0; i < count; i++ {
		a := start + float64(i)*laserSpread
		ctx.AddProjectile(ctx.NewProjectile(component.SidePlayer, component.ShapeBeam,
			pos.X, pos.Y, math.Cos(a)*laserSpeed, math.Sin(a)*laserSpeed, w.Damage))
	}
	ctx.Dispatch(event.Event{Type: event.WeaponFired, Data: w.kind})
}
