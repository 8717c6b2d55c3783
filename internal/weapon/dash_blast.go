package weapon

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/interfaces"
)

const (
	dashBlastDelay = 30.0
	dashBlastLife  = 20.0
)

// DashBlast оставляет отложенный взрыв в точке рывка.
type DashBlast struct {
	base
	Radius float64
	Damage float64
}

func NewDashBlast(owner interfaces.Owner) *DashBlast {
	return &DashBlast{base: base{kind: defs.WeaponDashBlast, level: 1, owner: owner}, Radius: 125, Damage: 15}
}

func (w *DashBlast) Upgrade() {
	w.level++
	w.Radius += 10
	w.Damage += 3
}

func (w *DashBlast) Update(_ float64, ctx interfaces.GameContext) {
	if !w.active() || !w.owner.DashTriggered() {
		return
	}
	pos := w.owner.Position()
	p := ctx.NewProjectile(component.SidePlayer, component.ShapeExplosion, pos.X, pos.Y, 0, 0, w.Damage)
	p.Radius = w.Radius
	p.Life, p.MaxLife = dashBlastLife, dashBlastLife
	p.Delay = dashBlastDelay
	ctx.AddProjectile(p)
}
