package weapon

import (
	"math"

	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/interfaces"
	"go-void-survivor/pkg/utils"
)

const (
	pulseCooldown = 90.0
	pulseDuration = 15.0
)

// Pulse: короткий импульсный луч сбоку от игрока.
type Pulse struct {
	base
	Range, Width float64
	timer        float64
	attackTimer  float64
	Attacking    bool
	// Left: основная сторона последней атаки.
	Left bool
}

func NewPulse(owner interfaces.Owner) *Pulse {
	return &Pulse{base: base{kind: defs.WeaponPulse, level: 1, owner: owner}, Range: 90, Width: 20}
}

// Upgrade: на 3 уровне луч шире, с 4-го ещё и длиннее.
func (w *Pulse) Upgrade() {
	w.level++
	if w.level == 3 {
		w.Width += 10
	} else if w.level >= 4 {
		w.Range += 20
		w.Width += 5
	}
}

// Damage: урон текущего уровня.
func (w *Pulse) Damage() float64 {
	d := 5 + float64(w.level)*2.5
	if w.level >= 5 {
		d += float64(w.level-4) * 8
	}
	return d
}

// Sides возвращает стороны, по которым бьёт луч: true означает влево.
func (w *Pulse) Sides() []bool {
	if w.level >= 2 {
		return []bool{w.Left, !w.Left}
	}
	return []bool{w.Left}
}

func (w *Pulse) Update(dt float64, ctx interfaces.GameContext) {
	w.timer = math.Max(0, w.timer-dt)
	if w.Attacking {
		w.attackTimer -= dt
		if w.attackTimer <= 0 {
			w.Attacking = false
		}
		return
	}
	if w.timer > 0 || !w.active() {
		return
	}
	w.Attacking = true
	w.attackTimer = pulseDuration
	w.timer = w.cooldown(pulseCooldown)

	facing := w.owner.Facing()
	w.Left = facing > math.Pi/2 || facing < -math.Pi/2
	damage := w.Damage()
	for _, left := range w.Sides() {
		w.strike(left, damage, ctx)
	}
	ctx.Dispatch(event.Event{Type: event.WeaponFired, Data: w.kind})
}

func (w *Pulse) strike(left bool, damage float64, ctx interfaces.GameContext) {
	pos := w.owner.Position()
	cx := pos.X + w.Range/2
	if left {
		cx = pos.X - w.Range/2
	}
	for _, e := range ctx.LiveEnemies() {
		if utils.CircleIntersectsRect(e.Pos.X, e.Pos.Y, e.Radius, cx, pos.Y, w.Range, w.Width+20) {
			e.TakeDamage(damage, ctx)
		}
	}
}
