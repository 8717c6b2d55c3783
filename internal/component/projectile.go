// internal/component/projectile.go
package component

import (
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/types"
)

// Side: чей снаряд.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Shape: форма снаряда, определяет правила попадания.
type Shape int

const (
	// ShapeBolt уничтожается при первом попадании.
	ShapeBolt Shape = iota
	// ShapeBeam пробивает цели насквозь.
	ShapeBeam
	// ShapeExplosion: расширяющаяся область урона.
	ShapeExplosion
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID      types.EntityID
	Pos     Position
	Vel     Velocity
	Radius  float64
	Damage  float64
	Life    float64
	MaxLife float64
	// Delay: время до активации; пока Delay > 0 снаряд инертен.
	Delay  float64
	Side   Side
	Shape  Shape
	HitSet map[types.EntityID]struct{}
}

// NewProjectile создаёт снаряд с жизнью и радиусом по умолчанию.
func NewProjectile(id types.EntityID, side Side, shape Shape, x, y, vx, vy, damage float64) *Projectile {
	return &Projectile{
		ID:      id,
		Pos:     Position{X: x, Y: y},
		Vel:     Velocity{X: vx, Y: vy},
		Radius:  config.DefaultProjectileSize,
		Damage:  damage,
		Life:    config.DefaultProjectileLife,
		MaxLife: config.DefaultProjectileLife,
		Side:    side,
		Shape:   shape,
		HitSet:  make(map[types.EntityID]struct{}),
	}
}

// Update двигает снаряд. Пока идёт задержка, снаряд стоит на месте и не стареет.
func (p *Projectile) Update(dt float64) {
	if p.Delay > 0 {
		p.Delay -= dt
		return
	}
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
	p.Life -= dt
}

// Inert: снаряд ещё не активировался.
func (p *Projectile) Inert() bool { return p.Delay > 0 }

// Expired: время жизни вышло.
func (p *Projectile) Expired() bool { return p.Life <= 0 }

// Progress: доля прожитой жизни в [0, 1].
func (p *Projectile) Progress() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	v := 1 - p.Life/p.MaxLife
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HitRadius: радиус, которым снаряд проверяет попадание.
// У взрыва это текущий видимый радиус.
func (p *Projectile) HitRadius() float64 {
	if p.Shape == ShapeExplosion {
		return p.Radius * (0.2 + p.Progress()*0.8)
	}
	return p.Radius
}

// AlreadyHit проверяет, была ли цель уже поражена.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	_, ok := p.HitSet[id]
	return ok
}

// MarkHit запоминает цель; болт при этом гаснет.
func (p *Projectile) MarkHit(id types.EntityID) {
	p.HitSet[id] = struct{}{}
	if p.Shape == ShapeBolt {
		p.Life = 0
	}
}
