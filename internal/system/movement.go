// internal/system/movement.go
package system

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
)

// seek двигает врага к цели с его скоростью.
func seek(e *component.Enemy, target component.Position, dt float64) {
	moveAlong(e, e.Pos.AngleTo(target), e.Speed, dt)
}

// moveAlong двигает врага по направлению angle.
func moveAlong(e *component.Enemy, angle, speed, dt float64) {
	e.Pos.X += math.Cos(angle) * speed * dt
	e.Pos.Y += math.Sin(angle) * speed * dt
}

// clampEnemy удерживает врага в рамке мира с запасом за краем экрана.
func clampEnemy(e *component.Enemy, w, h float64) {
	m := config.EnemyClampMargin
	e.Pos.X = math.Max(-m, math.Min(w+m, e.Pos.X))
	e.Pos.Y = math.Max(-m, math.Min(h+m, e.Pos.Y))
}

// clampInside ограничивает точку прямоугольником [lo, w-lo]×[lo, h-lo].
func clampInside(p component.Position, lo, w, h float64) component.Position {
	return component.Position{
		X: math.Max(lo, math.Min(w-lo, p.X)),
		Y: math.Max(lo, math.Min(h-lo, p.Y)),
	}
}

// bounce отражает курс дрейфа элиты от границ мира.
func bounce(e *component.Enemy, w, h float64) {
	if e.Pos.X < 0 || e.Pos.X > w {
		e.DriftAngle = math.Pi - e.DriftAngle
	}
	if e.Pos.Y < 0 || e.Pos.Y > h {
		e.DriftAngle = -e.DriftAngle
	}
}
