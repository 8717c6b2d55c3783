// internal/component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo возвращает расстояние до другой позиции.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// AngleTo возвращает направление на другую позицию.
func (p Position) AngleTo(o Position) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

// Velocity — компонент скорости (пикселей за тик)
type Velocity struct {
	X, Y float64
}
