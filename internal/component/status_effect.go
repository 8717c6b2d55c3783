// internal/component/status_effect.go
package component

// SlowEffect: замедление игрока полем гравитации. Пересчитывается каждый тик.
type SlowEffect struct {
	Factor float64
	Source bool // есть ли рядом источник
}
