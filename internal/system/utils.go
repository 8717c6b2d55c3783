// internal/system/utils.go
package system

import "math"

// crossed сообщает, пересёк ли таймер границу очередного периода за последний шаг.
func crossed(timer, dt, period float64) bool {
	if period <= 0 {
		return false
	}
	return math.Floor(timer/period) != math.Floor((timer-dt)/period)
}

// compact оставляет в срезе только элементы, для которых keep вернул true.
// Порядок сохраняется.
func compact[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}
