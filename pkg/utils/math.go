// pkg/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector of (x, y). A zero or non-finite vector yields (0, 0).
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, 0
	}
	return x / l, y / l
}

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CircleIntersectsRect reports whether the circle's bounding box overlaps the rectangle
// centered at (rx, ry) with the given width and height.
func CircleIntersectsRect(cx, cy, r, rx, ry, w, h float64) bool {
	return cx+r > rx-w/2 && cx-r < rx+w/2 && cy+r > ry-h/2 && cy-r < ry+h/2
}

// Finite replaces NaN and infinities with zero.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
