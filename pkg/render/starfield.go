// pkg/render/starfield.go
package render

import "go-void-survivor/internal/utils"

// Star is one background point scrolling downwards.
type Star struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// Starfield is a parallax background that wraps vertically.
type Starfield struct {
	Stars []Star
	w, h  float64
}

// NewStarfield scatters n stars over a w×h area.
func NewStarfield(n int, w, h float64, seed int64) *Starfield {
	rng := utils.NewPRNGService(seed)
	f := &Starfield{Stars: make([]Star, n), w: w, h: h}
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:     rng.Range(0, w),
			Y:     rng.Range(0, h),
			Speed: rng.Range(0.1, 0.6),
			Size:  rng.Range(0.5, 2),
		}
	}
	return f
}

// Update scrolls the stars by dt ticks.
func (f *Starfield) Update(dt float64) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Y += s.Speed * dt
		if s.Y > f.h {
			s.Y -= f.h
		}
	}
}
