// internal/system/visual_effect.go
package system

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/entity"
)

// VisualEffectSystem управляет всплывающими надписями.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update двигает надписи и убирает истёкшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.world.Texts = compact(s.world.Texts, func(t *component.FloatingText) bool {
		return t.Update(deltaTime)
	})
}
