// internal/system/status_effect.go
package system

import (
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
)

// StatusEffectSystem пересчитывает эффекты, наложенные на игрока, например замедление поля гравитации.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update выставляет множитель скорости игрока на текущий тик.
func (s *StatusEffectSystem) Update() {
	p := s.world.Player
	if p == nil {
		return
	}
	p.Slow.Factor = 1
	p.Slow.Source = false
	for _, e := range s.world.Enemies {
		if !e.Alive() || e.Archetype != defs.ArchetypeGravity {
			continue
		}
		if p.Pos.DistanceTo(e.Pos) < config.GravitySlowRadius {
			p.Slow.Factor = config.GravitySlowFactor
			p.Slow.Source = true
			return
		}
	}
}
