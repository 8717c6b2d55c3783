// internal/system/projectile.go
package system

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/entity"
)

// ProjectileSystem управляет движением снарядов и передаёт попадания в CombatSystem.
type ProjectileSystem struct {
	world        *entity.World
	combatSystem *CombatSystem
}

func NewProjectileSystem(world *entity.World, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, combatSystem: combatSystem}
}

// Update двигает снаряды, убирает истёкшие и разрешает попадания.
// Возвращает true, если вражеский снаряд добил игрока.
func (s *ProjectileSystem) Update(dt float64) bool {
	playerDead := false
	for _, pr := range s.world.Projectiles {
		pr.Update(dt)
		if pr.Expired() || playerDead {
			continue
		}
		switch pr.Side {
		case component.SidePlayer:
			s.combatSystem.ProjectileHits(pr)
		case component.SideEnemy:
			playerDead = s.combatSystem.BoltHitsPlayer(pr)
		}
	}
	s.world.Projectiles = compact(s.world.Projectiles, func(pr *component.Projectile) bool {
		return !pr.Expired()
	})
	return playerDead
}
