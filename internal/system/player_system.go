// internal/system/player_system.go
package system

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/entity"
)

// PlayerSystem двигает игрока, ведёт рывок и обновляет его оружие.
type PlayerSystem struct {
	world   *entity.World
	combat  *CombatSystem
	effects *StatusEffectSystem
}

func NewPlayerSystem(world *entity.World, combat *CombatSystem, effects *StatusEffectSystem) *PlayerSystem {
	return &PlayerSystem{world: world, combat: combat, effects: effects}
}

// Update выполняет один тик игрока. move: вектор ввода, каждая ось в [-1, 1].
func (s *PlayerSystem) Update(dt float64, move component.Velocity) {
	p := s.world.Player
	if p == nil {
		return
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer -= dt
	}
	if p.DashCooldown > 0 {
		p.DashCooldown -= dt
	}
	s.effects.Update()

	if p.IsDashing {
		p.DashTimer -= dt
		step := p.Speed * config.DashSpeedFactor * dt
		p.Pos.X += p.DashVec.X * step
		p.Pos.Y += p.DashVec.Y * step
		s.combat.DashContact()
		if p.DashTimer <= 0 {
			p.IsDashing = false
		}
	} else if move.X != 0 || move.Y != 0 {
		p.VisualAngle = math.Atan2(move.Y, move.X)
		l := math.Hypot(move.X, move.Y)
		step := p.Speed * p.Slow.Factor * dt
		p.Pos.X += move.X / l * step
		p.Pos.Y += move.Y / l * step
	}

	p.Pos = clampInside(p.Pos, p.Radius, s.world.W, s.world.H)

	for _, w := range p.Weapons {
		w.Update(dt, s.world)
	}
	p.ClearDashTrigger()
}
