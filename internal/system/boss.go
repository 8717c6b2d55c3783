// internal/system/boss.go
package system

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
)

// Тайминги фаз босса, в тиках.
const (
	bossActionCooldown = 300.0
	bossExhaustedTime  = 300.0
	bossSpin           = 0.05

	bossWarnDashTime = 120.0
	bossWarnTime     = 60.0
	bossDashTime     = 40.0
	bossDashSpeed    = 6.0

	bossShootTime   = 30.0
	bossShootCount  = 2 // выстрелы от -2 до 2
	bossShootSpread = 0.15
	bossShootSpeed  = 1.2

	bossSpiralTime     = 240.0
	bossSpiralTurn     = 0.15
	bossSpiralInterval = 60.0
	bossSpiralBolts    = 6
	bossSpiralSpeed    = 1.0

	bossBurstTime     = 180.0
	bossBurstInterval = 20.0
	bossBurstJitter   = 0.2
	bossBurstSpeed    = 1.5

	bossSpinTime     = 480.0
	bossSpinTurn     = 0.2
	bossSpinInterval = 10.0
	bossSpinSpeed    = 1.5

	bossBoltDamage = 1.0
)

// bossActions: предупреждающие фазы в порядке розыгрыша, по 20% на каждую.
var bossActions = []component.EnemyState{
	component.StateWarnDash,
	component.StateWarnShoot,
	component.StateWarnSpiral,
	component.StateWarnBurst,
	component.StateWarnSpin,
}

func (s *EnemyAISystem) updateBoss(e *component.Enemy, p *entity.Player, dt float64) {
	if e.State == component.StateExhausted && e.Timer == 0 {
		s.world.Dispatch(event.Event{Type: event.BossExhausted, Data: e.Enrage})
	}
	e.Timer += dt
	e.Facing += bossSpin * dt

	if e.State == component.StateExhausted {
		if e.Timer > bossExhaustedTime {
			s.enterBossState(e, component.StateChasing)
		}
		return
	}

	toPlayer := e.Pos.AngleTo(p.Pos)
	switch e.State {
	case component.StateChasing:
		seek(e, p.Pos, dt)
		e.ActionCooldown -= dt
		if e.ActionCooldown <= 0 {
			r := s.world.Rand().Float64()
			idx := int(r * float64(len(bossActions)))
			if idx >= len(bossActions) {
				idx = len(bossActions) - 1
			}
			s.enterBossState(e, bossActions[idx])
			e.ActionCooldown = bossActionCooldown
		}

	case component.StateWarnDash:
		if e.Timer > bossWarnDashTime {
			s.enterBossState(e, component.StateDash)
			e.DashAngle = toPlayer
		}
	case component.StateDash:
		moveAlong(e, e.DashAngle, bossDashSpeed, dt)
		if e.Timer > bossDashTime {
			s.enterBossState(e, component.StateChasing)
		}

	case component.StateWarnShoot:
		if e.Timer > bossWarnTime {
			s.enterBossState(e, component.StateShoot)
			for i := -bossShootCount; i <= bossShootCount; i++ {
				s.fireBolt(e, toPlayer+float64(i)*bossShootSpread, bossShootSpeed)
			}
			s.world.Dispatch(event.Event{Type: event.EnemyFired, Data: e.Pos})
		}
	case component.StateShoot:
		if e.Timer > bossShootTime {
			s.enterBossState(e, component.StateChasing)
		}

	case component.StateWarnSpiral:
		if e.Timer > bossWarnTime {
			s.enterBossState(e, component.StateSpiral)
		}
	case component.StateSpiral:
		// ярость ускоряет и вращение, и темп стрельбы
		e.SpiralAngle += bossSpiralTurn * dt * e.Enrage
		if crossed(e.Timer, dt, bossSpiralInterval/e.Enrage) {
			for i := 0; i < bossSpiralBolts; i++ {
				s.fireBolt(e, e.SpiralAngle+(math.Pi*2/bossSpiralBolts)*float64(i), bossSpiralSpeed)
			}
		}
		if e.Timer > bossSpiralTime {
			s.enterBossState(e, component.StateChasing)
		}

	case component.StateWarnBurst:
		if e.Timer > bossWarnTime {
			s.enterBossState(e, component.StateBurst)
		}
	case component.StateBurst:
		if crossed(e.Timer, dt, bossBurstInterval) {
			jitter := (s.world.Rand().Float64() - 0.5) * bossBurstJitter
			s.fireBolt(e, toPlayer+jitter, bossBurstSpeed)
			s.world.Dispatch(event.Event{Type: event.EnemyFired, Data: e.Pos})
		}
		if e.Timer > bossBurstTime {
			s.enterBossState(e, component.StateChasing)
		}

	case component.StateWarnSpin:
		if e.Timer > bossWarnTime {
			s.enterBossState(e, component.StateSpin)
		}
	case component.StateSpin:
		e.Facing += bossSpinTurn * dt
		if crossed(e.Timer, dt, bossSpinInterval) {
			s.fireBolt(e, e.Facing, bossSpinSpeed)
			s.fireBolt(e, e.Facing+math.Pi, bossSpinSpeed)
		}
		if e.Timer > bossSpinTime {
			s.enterBossState(e, component.StateChasing)
		}

	default:
		s.enterBossState(e, component.StateChasing)
	}
}

func (s *EnemyAISystem) enterBossState(e *component.Enemy, st component.EnemyState) {
	e.State = st
	e.Timer = 0
}

func (s *EnemyAISystem) fireBolt(e *component.Enemy, angle, speed float64) {
	s.world.AddProjectile(s.world.NewProjectile(component.SideEnemy, component.ShapeBolt,
		e.Pos.X, e.Pos.Y, math.Cos(angle)*speed, math.Sin(angle)*speed, bossBoltDamage))
}
