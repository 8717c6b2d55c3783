// internal/system/enemy_ai.go
package system

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
)

const (
	pulsePhaseSpeed = 0.1

	orcMaxGeneration = 2
	orcMatureAge     = 180.0
	orcWarnRange     = 300.0
	orcSplitDelay    = 180.0
	orcSplitDistance = 80.0

	kamikazeTriggerRange = 180.0
	kamikazeFuse         = 45.0
	kamikazeBlastBase    = 20.0
	kamikazeBlastGrowth  = 140.0
	kamikazeBlastShare   = 0.85
	kamikazeDamage       = 2

	eliteSpin      = 0.05
	eliteDriftTime = 300.0
	eliteWarnTime  = 30.0
	eliteDashTime  = 90.0
	eliteDashSpeed = 5.0
)

// behavior: поведение архетипа на один тик.
type behavior func(s *EnemyAISystem, e *component.Enemy, p *entity.Player, dt float64)

// EnemyAISystem ведёт автоматы состояний всех врагов.
type EnemyAISystem struct {
	world     *entity.World
	behaviors map[defs.Archetype]behavior
}

func NewEnemyAISystem(world *entity.World) *EnemyAISystem {
	s := &EnemyAISystem{world: world}
	s.behaviors = map[defs.Archetype]behavior{
		defs.ArchetypeOrc:      (*EnemyAISystem).updateOrc,
		defs.ArchetypeKamikaze: (*EnemyAISystem).updateKamikaze,
		defs.ArchetypeElite:    (*EnemyAISystem).updateElite,
		defs.ArchetypeBoss:     (*EnemyAISystem).updateBoss,
	}
	return s
}

// Update продвигает всех живых врагов. Потомки, появившиеся в этом тике,
// начинают двигаться со следующего.
func (s *EnemyAISystem) Update(dt float64) {
	player := s.world.Player
	if player == nil {
		return
	}
	enemies := append([]*component.Enemy(nil), s.world.Enemies...)
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		s.updateEnemy(e, player, dt)
	}
}

func (s *EnemyAISystem) updateEnemy(e *component.Enemy, p *entity.Player, dt float64) {
	e.PulsePhase += dt * pulsePhaseSpeed
	e.LifeTime += dt
	if e.SpawnGrace > 0 {
		e.SpawnGrace -= dt
	}
	if e.HitFlash > 0 {
		e.HitFlash -= dt
	}
	// оглушённый враг стоит на месте
	if e.HitStun > 0 {
		e.HitStun -= dt
		return
	}

	if b, ok := s.behaviors[e.Archetype]; ok {
		b(s, e, p, dt)
	} else {
		seek(e, p.Pos, dt)
	}

	if e.Clamped {
		clampEnemy(e, s.world.W, s.world.H)
	}
}

func (s *EnemyAISystem) updateOrc(e *component.Enemy, p *entity.Player, dt float64) {
	if e.Generation < orcMaxGeneration && e.LifeTime > orcMatureAge {
		switch e.State {
		case component.StateIdle:
			if e.Pos.DistanceTo(p.Pos) < orcWarnRange {
				e.State = component.StateWarning
				e.ReplicationTimer = 0
			}
		case component.StateWarning:
			e.ReplicationTimer += dt
			if e.ReplicationTimer > orcSplitDelay {
				s.split(e)
				return
			}
		}
	}
	seek(e, p.Pos, dt)
}

// split убирает орка без награды и ставит на его место двух потомков.
func (s *EnemyAISystem) split(e *component.Enemy) {
	e.RemoveSilently()
	base := s.world.Rand().Angle()
	for i := 0; i < 2; i++ {
		a := base + float64(i)*math.Pi
		at := component.Position{
			X: e.Pos.X + math.Cos(a)*orcSplitDistance,
			Y: e.Pos.Y + math.Sin(a)*orcSplitDistance,
		}
		at = clampInside(at, 0, s.world.W, s.world.H)
		s.world.AddEnemy(component.NewOffspring(s.world.NextID(), e, at.X, at.Y))
	}
	s.world.AddFloatingText("分裂!", e.Pos.X, e.Pos.Y-30, component.TextAlert)
	s.world.Dispatch(event.Event{Type: event.EnemySplit, Data: e.Pos})
}

func (s *EnemyAISystem) updateKamikaze(e *component.Enemy, p *entity.Player, dt float64) {
	dist := e.Pos.DistanceTo(p.Pos)
	switch e.State {
	case component.StateChasing:
		if dist < kamikazeTriggerRange {
			e.State = component.StatePriming
		} else {
			seek(e, p.Pos, dt)
		}
	case component.StatePriming:
		e.Timer -= dt
		if e.Timer <= 0 {
			e.State = component.StateExploding
			e.Timer = kamikazeFuse
		}
	case component.StateExploding:
		e.Timer -= dt
		if e.Timer <= 0 {
			e.RemoveSilently()
			return
		}
		progress := 1 - e.Timer/kamikazeFuse
		e.BlastRadius = kamikazeBlastBase + progress*kamikazeBlastGrowth
		if !e.HasDealtDamage && dist < e.BlastRadius*kamikazeBlastShare+p.Radius {
			if p.TakeDamage(kamikazeDamage) {
				s.world.Dispatch(event.Event{Type: event.PlayerHit, Data: kamikazeDamage})
			}
			e.HasDealtDamage = true
		}
	}
}

func (s *EnemyAISystem) updateElite(e *component.Enemy, p *entity.Player, dt float64) {
	e.Facing += eliteSpin * dt
	switch e.State {
	case component.StateDrifting:
		e.Timer -= dt
		if e.Timer <= 0 {
			e.State = component.StateWarn
			e.Timer = eliteWarnTime
		} else {
			moveAlong(e, e.DriftAngle, e.Speed, dt)
		}
	case component.StateWarn:
		e.Timer -= dt
		if e.Timer <= 0 {
			e.State = component.StateDash
			e.Timer = eliteDashTime
			// курс фиксируется в момент окончания предупреждения
			e.DashAngle = e.Pos.AngleTo(p.Pos)
		}
	case component.StateDash:
		e.Timer -= dt
		if e.Timer <= 0 {
			e.State = component.StateDrifting
			e.Timer = eliteDriftTime
			e.DriftAngle = s.world.Rand().Angle()
		} else {
			moveAlong(e, e.DashAngle, eliteDashSpeed, dt)
		}
	}
	bounce(e, s.world.W, s.world.H)
}
