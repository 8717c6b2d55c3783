package system

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
)

// CombatSystem разрешает столкновения и урон между игроком, врагами и снарядами.
type CombatSystem struct {
	world *entity.World
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// DashContact наносит урон всем врагам, задетым рывком, раз в тик.
func (s *CombatSystem) DashContact() {
	p := s.world.Player
	for _, e := range s.world.LiveEnemies() {
		if p.Pos.DistanceTo(e.Pos) < p.Radius+e.Radius+config.DashContactPad {
			e.TakeDamage(config.DashContactDamage, s.world)
		}
	}
}

// ContactDamage наносит игроку урон от касания врагов.
// Возвращает true, если игрок погиб.
func (s *CombatSystem) ContactDamage() bool {
	p := s.world.Player
	for _, e := range s.world.Enemies {
		if !e.CanDealDamage() {
			continue
		}
		if p.Pos.DistanceTo(e.Pos) >= p.Radius+e.Radius {
			continue
		}
		s.hurtPlayer(config.ContactDamage)
		if p.Dead() {
			return true
		}
	}
	return false
}

// ProjectileHits проверяет попадания снаряда игрока по врагам.
func (s *CombatSystem) ProjectileHits(pr *component.Projectile) {
	if pr.Side != component.SidePlayer || pr.Inert() || pr.Expired() {
		return
	}
	r := pr.HitRadius()
	for _, e := range s.world.LiveEnemies() {
		if pr.AlreadyHit(e.ID) {
			continue
		}
		if pr.Pos.DistanceTo(e.Pos) >= r+e.Radius {
			continue
		}
		e.TakeDamage(pr.Damage, s.world)
		pr.MarkHit(e.ID)
		if pr.Expired() {
			return
		}
	}
}

// BoltHitsPlayer проверяет попадание вражеского снаряда в игрока.
// Снаряд гаснет при касании даже во время неуязвимости. Возвращает true, если игрок погиб.
func (s *CombatSystem) BoltHitsPlayer(pr *component.Projectile) bool {
	if pr.Side != component.SideEnemy || pr.Expired() {
		return false
	}
	p := s.world.Player
	if pr.Pos.DistanceTo(p.Pos) >= pr.Radius+p.Radius {
		return false
	}
	s.hurtPlayer(config.EnemyBoltDamage)
	pr.Life = 0
	return p.Dead()
}

func (s *CombatSystem) hurtPlayer(amount int) {
	if s.world.Player.TakeDamage(amount) {
		s.world.Dispatch(event.Event{Type: event.PlayerHit, Data: amount})
	}
}
