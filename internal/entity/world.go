// internal/entity/world.go
package entity

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/types"
	"go-void-survivor/internal/utils"
)

// World хранит все коллекции сущностей забега.
// Срезы вместо карт: порядок обхода должен быть детерминированным.
type World struct {
	NextEntityID types.EntityID
	W, H         float64

	Player      *Player
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Pickups     []*component.Pickup
	Texts       []*component.FloatingText

	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

// NewWorld создаёт пустой мир заданного размера.
func NewWorld(width, height float64, rng *utils.PRNGService, dispatcher *event.Dispatcher) *World {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &World{
		NextEntityID: 1,
		W:            width,
		H:            height,
		rng:          rng,
		dispatcher:   dispatcher,
	}
}

// NextID выдаёт новый идентификатор сущности.
func (w *World) NextID() types.EntityID {
	id := w.NextEntityID
	w.NextEntityID++
	return id
}

func (w *World) Width() float64  { return w.W }
func (w *World) Height() float64 { return w.H }

// LiveEnemies возвращает врагов, ещё не помеченных к удалению.
func (w *World) LiveEnemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) AddEnemy(e *component.Enemy) {
	if e.ID == 0 {
		e.ID = w.NextID()
	}
	w.Enemies = append(w.Enemies, e)
}

func (w *World) AddProjectile(p *component.Projectile) {
	if p.ID == 0 {
		p.ID = w.NextID()
	}
	w.Projectiles = append(w.Projectiles, p)
}

// NewProjectile создаёт снаряд с новым ID, не добавляя его в мир.
func (w *World) NewProjectile(side component.Side, shape component.Shape, x, y, vx, vy, damage float64) *component.Projectile {
	return component.NewProjectile(w.NextID(), side, shape, x, y, vx, vy, damage)
}

func (w *World) AddPickup(p *component.Pickup) {
	if p.ID == 0 {
		p.ID = w.NextID()
	}
	w.Pickups = append(w.Pickups, p)
}

func (w *World) AddFloatingText(text string, x, y float64, kind component.TextKind) {
	w.Texts = append(w.Texts, &component.FloatingText{
		Text:    text,
		Kind:    kind,
		Pos:     component.Position{X: x, Y: y},
		Vel:     component.Velocity{X: (w.rng.Float64() - 0.5) * 2, Y: -2},
		MaxLife: config.FloatingTextLife,
	})
}

func (w *World) Rand() *utils.PRNGService { return w.rng }

func (w *World) Dispatch(e event.Event) { w.dispatcher.Dispatch(e) }

// Events возвращает диспетчер событий мира.
func (w *World) Events() *event.Dispatcher { return w.dispatcher }

// Boss возвращает живого босса, если он есть.
func (w *World) Boss() *component.Enemy {
	for _, e := range w.Enemies {
		if e.IsBoss() && e.Alive() {
			return e
		}
	}
	return nil
}

// HasBoss: есть ли босс в коллекции (в том числе ещё не убранный).
func (w *World) HasBoss() bool {
	for _, e := range w.Enemies {
		if e.IsBoss() {
			return true
		}
	}
	return false
}

// Clear удаляет все сущности кроме игрока.
func (w *World) Clear() {
	w.Enemies = nil
	w.Projectiles = nil
	w.Pickups = nil
	w.Texts = nil
}
