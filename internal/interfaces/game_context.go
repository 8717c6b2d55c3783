// internal/interfaces/game_context.go
package interfaces

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/types"
	"go-void-survivor/internal/utils"
)

// GameContext: ограниченный доступ к миру, который получают оружие и ИИ врагов.
// Коллекциями владеет оркестратор; здесь только нужные операции.
type GameContext interface {
	Width() float64
	Height() float64
	NextID() types.EntityID
	// LiveEnemies возвращает живых врагов текущего тика.
	LiveEnemies() []*component.Enemy
	AddEnemy(a *component.Enemy)
	AddProjectile(p *component.Projectile)
	AddPickup(p *component.Pickup)
	AddFloatingText(text string, x, y float64, kind component.TextKind)
	NewProjectile(side component.Side, shape component.Shape, x, y, vx, vy, damage float64) *component.Projectile
	Rand() *utils.PRNGService
	Dispatch(e event.Event)
}
