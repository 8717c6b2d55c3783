// internal/interfaces/weapon.go
package interfaces

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
)

// Owner: то, что оружие знает о своём владельце.
type Owner interface {
	Position() component.Position
	Facing() float64
	CooldownMultiplier() float64
	DashTriggered() bool
	Removed() bool
}

// Weapon: общий интерфейс оружия игрока.
type Weapon interface {
	Kind() defs.WeaponKind
	Level() int
	Upgrade()
	Update(dt float64, ctx GameContext)
}
