// internal/component/pickup.go
package component

import (
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/types"
)

// PickupKind: тип подбираемого предмета.
type PickupKind int

const (
	PickupGem PickupKind = iota
	PickupCoin
	PickupBigCoin
	PickupDiary
)

// Pickup: кристалл опыта, монета или страница дневника.
type Pickup struct {
	ID    types.EntityID
	Kind  PickupKind
	Pos   Position
	Value int
}

// Radius: размер для отрисовки.
func (p *Pickup) Radius() float64 {
	switch p.Kind {
	case PickupBigCoin, PickupDiary:
		return 12
	default:
		return 6
	}
}

// MagnetFactor: доля расстояния до игрока, проходимая за тик.
func (p *Pickup) MagnetFactor() float64 {
	if p.Kind == PickupGem {
		return config.GemMagnetFactor
	}
	return config.ItemMagnetFactor
}
