// Package weapon реализует оружие игрока. Весь урон идёт через Enemy.TakeDamage.
package weapon

import (
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/interfaces"
)

type base struct {
	kind  defs.WeaponKind
	level int
	owner interfaces.Owner
}

func (b *base) Kind() defs.WeaponKind { return b.kind }
func (b *base) Level() int            { return b.level }

// active: владелец ещё в игре.
func (b *base) active() bool { return b.owner != nil && !b.owner.Removed() }

// cooldown возвращает базовый кулдаун с учётом множителя владельца.
func (b *base) cooldown(baseCooldown float64) float64 {
	return baseCooldown * b.owner.CooldownMultiplier()
}

// New создаёт оружие нужного вида. Уровень выше первого достигается
// последовательными улучшениями, так что параметры соответствуют уровню.
func New(kind defs.WeaponKind, owner interfaces.Owner, level int) interfaces.Weapon {
	var w interfaces.Weapon
	switch kind {
	case defs.WeaponPulse:
		w = NewPulse(owner)
	case defs.WeaponMissile:
		w = NewMissile(owner)
	case defs.WeaponAura:
		w = NewAura(owner)
	case defs.WeaponLightning:
		w = NewLightning(owner)
	case defs.WeaponLaser:
		w = NewLaser(owner)
	case defs.WeaponTrail:
		w = NewTrail(owner)
	case defs.WeaponDashBlast:
		w = NewDashBlast(owner)
	default:
		return nil
	}
	for i := 1; i < level; i++ {
		w.Upgrade()
	}
	return w
}
