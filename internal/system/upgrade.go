package system

import (
	"errors"
	"fmt"
	"strings"

	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/weapon"
)

// ErrUnknownUpgrade возвращается для идентификатора, которого нет среди улучшений.
var ErrUnknownUpgrade = errors.New("unknown upgrade")

const (
	optionsPerLevel = 3
	weaponTickets   = 3
	nukeChance      = 0.1

	healAmount         = 3
	cooldownFactor     = 0.9
	pickupRangeBonus   = 50.0
	upgradeAddPrefix   = "add_"
	upgradeLevelPrefix = "up_"
)

// UpgradeSystem разыгрывает варианты улучшений при повышении уровня и применяет выбор.
type UpgradeSystem struct {
	world *entity.World
}

func NewUpgradeSystem(world *entity.World) *UpgradeSystem {
	return &UpgradeSystem{world: world}
}

// Options собирает лотерею и вытягивает до трёх различных вариантов.
// Оружейные варианты кладутся в лотерею трижды.
func (s *UpgradeSystem) Options() []defs.UpgradeOption {
	p := s.world.Player
	rng := s.world.Rand()

	lottery := make([]defs.UpgradeOption, 0, 32)
	for _, k := range defs.WeaponKinds {
		id := upgradeAddPrefix + string(k)
		if p.HasWeapon(k) {
			id = upgradeLevelPrefix + string(k)
		}
		opt := defs.Upgrade(id)
		for i := 0; i < weaponTickets; i++ {
			lottery = append(lottery, opt)
		}
	}
	if p.HP < p.MaxHP {
		lottery = append(lottery, defs.Upgrade("heal"))
	}
	lottery = append(lottery, defs.Upgrade("max_hp"), defs.Upgrade("cooldown"), defs.Upgrade("pickup_range"))
	if rng.Chance(nukeChance) {
		lottery = append(lottery, defs.Upgrade("nuke"))
	}

	selected := make([]defs.UpgradeOption, 0, optionsPerLevel)
	for len(selected) < optionsPerLevel && len(lottery) > 0 {
		pick := lottery[rng.Intn(len(lottery))]
		selected = append(selected, pick)
		lottery = compact(lottery, func(o defs.UpgradeOption) bool { return o.ID != pick.ID })
	}
	return selected
}

// Apply применяет улучшение к игроку и миру.
func (s *UpgradeSystem) Apply(id string) error {
	p := s.world.Player
	switch id {
	case "heal":
		p.Heal(healAmount)
	case "max_hp":
		p.IncreaseMaxHP(1)
	case "cooldown":
		p.WeaponCooldownMult *= cooldownFactor
	case "pickup_range":
		p.PickupRange += pickupRangeBonus
	case "nuke":
		s.nuke()
	default:
		kind, add, ok := parseWeaponUpgrade(id)
		if !ok {
			return fmt.Errorf("apply %q: %w", id, ErrUnknownUpgrade)
		}
		if add {
			p.AddWeapon(weapon.New(kind, p, 1))
		} else if w := p.Weapon(kind); w != nil {
			w.Upgrade()
		}
	}
	return nil
}

// nuke тихо убирает всех врагов, кроме босса.
func (s *UpgradeSystem) nuke() {
	for _, e := range s.world.LiveEnemies() {
		if !e.IsBoss() {
			e.RemoveSilently()
		}
	}
	s.world.Dispatch(event.Event{Type: event.NukeDetonated})
	s.world.Dispatch(event.Event{Type: event.LogMessage, Data: "戰術核武已啟動！"})
}

func parseWeaponUpgrade(id string) (defs.WeaponKind, bool, bool) {
	var rest string
	var add bool
	switch {
	case strings.HasPrefix(id, upgradeAddPrefix):
		rest, add = strings.TrimPrefix(id, upgradeAddPrefix), true
	case strings.HasPrefix(id, upgradeLevelPrefix):
		rest = strings.TrimPrefix(id, upgradeLevelPrefix)
	default:
		return "", false, false
	}
	for _, k := range defs.WeaponKinds {
		if string(k) == rest {
			return k, add, true
		}
	}
	return "", false, false
}
