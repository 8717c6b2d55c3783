// internal/entity/player.go
package entity

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/interfaces"
)

// Player: корабль игрока. Поведение (движение, рывок, оружие) живёт в system.PlayerSystem.
type Player struct {
	Pos    component.Position
	Radius float64

	HP, MaxHP int
	Speed     float64
	XP        int
	XPToNext  int
	Level     int

	PickupRange        float64
	WeaponCooldownMult float64
	Weapons            []interfaces.Weapon

	VisualAngle float64

	IsDashing       bool
	DashCooldown    float64
	DashTimer       float64
	DashVec         component.Velocity
	InvincibleTimer float64
	dashTriggered   bool

	Slow    component.SlowEffect
	removed bool
}

// NewPlayer создаёт игрока с учётом постоянных улучшений.
// Отсутствующие ключи таблицы считаются нулевыми.
func NewPlayer(x, y float64, upgrades map[string]int) *Player {
	lvl := func(key string) int {
		if v := upgrades[key]; v > 0 {
			return v
		}
		return 0
	}
	p := &Player{
		Pos:                component.Position{X: x, Y: y},
		Radius:             config.PlayerRadius,
		MaxHP:              config.PlayerBaseHealth + lvl("base_hp"),
		Speed:              config.PlayerBaseSpeed * (1 + float64(lvl("base_speed"))*0.05),
		XPToNext:           config.PlayerStartXPToNext,
		Level:              1,
		PickupRange:        config.PlayerBasePickup * (1 + float64(lvl("base_pickup"))*0.3),
		WeaponCooldownMult: math.Pow(0.9, float64(lvl("cooldown_multi"))),
		Slow:               component.SlowEffect{Factor: 1},
	}
	p.HP = p.MaxHP
	return p
}

// StartingWeapons перечисляет оружие, выдаваемое при старте по таблице улучшений.
func StartingWeapons(upgrades map[string]int) []StartingWeapon {
	out := make([]StartingWeapon, 0, 7)
	for _, k := range []defs.WeaponKind{defs.WeaponMissile, defs.WeaponAura, defs.WeaponLightning, defs.WeaponLaser, defs.WeaponTrail, defs.WeaponDashBlast} {
		if lv := upgrades["start_"+string(k)]; lv > 0 {
			out = append(out, StartingWeapon{Kind: k, Level: lv})
		}
	}
	pulse := 1
	if upgrades["start_whip_lv2"] > 0 {
		pulse = 2
	}
	return append(out, StartingWeapon{Kind: defs.WeaponPulse, Level: pulse})
}

// StartingWeapon: вид и уровень стартового оружия.
type StartingWeapon struct {
	Kind  defs.WeaponKind
	Level int
}

// AddWeapon добавляет оружие; если такое уже есть, улучшает его.
func (p *Player) AddWeapon(w interfaces.Weapon) {
	if existing := p.Weapon(w.Kind()); existing != nil {
		existing.Upgrade()
		return
	}
	p.Weapons = append(p.Weapons, w)
}

// Weapon возвращает оружие данного вида или nil.
func (p *Player) Weapon(kind defs.WeaponKind) interfaces.Weapon {
	for _, w := range p.Weapons {
		if w.Kind() == kind {
			return w
		}
	}
	return nil
}

// HasWeapon: есть ли у игрока оружие вида kind.
func (p *Player) HasWeapon(kind defs.WeaponKind) bool { return p.Weapon(kind) != nil }

// TakeDamage наносит урон, если нет неуязвимости. Возвращает true, если урон прошёл.
func (p *Player) TakeDamage(amount int) bool {
	if p.InvincibleTimer > 0 || amount <= 0 {
		return false
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	p.InvincibleTimer = config.PlayerHitInvincible
	return true
}

// Heal лечит, не превышая максимум.
func (p *Player) Heal(amount int) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// IncreaseMaxHP поднимает максимум и текущее здоровье.
func (p *Player) IncreaseMaxHP(amount int) {
	p.MaxHP += amount
	p.HP += amount
}

// GainXP начисляет опыт. Возвращает true при повышении уровня (не более одного за раз).
func (p *Player) GainXP(amount int) bool {
	p.XP += amount
	if p.XP < p.XPToNext {
		return false
	}
	p.XP -= p.XPToNext
	p.Level++
	p.XPToNext = int(math.Floor(float64(p.XPToNext) * config.XPMultiplier(p.Level)))
	return true
}

// Dash запускает рывок, если он готов. При нулевом векторе рывок идёт по направлению взгляда.
func (p *Player) Dash(dx, dy float64) bool {
	if p.DashCooldown > 0 || p.IsDashing {
		return false
	}
	p.IsDashing = true
	p.DashCooldown = config.DashCooldown * p.WeaponCooldownMult
	p.DashTimer = config.DashDuration
	p.InvincibleTimer = config.DashInvincible

	l := math.Hypot(dx, dy)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		p.DashVec = component.Velocity{X: math.Cos(p.VisualAngle), Y: math.Sin(p.VisualAngle)}
	} else {
		p.DashVec = component.Velocity{X: dx / l, Y: dy / l}
	}
	p.dashTriggered = true
	return true
}

// ClearDashTrigger сбрасывает флаг рывка после обновления оружия.
func (p *Player) ClearDashTrigger() { p.dashTriggered = false }

// MarkRemoved отключает оружие игрока после конца забега.
func (p *Player) MarkRemoved() { p.removed = true }

// Dead: здоровье исчерпано.
func (p *Player) Dead() bool { return p.HP <= 0 }

// Owner

func (p *Player) Position() component.Position { return p.Pos }
func (p *Player) Facing() float64              { return p.VisualAngle }
func (p *Player) CooldownMultiplier() float64  { return p.WeaponCooldownMult }
func (p *Player) DashTriggered() bool          { return p.dashTriggered }
func (p *Player) Removed() bool                { return p.removed }
