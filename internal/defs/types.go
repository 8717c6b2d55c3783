// internal/defs/types.go
package defs

// Archetype: закрытый набор поведенческих типов врагов.
type Archetype string

const (
	ArchetypeSlime    Archetype = "slime"
	ArchetypeGoblin   Archetype = "goblin"
	ArchetypeOrc      Archetype = "orc"
	ArchetypeGolem    Archetype = "golem"
	ArchetypeGravity  Archetype = "gravity"
	ArchetypeKamikaze Archetype = "kamikaze"
	ArchetypeElite    Archetype = "elite"
	ArchetypeBoss     Archetype = "boss"
)

// Archetypes перечисляет все архетипы в порядке отрисовки легенды.
var Archetypes = []Archetype{
	ArchetypeSlime, ArchetypeGoblin, ArchetypeOrc, ArchetypeGolem,
	ArchetypeGravity, ArchetypeKamikaze, ArchetypeElite, ArchetypeBoss,
}

// WeaponKind: тип оружия игрока.
type WeaponKind string

const (
	WeaponPulse     WeaponKind = "pulse"
	WeaponMissile   WeaponKind = "missile"
	WeaponAura      WeaponKind = "aura"
	WeaponLightning WeaponKind = "lightning"
	WeaponLaser     WeaponKind = "laser"
	WeaponTrail     WeaponKind = "trail"
	WeaponDashBlast WeaponKind = "dash_exp"
)

// WeaponKinds: порядок, в котором оружие предлагается в лотерее улучшений.
var WeaponKinds = []WeaponKind{
	WeaponPulse, WeaponMissile, WeaponAura, WeaponLightning,
	WeaponLaser, WeaponTrail, WeaponDashBlast,
}

// ArchetypeDefinition holds the base stat block of an enemy archetype.
type ArchetypeDefinition struct {
	ID      Archetype `yaml:"id"`
	Radius  float64   `yaml:"radius"`
	Speed   float64   `yaml:"speed"`
	Health  float64   `yaml:"health"`
	XP      int       `yaml:"xp"`
	HitStun float64   `yaml:"hit_stun"`
	// FixedHealth ignores the difficulty multiplier when > 0.
	FixedHealth float64  `yaml:"fixed_health"`
	Clamped     bool     `yaml:"clamped"`
	Color       [3]uint8 `yaml:"color"`
}

// SpawnEntry is one weighted candidate of the spawn pool.
type SpawnEntry struct {
	Archetype Archetype `yaml:"archetype"`
	Weight    int       `yaml:"weight"`
	// UnlockAt is the elapsed run time in seconds after which the entry joins the pool.
	UnlockAt int `yaml:"unlock_at"`
	// CooldownMS rate-limits the entry on the run clock; 0 disables the limit.
	CooldownMS    int     `yaml:"cooldown_ms"`
	ClusterSize   int     `yaml:"cluster_size"`
	ClusterChance float64 `yaml:"cluster_chance"`
	ClusterSpread float64 `yaml:"cluster_spread"`
}

// UpgradeOption: вариант улучшения, предлагаемый при повышении уровня.
type UpgradeOption struct {
	ID          string `yaml:"id" json:"id"`
	Text        string `yaml:"text" json:"text"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ShopItem is a permanent meta upgrade bought between runs.
type ShopItem struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Cost int    `yaml:"cost"`
	Type string `yaml:"type"`
	Max  int    `yaml:"max"`
	Desc string `yaml:"desc"`
}
