// internal/component/enemy.go
package component

import (
	"fmt"
	"math"

	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/types"
)

// EnemyState: состояние поведенческого автомата врага.
type EnemyState string

const (
	StateChasing   EnemyState = "chasing"
	StateIdle      EnemyState = "idle"
	StateWarning   EnemyState = "warning"
	StatePriming   EnemyState = "priming"
	StateExploding EnemyState = "exploding"
	StateDrifting  EnemyState = "drifting"
	StateWarn      EnemyState = "warn"
	StateDash      EnemyState = "dash"
	StateExhausted EnemyState = "exhausted"

	StateWarnDash   EnemyState = "warnDash"
	StateWarnShoot  EnemyState = "warnShoot"
	StateShoot      EnemyState = "shoot"
	StateWarnSpiral EnemyState = "warnSpiral"
	StateSpiral     EnemyState = "spiral"
	StateWarnBurst  EnemyState = "warnBurst"
	StateBurst      EnemyState = "burst"
	StateWarnSpin   EnemyState = "warnSpin"
	StateSpin       EnemyState = "spin"
)

// RemovalReason: причина удаления врага из мира.
type RemovalReason int

const (
	Alive RemovalReason = iota
	// Killed: обычная смерть: очки, опыт и дроп.
	Killed
	// RemovedSilently: самоуничтожение или деление, без наград.
	RemovedSilently
)

const (
	BossExhaustionShare = 0.2
	BossEnrageStep      = 0.2
)

// Enemy: вражеская сущность.
type Enemy struct {
	ID        types.EntityID
	Archetype defs.Archetype
	Pos       Position

	HP, MaxHP float64
	Radius    float64
	Speed     float64
	XP        int
	Clamped   bool

	State      EnemyState
	Timer      float64
	LifeTime   float64
	PulsePhase float64
	HitFlash   float64
	HitStun    float64
	hitStunOn  float64

	// разделение орков
	Generation       int
	SpawnGrace       float64
	ReplicationTimer float64

	// камикадзе
	BlastRadius    float64
	HasDealtDamage bool

	// элита и босс
	DriftAngle     float64
	DashAngle      float64
	Facing         float64
	SpiralAngle    float64
	ActionCooldown float64

	ExhaustionDamage    float64
	ExhaustionThreshold float64
	Enrage              float64

	Removal RemovalReason
}

// NewEnemy собирает врага по архетипу. mult задаёт множитель здоровья,
// runSeconds: время забега для ускорения.
func NewEnemy(id types.EntityID, a defs.Archetype, x, y, mult float64, runSeconds int) *Enemy {
	def := defs.ArchetypeStats(a)
	e := &Enemy{
		ID:        id,
		Archetype: a,
		Pos:       Position{X: x, Y: y},
		Radius:    def.Radius,
		Speed:     def.Speed * (1 + float64(runSeconds)/config.EnemySpeedTimeScale) * config.EnemySpeedFactor,
		XP:        def.XP,
		Clamped:   def.Clamped,
		State:     StateChasing,
		Enrage:    1,
		hitStunOn: def.HitStun,
	}
	if mult <= 0 || math.IsNaN(mult) {
		mult = 1
	}
	e.MaxHP = def.Health * mult
	if def.FixedHealth > 0 {
		e.MaxHP = def.FixedHealth
	}
	e.HP = e.MaxHP
	e.ExhaustionThreshold = e.MaxHP * BossExhaustionShare

	switch a {
	case defs.ArchetypeKamikaze:
		e.Timer = 30
	case defs.ArchetypeElite:
		e.State = StateDrifting
		e.Timer = 300
	case defs.ArchetypeOrc:
		e.State = StateIdle
		e.SpawnGrace = 60
	case defs.ArchetypeBoss:
		e.ActionCooldown = 300
	}
	return e
}

// NewOffspring создаёт потомка орка следующего поколения.
func NewOffspring(id types.EntityID, parent *Enemy, x, y float64) *Enemy {
	child := NewEnemy(id, parent.Archetype, x, y, 1, 0)
	child.Generation = parent.Generation + 1
	child.Radius *= 0.8
	child.Speed *= 1.4
	return child
}

// Alive сообщает, находится ли враг ещё в игре.
func (e *Enemy) Alive() bool { return e.Removal == Alive }

// IsBoss: проверка архетипа.
func (e *Enemy) IsBoss() bool { return e.Archetype == defs.ArchetypeBoss }

// TakeDamage: единственная точка нанесения урона врагу.
// Вспышка, истощение босса, оглушение голема и всплывающий текст обрабатываются здесь.
func (e *Enemy) TakeDamage(amount float64, fx TextSink) {
	if e.Removal != Alive || math.IsNaN(amount) {
		return
	}
	e.HP -= amount
	e.HitFlash = config.HitFlashDuration

	if e.IsBoss() && e.State != StateExhausted {
		e.ExhaustionDamage += amount
		if e.ExhaustionDamage >= e.ExhaustionThreshold {
			e.State = StateExhausted
			e.Timer = 0
			e.ExhaustionDamage = 0
			e.Enrage += BossEnrageStep
			if fx != nil {
				fx.AddFloatingText("力竭!", e.Pos.X, e.Pos.Y-80, TextWarning)
			}
		}
	}
	if e.hitStunOn > 0 {
		e.HitStun = e.hitStunOn
	}
	if fx != nil {
		fx.AddFloatingText(fmt.Sprintf("-%d", int(math.Floor(amount))), e.Pos.X, e.Pos.Y-e.Radius-10, TextDamage)
	}
	if e.HP <= 0 {
		e.Removal = Killed
	}
}

// RemoveSilently убирает врага без награды.
func (e *Enemy) RemoveSilently() {
	if e.Removal == Alive {
		e.Removal = RemovedSilently
	}
}

// CanDealDamage: может ли враг наносить контактный урон.
func (e *Enemy) CanDealDamage() bool {
	if e.Removal != Alive {
		return false
	}
	if e.Archetype == defs.ArchetypeOrc && e.SpawnGrace > 0 {
		return false
	}
	if e.IsBoss() && e.State == StateExhausted {
		return false
	}
	return true
}
