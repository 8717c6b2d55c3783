// internal/system/spawn.go
package system

import (
	"log/slog"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
)

// SpawnSystem: директор спавна: раз в spawnRate тиков выбирает архетип
// из открытых по времени записей пула и выпускает его с края экрана.
type SpawnSystem struct {
	world  *entity.World
	run    *component.RunState
	logger *slog.Logger

	timer float64
	// clock: часы забега: сумма всех dt, включая паузы.
	clock     float64
	lastSpawn map[defs.Archetype]float64
}

func NewSpawnSystem(world *entity.World, run *component.RunState, logger *slog.Logger) *SpawnSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpawnSystem{
		world:     world,
		run:       run,
		logger:    logger,
		lastSpawn: make(map[defs.Archetype]float64),
	}
}

// Advance двигает часы забега. Вызывается на каждом шаге, даже на паузе.
func (s *SpawnSystem) Advance(dt float64) { s.clock += dt }

// Clock возвращает часы забега в тиках.
func (s *SpawnSystem) Clock() float64 { return s.clock }

func (s *SpawnSystem) Update(dt float64) {
	s.timer -= dt
	if s.timer > 0 {
		return
	}
	s.spawnWave()
	s.timer = s.run.SpawnRate
}

// Pool возвращает записи, доступные прямо сейчас.
func (s *SpawnSystem) Pool() []defs.SpawnEntry {
	pool := make([]defs.SpawnEntry, 0, len(defs.SpawnTable))
	for _, entry := range defs.SpawnTable {
		if s.run.Seconds < entry.UnlockAt {
			continue
		}
		if entry.CooldownMS > 0 {
			last, seen := s.lastSpawn[entry.Archetype]
			window := float64(entry.CooldownMS) * config.TicksPerSecond / 1000
			if seen && s.clock-last <= window {
				continue
			}
		}
		pool = append(pool, entry)
	}
	return pool
}

func (s *SpawnSystem) spawnWave() {
	rng := s.world.Rand()
	entry, ok := rng.ChooseWeighted(s.Pool())
	if !ok {
		s.logger.Warn("spawn pool is empty", "seconds", s.run.Seconds)
		return
	}
	if entry.CooldownMS > 0 {
		s.lastSpawn[entry.Archetype] = s.clock
	}
	if entry.ClusterSize > 1 && rng.Chance(entry.ClusterChance) {
		for i := 0; i < entry.ClusterSize; i++ {
			s.SpawnEntity(entry.Archetype, entry.ClusterSpread)
		}
		return
	}
	s.SpawnEntity(entry.Archetype, 0)
}

// SpawnEntity выпускает врага за случайным краем экрана. spread > 0 разбрасывает группу.
func (s *SpawnSystem) SpawnEntity(a defs.Archetype, spread float64) *component.Enemy {
	rng := s.world.Rand()
	w, h := s.world.W, s.world.H
	off := config.SpawnEdgeOffset

	var x, y float64
	if rng.Chance(0.5) {
		x = -off
		if rng.Chance(0.5) {
			x = w + off
		}
		y = rng.Float64() * h
	} else {
		x = rng.Float64() * w
		y = -off
		if rng.Chance(0.5) {
			y = h + off
		}
	}
	if spread > 0 {
		x += (rng.Float64() - 0.5) * spread
		y += (rng.Float64() - 0.5) * spread
	}

	mult := HealthMultiplier(s.run.Mode, s.run.Round, s.run.Seconds)
	e := component.NewEnemy(s.world.NextID(), a, x, y, mult, s.run.Seconds)
	s.world.AddEnemy(e)
	return e
}

// HealthMultiplier: множитель здоровья обычных врагов для режима, раунда и времени.
func HealthMultiplier(mode component.Mode, round, seconds int) float64 {
	if mode == component.ModeChallenge {
		return 1 + float64(round-1)*0.2 + float64(seconds)/300
	}
	return 1 + float64(seconds)/600
}
