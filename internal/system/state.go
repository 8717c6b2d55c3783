// internal/system/state.go
package system

import (
	"log/slog"
	"strconv"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
)

const (
	bossSpawnOffsetY   = -100.0
	bossRoundHealthAdd = 0.5
)

// StateSystem ведёт вехи забега: секундный счётчик, отсчёт перед раундом испытания,
// предупреждение о боссе в классике, элиту и автоочистку центральных надписей.
type StateSystem struct {
	world  *entity.World
	run    *component.RunState
	rounds int
	logger *slog.Logger

	noticeTimer float64
}

func NewStateSystem(world *entity.World, run *component.RunState, rounds int, logger *slog.Logger) *StateSystem {
	if rounds <= 0 {
		rounds = config.DefaultChallengeRun
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StateSystem{world: world, run: run, rounds: rounds, logger: logger}
}

// Begin готовит вехи нового забега.
func (s *StateSystem) Begin() {
	s.noticeTimer = 0
	s.run.ResetAccumulator()
	s.run.SpawnRate = config.SpawnRate(0)
	if s.run.Mode == component.ModeChallenge {
		s.run.Round = 1
		s.startCountdown()
		return
	}
	s.run.Round = 0
	s.run.Countdown = 0
}

// Frozen: мир стоит на месте из-за отсчёта или появления босса.
func (s *StateSystem) Frozen() bool {
	return s.run.BossPending || s.run.Countdown > 0
}

// Update продвигает вехи. Возвращает false, если мир в этом тике не должен двигаться.
func (s *StateSystem) Update(dt float64) bool {
	switch {
	case s.run.BossPending:
		if s.run.Accumulate(dt, config.TicksPerSecond) {
			s.bossWarningStep()
		}
		return false
	case s.run.Countdown > 0:
		if s.run.Accumulate(dt, config.TicksPerSecond) {
			s.countdownStep()
		}
		return false
	}
	if s.run.Accumulate(dt, config.TicksPerSecond) {
		return s.onSecond()
	}
	return true
}

// TickNotice ведёт таймер очистки центральной надписи. Идёт и во время паузы выбора.
func (s *StateSystem) TickNotice(dt float64) {
	if s.noticeTimer <= 0 {
		return
	}
	s.noticeTimer -= dt
	if s.noticeTimer <= 0 {
		s.world.Dispatch(event.Event{Type: event.CenterNotification, Data: ""})
	}
}

// OnBossKilled переводит испытание в следующий раунд. Возвращает true, если забег выигран.
func (s *StateSystem) OnBossKilled() bool {
	if s.run.Mode != component.ModeChallenge || s.run.Round >= s.rounds {
		return true
	}
	s.run.Round++
	s.run.BossSpawned = false
	s.logger.Info("challenge round started", "round", s.run.Round)
	s.world.Dispatch(event.Event{Type: event.RoundStarted, Data: s.run.Round})
	s.startCountdown()
	return false
}

// Snapshot собирает данные для HUD.
func (s *StateSystem) Snapshot() event.Snapshot {
	snap := event.Snapshot{
		Score: s.run.Score,
		Time:  s.run.Seconds,
		Coins: s.run.Coins,
		Round: s.run.Round,
	}
	if p := s.world.Player; p != nil {
		snap.HP, snap.MaxHP = p.HP, p.MaxHP
		snap.XP, snap.XPNext = p.XP, p.XPToNext
		snap.Level = p.Level
	}
	return snap
}

func (s *StateSystem) startCountdown() {
	s.run.Countdown = config.BossWarningSteps
	s.run.ResetAccumulator()
	s.notice(strconv.Itoa(s.run.Countdown), 0)
	s.world.Dispatch(event.Event{Type: event.CountdownTick, Data: s.run.Countdown})
}

func (s *StateSystem) countdownStep() {
	s.run.Countdown--
	s.world.Dispatch(event.Event{Type: event.CountdownTick, Data: s.run.Countdown})
	if s.run.Countdown > 0 {
		s.notice(strconv.Itoa(s.run.Countdown), 0)
		return
	}
	s.notice("GO!", config.NoticeClearGo)
	s.spawnBoss(1 + float64(s.run.Round-1)*bossRoundHealthAdd)
}

func (s *StateSystem) bossWarningStep() {
	s.run.Countdown--
	switch {
	case s.run.Countdown == 2:
		s.notice("不明訊號出現", 0)
		s.world.Dispatch(event.Event{Type: event.CountdownTick, Data: s.run.Countdown})
	case s.run.Countdown <= 0:
		s.run.Countdown = 0
		s.run.BossPending = false
		s.notice("BOSS 已出現！", config.NoticeClearBoss)
		if !s.world.HasBoss() {
			s.spawnBoss(1)
		}
	}
}

// onSecond: логика раз в секунду обычного хода игры.
func (s *StateSystem) onSecond() bool {
	s.run.Seconds++
	s.run.SpawnRate = config.SpawnRate(s.run.Seconds)

	if s.run.Mode == component.ModeClassic && s.run.Seconds == config.BossTriggerSecond &&
		!s.run.BossSpawned && !s.run.BossPending {
		if !s.world.HasBoss() {
			s.run.BossPending = true
			s.run.Countdown = config.BossWarningSteps
			s.notice("警告", 0)
			s.world.Dispatch(event.Event{Type: event.CountdownTick, Data: s.run.Countdown})
			return false
		}
		s.run.BossSpawned = true
	}

	if s.run.Mode == component.ModeClassic && s.run.Seconds%config.EliteSpawnInterval == 0 {
		s.spawnElite()
	}

	s.world.Dispatch(event.Event{Type: event.SnapshotUpdated, Data: s.Snapshot()})
	return true
}

func (s *StateSystem) spawnBoss(mult float64) {
	e := component.NewEnemy(s.world.NextID(), defs.ArchetypeBoss, s.world.W/2, bossSpawnOffsetY, mult, s.run.Seconds)
	s.world.AddEnemy(e)
	s.run.BossSpawned = true
	s.logger.Info("boss spawned", "round", s.run.Round, "hp", e.MaxHP, "seconds", s.run.Seconds)
	s.world.Dispatch(event.Event{Type: event.BossSpawned, Data: e.ID})
}

func (s *StateSystem) spawnElite() {
	rng := s.world.Rand()
	e := component.NewEnemy(s.world.NextID(), defs.ArchetypeElite, rng.Float64()*s.world.W, rng.Float64()*s.world.H, 1, 0)
	e.DriftAngle = rng.Angle()
	s.world.AddEnemy(e)
}

func (s *StateSystem) notice(text string, clearAfter float64) {
	s.noticeTimer = clearAfter
	s.world.Dispatch(event.Event{Type: event.CenterNotification, Data: text})
}
