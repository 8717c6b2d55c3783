// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/system"
	"go-void-survivor/internal/utils"
	"go-void-survivor/internal/weapon"

	"github.com/google/uuid"
)

// Options задают параметры забега.
type Options struct {
	Mode            component.Mode
	Seed            int64 // 0: сид по времени
	Width, Height   float64
	Upgrades        map[string]int // постоянные улучшения из сохранения
	PagesFound      int
	ChallengeRounds int
	Logger          *slog.Logger
}

// Game: оркестратор забега: владеет миром и вызывает системы в фиксированном порядке.
type Game struct {
	Events *event.Dispatcher
	World  *entity.World
	Run    *component.RunState

	opts   Options
	logger *slog.Logger
	runID  string
	rng    *utils.PRNGService

	PlayerSystem       *system.PlayerSystem
	CombatSystem       *system.CombatSystem
	StatusEffectSystem *system.StatusEffectSystem
	SpawnSystem        *system.SpawnSystem
	EnemyAISystem      *system.EnemyAISystem
	ProjectileSystem   *system.ProjectileSystem
	PickupSystem       *system.PickupSystem
	LootSystem         *system.LootSystem
	UpgradeSystem      *system.UpgradeSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	input    component.Velocity
	pending  []defs.UpgradeOption
	running  bool
	releases []func()
}

// NewGame создаёт игру. Подписчики на Events переживают перезапуски забега.
func NewGame(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if opts.Mode == "" {
		opts.Mode = component.ModeClassic
	}
	if opts.ChallengeRounds <= 0 {
		opts.ChallengeRounds = config.DefaultChallengeRun
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Game{
		Events: event.NewDispatcher(),
		opts:   opts,
		logger: opts.Logger,
	}
}

// Start начинает новый забег в заданном режиме. Пустой режим берётся из Options.
func (g *Game) Start(mode component.Mode) {
	if mode == "" {
		mode = g.opts.Mode
	}
	g.runID = uuid.NewString()
	g.rng = utils.NewPRNGService(g.opts.Seed)
	g.logger = g.opts.Logger.With("run_id", g.runID)

	g.World = entity.NewWorld(g.opts.Width, g.opts.Height, g.rng, g.Events)
	g.Run = &component.RunState{Mode: mode, PagesFound: g.opts.PagesFound}
	g.World.Player = entity.NewPlayer(g.opts.Width/2, g.opts.Height/2, g.opts.Upgrades)
	for _, sw := range entity.StartingWeapons(g.opts.Upgrades) {
		if w := weapon.New(sw.Kind, g.World.Player, sw.Level); w != nil {
			g.World.Player.AddWeapon(w)
		}
	}

	g.CombatSystem = system.NewCombatSystem(g.World)
	g.StatusEffectSystem = system.NewStatusEffectSystem(g.World)
	g.PlayerSystem = system.NewPlayerSystem(g.World, g.CombatSystem, g.StatusEffectSystem)
	g.SpawnSystem = system.NewSpawnSystem(g.World, g.Run, g.logger)
	g.EnemyAISystem = system.NewEnemyAISystem(g.World)
	g.ProjectileSystem = system.NewProjectileSystem(g.World, g.CombatSystem)
	g.PickupSystem = system.NewPickupSystem(g.World, g.Run)
	g.LootSystem = system.NewLootSystem(g.World, g.Run)
	g.UpgradeSystem = system.NewUpgradeSystem(g.World)
	g.StateSystem = system.NewStateSystem(g.World, g.Run, g.opts.ChallengeRounds, g.logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.World)

	g.input = component.Velocity{}
	g.pending = nil
	g.running = true

	g.logger.Info("run started", "mode", mode, "seed", g.rng.Seed())
	g.StateSystem.Begin()
}

// Stop завершает забег и освобождает зарегистрированные ресурсы. Повторный вызов ничего не делает.
func (g *Game) Stop() {
	if g.running {
		g.running = false
		if g.World != nil && g.World.Player != nil {
			g.World.Player.MarkRemoved()
		}
		g.logger.Info("run stopped")
	}
	releases := g.releases
	g.releases = nil
	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}

// Register добавляет ресурс хоста, который будет освобождён в Stop.
func (g *Game) Register(release func()) {
	if release != nil {
		g.releases = append(g.releases, release)
	}
}

// RunID: идентификатор текущего забега.
func (g *Game) RunID() string { return g.runID }

// Running: забег запущен и не остановлен.
func (g *Game) Running() bool { return g.running }

// Over: забег закончился победой или поражением.
func (g *Game) Over() bool { return g.Run != nil && g.Run.Over }

// SetInput задаёт вектор движения; оси обрезаются до [-1, 1].
func (g *Game) SetInput(x, y float64) {
	g.input = component.Velocity{X: clampAxis(x), Y: clampAxis(y)}
}

// Dash запускает рывок. Нулевой вектор означает направление взгляда.
func (g *Game) Dash(dx, dy float64) bool {
	if !g.running || g.Run.Over || g.Run.Paused || g.Run.HostPaused {
		return false
	}
	if !g.World.Player.Dash(clampAxis(dx), clampAxis(dy)) {
		return false
	}
	g.Events.Dispatch(event.Event{Type: event.PlayerDashed})
	return true
}

// Pause останавливает время забега целиком.
func (g *Game) Pause() {
	if g.Run != nil {
		g.Run.HostPaused = true
	}
}

// Resume снимает паузу хоста.
func (g *Game) Resume() {
	if g.Run != nil {
		g.Run.HostPaused = false
	}
}

// Paused: пауза хоста или ожидание выбора улучшения.
func (g *Game) Paused() bool {
	return g.Run != nil && (g.Run.HostPaused || g.Run.Paused)
}

// PendingUpgrades возвращает текущие варианты улучшения, если выбор ожидается.
func (g *Game) PendingUpgrades() []defs.UpgradeOption { return g.pending }

// ApplyUpgrade применяет выбранный вариант и снимает паузу выбора.
func (g *Game) ApplyUpgrade(id string) error {
	if !g.running {
		return ErrNotRunning
	}
	if !g.Run.Paused || len(g.pending) == 0 {
		return ErrNoPendingUpgrade
	}
	offered := false
	for _, o := range g.pending {
		if o.ID == id {
			offered = true
			break
		}
	}
	if !offered {
		return fmt.Errorf("upgrade %q not offered: %w", id, ErrUnknownUpgrade)
	}
	if err := g.UpgradeSystem.Apply(id); err != nil {
		return err
	}
	g.logger.Debug("upgrade applied", "id", id, "level", g.World.Player.Level)
	g.pending = nil
	g.Run.Paused = false
	return nil
}

// Snapshot возвращает данные для HUD.
func (g *Game) Snapshot() event.Snapshot {
	if g.StateSystem == nil {
		return event.Snapshot{}
	}
	return g.StateSystem.Snapshot()
}

// Step продвигает симуляцию на dt тиков (1 = 1/60 с).
func (g *Game) Step(dt float64) error {
	if !g.running {
		return ErrNotRunning
	}
	dt = clampDelta(dt)
	if dt == 0 || g.Run.Over || g.Run.HostPaused {
		return nil
	}
	g.step(dt)
	return nil
}

func (g *Game) step(dt float64) {
	g.SpawnSystem.Advance(dt)
	g.StateSystem.TickNotice(dt)
	if g.Run.Paused {
		return
	}
	if !g.StateSystem.Update(dt) {
		return
	}

	g.PlayerSystem.Update(dt, g.input)
	g.SpawnSystem.Update(dt)
	g.EnemyAISystem.Update(dt)
	// взрывы камикадзе бьют игрока вне контакта
	if g.lost(false) {
		return
	}

	if boss := g.LootSystem.Collect(); boss != nil && g.StateSystem.OnBossKilled() {
		g.finish(true)
		return
	}
	if g.lost(g.CombatSystem.ContactDamage()) {
		return
	}
	if g.lost(g.ProjectileSystem.Update(dt)) {
		return
	}
	if g.PickupSystem.Update(dt) {
		g.Run.Paused = true
		g.pending = g.UpgradeSystem.Options()
		g.logger.Debug("level up", "level", g.World.Player.Level)
		g.Events.Dispatch(event.Event{Type: event.LevelUp, Data: g.pending})
	}
	g.VisualEffectSystem.Update(dt)
}

// lost завершает забег поражением, если фаза сообщила о смерти или здоровье игрока кончилось.
func (g *Game) lost(died bool) bool {
	if !died && !g.World.Player.Dead() {
		return false
	}
	g.finish(false)
	return true
}

func (g *Game) finish(victory bool) {
	g.Run.Over = true
	g.Run.Victory = victory
	g.World.Player.MarkRemoved()

	bonus := 0
	if victory {
		bonus = system.VictoryBonus(g.Run.Score)
	}
	out := event.Outcome{
		RunID:   g.runID,
		Victory: victory,
		Bonus:   bonus,
		Coins:   g.Run.Coins,
		Score:   g.Run.Score,
		Time:    g.Run.Seconds,
		Level:   g.World.Player.Level,
	}
	g.logger.Info("run over", "victory", victory, "score", out.Score, "coins", out.Coins, "bonus", bonus, "seconds", out.Time)
	g.Events.Dispatch(event.Event{Type: event.RunOver, Data: out})
}

func clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, config.MaxDeltaTicks)
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
