// internal/state/game_state.go
package state

import (
	game "go-void-survivor/internal/app"
	"go-void-survivor/internal/audio"
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/ui"
	"go-void-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	session  *Session
	game     *game.Game
	renderer *render.WorldRenderer
	hud      *ui.HUD

	levelUp bool
	outcome *event.Outcome
}

func NewGameState(sm *StateMachine, session *Session, mode component.Mode) *GameState {
	g := game.NewGame(game.Options{
		Mode:            mode,
		Seed:            session.Seed,
		Width:           config.ScreenWidth,
		Height:          config.ScreenHeight,
		Upgrades:        session.Save.Upgrades,
		PagesFound:      session.Save.TotalPagesFound,
		ChallengeRounds: session.Rounds,
		Logger:          session.Logger,
	})
	gs := &GameState{
		sm:       sm,
		session:  session,
		game:     g,
		renderer: render.NewWorldRenderer(config.ScreenWidth, config.ScreenHeight, session.Face, render.DefaultPalette()),
		hud:      ui.NewHUD(config.ScreenWidth),
	}

	g.Register(gs.hud.Attach(g.Events))
	if session.Sound != nil {
		g.Register(audio.NewCueListener(session.Sound).Attach(g.Events))
	}
	g.Register(g.Events.Subscribe(event.ProgressChanged, event.ListenerFunc(func(e event.Event) {
		if p, ok := e.Data.(event.Progress); ok {
			session.RecordProgress(p)
		}
	})))
	g.Register(g.Events.Subscribe(event.LevelUp, event.ListenerFunc(func(event.Event) {
		gs.levelUp = true
	})))
	g.Register(g.Events.Subscribe(event.RunOver, event.ListenerFunc(func(e event.Event) {
		if out, ok := e.Data.(event.Outcome); ok {
			gs.outcome = &out
		}
	})))

	g.Start(mode)
	return gs
}

func (g *GameState) Enter() {
	g.hud.Pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.pauseClicked() {
		g.game.Pause()
		g.hud.Pause.SetPaused(true)
		g.sm.Push(NewPauseState(g.sm, g))
		return
	}

	g.game.SetInput(readAxes())
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		x, y := readAxes()
		g.game.Dash(x, y)
	}
	if err := g.game.Step(deltaTime); err != nil {
		g.session.Logger.Error("step failed", "err", err)
	}
	g.renderer.Update(deltaTime)
	g.hud.Refresh(g.game.Snapshot())

	switch {
	case g.outcome != nil:
		g.session.RecordOutcome(*g.outcome)
		g.game.Stop()
		g.sm.SetState(NewGameOverState(g.sm, g.session, *g.outcome))
	case g.levelUp:
		g.levelUp = false
		g.sm.Push(NewLevelUpState(g.sm, g, g.game.PendingUpgrades()))
	}
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return g.hud.Pause.IsClicked(ebiten.CursorPosition())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.World)
	g.hud.Draw(screen, g.session.Face, g.session.BigFace, g.game.World.Boss())
}

func (g *GameState) Exit() {}

// Game даёт вложенным состояниям доступ к движку.
func (g *GameState) Game() *game.Game { return g.game }

// readAxes читает WASD и стрелки.
func readAxes() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	return x, y
}
