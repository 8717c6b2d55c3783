// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"go-void-survivor/internal/config"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/ui"
	"go-void-survivor/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итог забега.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	outcome event.Outcome
}

func NewGameOverState(sm *StateMachine, session *Session, out event.Outcome) *GameOverState {
	return &GameOverState{sm: sm, session: session, outcome: out}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	title, clr := "GAME OVER", config.TextAlertColor
	if s.outcome.Victory {
		title, clr = "VICTORY", config.TextWarnColor
	}
	ui.DrawOutlined(screen, title, s.session.BigFace, w/2, h/3, 2, clr, color.Black)

	lines := []string{
		fmt.Sprintf("score %d", s.outcome.Score),
		fmt.Sprintf("time %s", utils.FormatClock(s.outcome.Time)),
		fmt.Sprintf("level %d", s.outcome.Level),
		fmt.Sprintf("coins %d  bonus %d", s.outcome.Coins, s.outcome.Bonus),
		"",
		"ENTER to continue",
	}
	y := h/3 + 50
	for _, l := range lines {
		ui.DrawCentered(screen, l, s.session.Face, w/2, y, config.TextLightColor)
		y += 24
	}
}

func (s *GameOverState) Exit() {}
