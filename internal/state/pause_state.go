// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-void-survivor/internal/config"
	"go-void-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previous: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.previous.hud.Pause.IsClicked(ebiten.CursorPosition()) {
		unpause = true
	}
	if unpause {
		s.previous.Game().Resume()
		s.sm.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	drawDim(screen)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ui.DrawOutlined(screen, "PAUSED", s.previous.session.BigFace, w/2, h/2, 2, config.TextLightColor, color.Black)
}

func (s *PauseState) Exit() {}

func drawDim(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 128}, false)
}
