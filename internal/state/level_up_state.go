// internal/state/level_up_state.go
package state

import (
	"image/color"

	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LevelUpState показывает карточки улучшений и ждёт выбора.
type LevelUpState struct {
	sm       *StateMachine
	previous *GameState
	cards    []*ui.Button
}

func NewLevelUpState(sm *StateMachine, prev *GameState, opts []defs.UpgradeOption) *LevelUpState {
	return &LevelUpState{
		sm:       sm,
		previous: prev,
		cards:    ui.NewUpgradeCards(opts, config.ScreenWidth, config.ScreenHeight),
	}
}

func (s *LevelUpState) Enter() {}

func (s *LevelUpState) Update(deltaTime float64) {
	var picked *ui.Button
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if i < len(s.cards) && inpututil.IsKeyJustPressed(k) {
			picked = s.cards[i]
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if c := ui.CardAt(s.cards, mx, my); c != nil {
			picked = c
		}
	}
	if picked == nil {
		// уведомления и отсчёты идут и во время выбора
		_ = s.previous.Game().Step(deltaTime)
		return
	}
	if err := s.previous.Game().ApplyUpgrade(picked.ID); err != nil {
		s.previous.session.Logger.Warn("upgrade rejected", "id", picked.ID, "err", err)
		return
	}
	s.sm.Pop()
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	drawDim(screen)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ui.DrawOutlined(screen, "LEVEL UP", s.previous.session.BigFace, w/2, h/2-100, 2, config.TextWarnColor, color.Black)

	mx, my := ebiten.CursorPosition()
	for _, c := range s.cards {
		c.Draw(screen, s.previous.session.Face, c.Contains(mx, my))
	}
}

func (s *LevelUpState) Exit() {}
