// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/storage"
	"go-void-survivor/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — выбор слота, магазин постоянных улучшений и запуск забега.
type MenuState struct {
	sm       *StateMachine
	session  *Session
	selected int
	message  string
	slots    []*storage.SaveData
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	m.slots = m.session.Store.SlotsInfo()
}

func (m *MenuState) Update(deltaTime float64) {
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(k) {
			if err := m.session.SelectSlot(i); err != nil {
				m.message = err.Error()
			} else {
				m.message = fmt.Sprintf("slot %d loaded", i+1)
			}
		}
	}

	n := len(defs.ShopCatalog)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && n > 0:
		m.selected = (m.selected + 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && n > 0:
		m.selected = (m.selected + n - 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyB) && n > 0:
		m.buy(defs.ShopCatalog[m.selected].ID)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		m.sm.SetState(NewGameState(m.sm, m.session, component.ModeClassic))
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		m.sm.SetState(NewGameState(m.sm, m.session, component.ModeChallenge))
	}
}

func (m *MenuState) buy(id string) {
	err := storage.Purchase(&m.session.Save, id)
	switch {
	case err == nil:
		m.session.Persist()
		m.slots = m.session.Store.SlotsInfo()
		m.message = "purchased " + defs.ShopCatalog[m.selected].Name
	case errors.Is(err, storage.ErrNotEnoughMoney):
		m.message = "not enough money"
	case errors.Is(err, storage.ErrMaxLevel):
		m.message = "max level"
	default:
		m.message = err.Error()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.session.Face
	w := screen.Bounds().Dx()
	ui.DrawOutlined(screen, "VOID SURVIVOR", m.session.BigFace, w/2, 90, 2, config.UIColorBlue, color.White)

	y := 150
	for i, s := range m.slots {
		line := fmt.Sprintf("[%d] empty", i+1)
		if s != nil {
			line = fmt.Sprintf("[%d] money %d  pages %d", i+1, s.Money, s.TotalPagesFound)
		}
		clr := color.Color(config.TextLightColor)
		if i == m.session.Slot {
			clr = config.TextWarnColor
		}
		text.Draw(screen, line, face, 80, y, clr)
		y += 22
	}

	y += 20
	text.Draw(screen, fmt.Sprintf("SHOP  money %d", m.session.Save.Money), face, 80, y, config.CoinColor)
	y += 26
	for i, item := range defs.ShopCatalog {
		lvl := m.session.Save.Upgrades[item.ID]
		cost := storage.CalculateItemCost(item.Cost, lvl)
		line := fmt.Sprintf("%s  %d/%d  %d  %s", item.Name, lvl, item.Max, cost, item.Desc)
		clr := color.Color(config.TextLightColor)
		if i == m.selected {
			line = "> " + line
			clr = config.TextWarnColor
		}
		text.Draw(screen, line, face, 80, y, clr)
		y += 22
	}

	y += 20
	text.Draw(screen, "1-3 slot   up/down select   B buy   C classic   H challenge", face, 80, y, color.White)
	if m.message != "" {
		text.Draw(screen, m.message, face, 80, y+26, config.TextAlertColor)
	}
}

func (m *MenuState) Exit() {}
