// internal/ui/hud.go
package ui

import (
	"image/color"
	"strconv"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const maxLogLines = 5

// HUD собирает данные интерфейса из событий движка и рисует их поверх мира.
type HUD struct {
	Snapshot event.Snapshot
	Notice   string
	Logs     []string
	Over     *event.Outcome

	health *PlayerHealthIndicator
	level  *PlayerLevelIndicator
	round  *RoundIndicator
	boss   *BossBar
	Pause  *PauseButton
}

func NewHUD(screenW int) *HUD {
	return &HUD{
		health: NewPlayerHealthIndicator(20, 30),
		level:  NewPlayerLevelIndicator(20, 60),
		round:  NewRoundIndicator(screenW/2, 28),
		boss:   NewBossBar(float32(screenW)/2, 80),
		Pause:  NewPauseButton(float32(screenW-40), 40, 18, config.UIColorBlue, config.UIColorRed),
	}
}

// OnEvent реализует event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.SnapshotUpdated:
		if s, ok := e.Data.(event.Snapshot); ok {
			h.Snapshot = s
		}
	case event.CenterNotification:
		if s, ok := e.Data.(string); ok {
			h.Notice = s
		}
	case event.LogMessage:
		if s, ok := e.Data.(string); ok {
			h.Logs = append(h.Logs, s)
			if len(h.Logs) > maxLogLines {
				h.Logs = h.Logs[len(h.Logs)-maxLogLines:]
			}
		}
	case event.RunOver:
		if out, ok := e.Data.(event.Outcome); ok {
			h.Over = &out
		}
	}
}

// Attach подписывает HUD на события диспетчера. Возвращает отписку.
func (h *HUD) Attach(d *event.Dispatcher) func() {
	return d.SubscribeAll(h, event.SnapshotUpdated, event.CenterNotification, event.LogMessage, event.RunOver)
}

// Refresh подменяет снимок свежими данными между ежесекундными событиями.
func (h *HUD) Refresh(s event.Snapshot) { h.Snapshot = s }

// Draw рисует HUD.
func (h *HUD) Draw(screen *ebiten.Image, face, bigFace font.Face, boss *component.Enemy) {
	s := h.Snapshot
	w, hgt := screen.Bounds().Dx(), screen.Bounds().Dy()

	h.health.Draw(screen, face, s.HP, s.MaxHP)
	h.level.Draw(screen, face, s.Level, s.XP, s.XPNext)
	h.round.Draw(screen, face, s.Time, s.Round)
	h.boss.Draw(screen, face, boss)
	h.Pause.Draw(screen)

	text.Draw(screen, "SCORE "+strconv.Itoa(s.Score), face, w-200, 30, color.White)
	text.Draw(screen, "COIN  "+strconv.Itoa(s.Coins), face, w-200, 50, config.CoinColor)

	if h.Notice != "" {
		DrawOutlined(screen, h.Notice, bigFace, w/2, hgt/3, 2, config.TextWarnColor, color.Black)
	}
	lineH := face.Metrics().Height.Ceil() + 2
	for i, l := range h.Logs {
		text.Draw(screen, l, face, 20, hgt-20-(len(h.Logs)-1-i)*lineH, config.TextLightColor)
	}
}
