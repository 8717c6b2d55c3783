// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = 240
	xpBarHeight = 12
	borderWidth = 1
)

var (
	xpBarColorFill = color.RGBA{52, 211, 153, 220}
	borderColor    = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// XPFill: доля заполнения полосы опыта в [0, 1].
func XPFill(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 || currentXP <= 0 {
		return 0
	}
	return min(1, float64(currentXP)/float64(xpToNext))
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, face font.Face, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * XPFill(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}
	text.Draw(screen, fmt.Sprintf("LV %d", level), face, int(i.X+xpBarWidth+8), int(i.Y+xpBarHeight), color.White)
}
