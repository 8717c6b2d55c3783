// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

var (
	healthFullColor  = color.RGBA{96, 165, 250, 255}
	healthLowColor   = color.RGBA{220, 60, 60, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// HealthCellColor: цвет ячейки j: при здоровье не выше половины все полные ячейки красные.
func HealthCellColor(j, health, maxHealth int) color.RGBA {
	switch {
	case j >= health:
		return healthEmptyColor
	case health*2 <= maxHealth:
		return healthLowColor
	default:
		return healthFullColor
	}
}

// Draw рисует индикатор здоровья игрока в виде ряда кружков.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, HealthCellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	DrawCentered(screen, label, face, int(i.X)+int(step)*min(maxHealth, HealthCols)/2, int(i.Y)-6, color.White)
}
