// internal/ui/boss_bar.go
package ui

import (
	"image/color"

	"go-void-survivor/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	bossBarWidth  = 600
	bossBarHeight = 14
)

var (
	bossBarFill      = color.RGBA{220, 38, 38, 230}
	bossBarExhausted = color.RGBA{148, 163, 184, 230}
)

// BossBar: полоса здоровья босса вверху экрана.
type BossBar struct {
	CX, Y float32
}

func NewBossBar(cx, y float32) *BossBar { return &BossBar{CX: cx, Y: y} }

// Draw рисует полосу, если босс жив.
func (b *BossBar) Draw(screen *ebiten.Image, face font.Face, boss *component.Enemy) {
	if boss == nil || !boss.Alive() || boss.MaxHP <= 0 {
		return
	}
	x := b.CX - bossBarWidth/2
	ratio := float32(max(0, boss.HP) / boss.MaxHP)
	fill := bossBarFill
	label := "VOID TITAN"
	if boss.State == component.StateExhausted {
		fill = bossBarExhausted
		label += "  力竭"
	}
	vector.DrawFilledRect(screen, x, b.Y, bossBarWidth*ratio, bossBarHeight, fill, true)
	vector.StrokeRect(screen, x, b.Y, bossBarWidth, bossBarHeight, 1, color.White, true)
	DrawCentered(screen, label, face, int(b.CX), int(b.Y)-4, color.White)
}
