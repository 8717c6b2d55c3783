// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку с центром по cx и базовой линией y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-(b.Max.X-b.Min.X)/2, y, clr)
}

// DrawOutlined рисует центрированный текст с обводкой толщиной thickness.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, cx, y, thickness int, fill, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCentered(screen, s, face, cx+dx, y+dy, outline)
		}
	}
	DrawCentered(screen, s, face, cx, y, fill)
}
