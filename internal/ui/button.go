// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Subtext    string
	ID         string
	BgColor    color.RGBA
	HoverColor color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		BgColor:    color.RGBA{40, 44, 60, 230},
		HoverColor: color.RGBA{70, 80, 110, 240},
	}
}

// Contains: попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; hovered подсвечивает её.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, true)

	cx := b.Rect.Min.X + b.Rect.Dx()/2
	lineH := face.Metrics().Height.Ceil()
	if b.Subtext == "" {
		DrawCentered(screen, b.Text, face, cx, b.Rect.Min.Y+(b.Rect.Dy()+lineH)/2, color.White)
		return
	}
	DrawCentered(screen, b.Text, face, cx, b.Rect.Min.Y+b.Rect.Dy()/2-2, color.White)
	DrawCentered(screen, b.Subtext, face, cx, b.Rect.Min.Y+b.Rect.Dy()/2+lineH+2, color.RGBA{180, 180, 190, 255})
}
