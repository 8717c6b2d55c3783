// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton: круглая кнопка паузы с анимацией нажатия.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		// треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-s*0.6, b.Y-s*0.7)
		path.LineTo(b.X-s*0.6, b.Y+s*0.7)
		path.LineTo(b.X+s*0.7, b.Y)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, bl, a := b.PlayColor.RGBA()
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(bl) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	} else {
		// две полосы (pause)
		width, height, spacing := s*0.3, s, s*0.2
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	}
	vector.StrokeCircle(screen, b.X, b.Y, b.Size, 1, color.White, true)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx, dy := float64(x)-float64(b.X), float64(y)-float64(b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

var pixel *ebiten.Image

// whitePixel: центр белой текстуры 3x3 для заливки треугольников.
func whitePixel() *ebiten.Image {
	if pixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		pixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return pixel
}
