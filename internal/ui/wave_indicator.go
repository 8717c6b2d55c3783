// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-void-survivor/internal/config"
	"go-void-survivor/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// RoundIndicator отображает время забега и номер раунда испытания римскими цифрами.
type RoundIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewRoundIndicator создает новый индикатор.
func NewRoundIndicator(x, y int) *RoundIndicator {
	return &RoundIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. при round == 0 (классика) показывается только время.
func (i *RoundIndicator) Draw(screen *ebiten.Image, face font.Face, seconds, round int) {
	DrawOutlined(screen, utils.FormatClock(seconds), face, i.X, i.Y, i.OutlineThickness, i.Color, i.OutlineColor)
	if round <= 0 {
		return
	}
	textColor := i.Color
	if round%5 == 0 {
		textColor = config.UIColorRed
	}
	DrawOutlined(screen, "ROUND "+toRoman(round), face, i.X, i.Y+face.Metrics().Height.Ceil()+4, i.OutlineThickness, textColor, i.OutlineColor)
}
