// internal/ui/upgrade_cards.go
package ui

import (
	"fmt"
	"image"

	"go-void-survivor/internal/defs"
)

const (
	cardWidth  = 260
	cardHeight = 120
	cardGap    = 30
)

// NewUpgradeCards раскладывает варианты улучшения в ряд по центру экрана.
func NewUpgradeCards(opts []defs.UpgradeOption, screenW, screenH int) []*Button {
	n := len(opts)
	if n == 0 {
		return nil
	}
	total := n*cardWidth + (n-1)*cardGap
	x := (screenW - total) / 2
	y := (screenH - cardHeight) / 2
	cards := make([]*Button, 0, n)
	for i, o := range opts {
		r := image.Rect(x, y, x+cardWidth, y+cardHeight)
		b := NewButton(r, fmt.Sprintf("%d. %s", i+1, o.Text))
		b.Subtext = o.Description
		b.ID = o.ID
		cards = append(cards, b)
		x += cardWidth + cardGap
	}
	return cards
}

// CardAt возвращает карточку под курсором или nil.
func CardAt(cards []*Button, x, y int) *Button {
	for _, c := range cards {
		if c.Contains(x, y) {
			return c
		}
	}
	return nil
}
