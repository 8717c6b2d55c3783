package ui

import (
	"testing"

	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 3: "III", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), n)
	}
}

func TestXPFill(t *testing.T) {
	assert.Zero(t, XPFill(3, 0))
	assert.InDelta(t, 0.5, XPFill(3, 6), 1e-9)
	assert.Equal(t, 1.0, XPFill(9, 6))
}

func TestHealthCellColor(t *testing.T) {
	assert.Equal(t, healthFullColor, HealthCellColor(0, 4, 5))
	assert.Equal(t, healthEmptyColor, HealthCellColor(4, 4, 5))
	assert.Equal(t, healthLowColor, HealthCellColor(0, 2, 5))
}

func TestUpgradeCardsLayout(t *testing.T) {
	opts := []defs.UpgradeOption{{ID: "heal", Text: "A"}, {ID: "max_hp", Text: "B"}, {ID: "nuke", Text: "C"}}
	cards := NewUpgradeCards(opts, 1200, 900)
	require.Len(t, cards, 3)
	assert.Equal(t, (1200-3*cardWidth-2*cardGap)/2, cards[0].Rect.Min.X)
	assert.Equal(t, "1. A", cards[0].Text)
	for i := 1; i < 3; i++ {
		assert.Equal(t, cardGap, cards[i].Rect.Min.X-cards[i-1].Rect.Max.X)
	}
	c := cards[1].Rect
	assert.Equal(t, "max_hp", CardAt(cards, c.Min.X+1, c.Min.Y+1).ID)
	assert.Nil(t, CardAt(cards, 0, 0))
	assert.Nil(t, NewUpgradeCards(nil, 1200, 900))
}

func TestHUDFollowsEvents(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(1200)
	cancel := h.Attach(d)

	d.Dispatch(event.Event{Type: event.SnapshotUpdated, Data: event.Snapshot{HP: 3, Score: 40}})
	d.Dispatch(event.Event{Type: event.CenterNotification, Data: "GO!"})
	for i := 0; i < 7; i++ {
		d.Dispatch(event.Event{Type: event.LogMessage, Data: string(rune('a' + i))})
	}
	assert.Equal(t, 40, h.Snapshot.Score)
	assert.Equal(t, "GO!", h.Notice)
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, h.Logs)

	d.Dispatch(event.Event{Type: event.CenterNotification, Data: ""})
	assert.Empty(t, h.Notice)

	d.Dispatch(event.Event{Type: event.RunOver, Data: event.Outcome{Victory: true, Score: 9}})
	require.NotNil(t, h.Over)
	assert.True(t, h.Over.Victory)

	cancel()
	d.Dispatch(event.Event{Type: event.CenterNotification, Data: "x"})
	assert.Empty(t, h.Notice)
}

func TestPauseButtonHit(t *testing.T) {
	b := NewPauseButton(100, 100, 18, nil, nil)
	assert.True(t, b.IsClicked(110, 105))
	assert.False(t, b.IsClicked(130, 100))
	b.TogglePause()
	assert.True(t, b.IsPaused)
}
