package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-void-survivor/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestManager(t *testing.T) *Manager {
	m := NewManager(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.now = func() time.Time { return time.UnixMilli(1000) }
	return m
}

func TestLoadEmptySlotGivesDefaults(t *testing.T) {
	m := newTestManager(t)
	save, err := m.Load(1)
	require.NoError(t, err)
	assert.Zero(t, save.Money)
	assert.NotNil(t, save.Upgrades)
	assert.Equal(t, int64(1000), save.LastSaved)

	_, err = m.Load(3)
	assert.ErrorIs(t, err, ErrBadSlot)
	assert.ErrorIs(t, m.Save(-1, SaveData{}), ErrBadSlot)
}

func TestSaveAndLoad(t *testing.T) {
	m := newTestManager(t)
	in := SaveData{Money: 250, TotalPagesFound: 3, Upgrades: map[string]int{"base_hp": 2}}
	require.NoError(t, m.Save(2, in))

	out, err := m.Load(2)
	require.NoError(t, err)
	assert.Equal(t, 250, out.Money)
	assert.Equal(t, 3, out.TotalPagesFound)
	assert.Equal(t, map[string]int{"base_hp": 2}, out.Upgrades)
	assert.FileExists(t, filepath.Join(m.basePath, "survivor_save_slot_2.json"))
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.FilePath(1), []byte(`{"money": 40}`), 0644))
	out, err := m.Load(1)
	require.NoError(t, err)
	assert.Equal(t, 40, out.Money)
	assert.NotNil(t, out.Upgrades)
}

func TestCorruptSlotFallsBack(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.FilePath(0), []byte("{not json"), 0644))
	out, err := m.Load(0)
	require.NoError(t, err)
	assert.Zero(t, out.Money)
	assert.Equal(t, []*SaveData{nil, nil, nil}, m.SlotsInfo())
}

func TestLegacySaveMigratesIntoSlotZero(t *testing.T) {
	m := newTestManager(t)
	legacy := filepath.Join(m.basePath, "survivor_save_classic_plus_v3.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`{"money": 900, "upgrades": {"start_aura": 1}}`), 0644))

	info := m.SlotsInfo()
	require.NotNil(t, info[0])
	assert.Equal(t, 900, info[0].Money)
	assert.Nil(t, info[1])

	out, err := m.Load(0)
	require.NoError(t, err)
	assert.Equal(t, 900, out.Money)
	assert.Equal(t, 1, out.Upgrades["start_aura"])
	assert.FileExists(t, m.FilePath(0))

	// другие слоты старое сохранение не трогает
	other, err := m.Load(1)
	require.NoError(t, err)
	assert.Zero(t, other.Money)
}

func TestCalculateItemCost(t *testing.T) {
	assert.Equal(t, 100, CalculateItemCost(100, 0))
	assert.Equal(t, 150, CalculateItemCost(100, 1))
	assert.Equal(t, 220, CalculateItemCost(100, 2))
	assert.Equal(t, 10, CalculateItemCost(1, 0))

	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(1, 1000).Draw(t, "base")
		lvl := rapid.IntRange(0, 10).Draw(t, "level")
		c := CalculateItemCost(base, lvl)
		if c < 10 || c%10 != 0 {
			t.Fatalf("cost %d", c)
		}
		if next := CalculateItemCost(base, lvl+1); next < c {
			t.Fatalf("cost decreased %d -> %d", c, next)
		}
	})
}

func TestPurchase(t *testing.T) {
	save := SaveData{Money: 260}
	require.NoError(t, Purchase(&save, "base_hp"))
	assert.Equal(t, 160, save.Money)
	assert.Equal(t, 1, save.Upgrades["base_hp"])

	require.NoError(t, Purchase(&save, "base_hp"))
	assert.Equal(t, 10, save.Money)
	assert.ErrorIs(t, Purchase(&save, "base_hp"), ErrNotEnoughMoney)
	assert.ErrorIs(t, Purchase(&save, "bogus"), ErrUnknownItem)

	save = SaveData{Money: 10000, Upgrades: map[string]int{"start_whip_lv2": 1}}
	assert.ErrorIs(t, Purchase(&save, "start_whip_lv2"), ErrMaxLevel)
}

func TestApplyOutcomeAndProgress(t *testing.T) {
	save := SaveData{Money: 5, TotalPagesFound: 4}
	ApplyOutcome(&save, event.Outcome{Coins: 30, Bonus: 3100})
	assert.Equal(t, 3135, save.Money)

	ApplyProgress(&save, event.Progress{PagesFound: 2})
	assert.Equal(t, 4, save.TotalPagesFound)
	ApplyProgress(&save, event.Progress{PagesFound: 6})
	assert.Equal(t, 6, save.TotalPagesFound)
}
