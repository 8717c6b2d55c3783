package system

import (
	"testing"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLootCollectRewardsOnlyKills(t *testing.T) {
	w := newTestWorld(1)
	run := &component.RunState{}
	loot := NewLootSystem(w, run)

	killed := spawnAt(w, defs.ArchetypeGoblin, 10, 10)
	silent := spawnAt(w, defs.ArchetypeGoblin, 20, 20)
	alive := spawnAt(w, defs.ArchetypeGoblin, 30, 30)
	killed.TakeDamage(100, nil)
	silent.RemoveSilently()

	assert.Nil(t, loot.Collect())
	assert.Equal(t, []*component.Enemy{alive}, w.Enemies)
	assert.Equal(t, 2, run.Score)
	require.NotEmpty(t, w.Pickups)
	assert.Equal(t, component.PickupGem, w.Pickups[0].Kind)
	assert.Equal(t, 2, w.Pickups[0].Value)
}

func TestLootEliteDropsDiary(t *testing.T) {
	w := newTestWorld(1)
	loot := NewLootSystem(w, &component.RunState{})
	e := spawnAt(w, defs.ArchetypeElite, 10, 10)
	e.TakeDamage(1, nil)
	loot.Collect()
	require.Len(t, w.Pickups, 2)
	assert.Equal(t, component.PickupDiary, w.Pickups[1].Kind)
}

func TestLootReturnsKilledBoss(t *testing.T) {
	w := newTestWorld(1)
	run := &component.RunState{Score: 10}
	loot := NewLootSystem(w, run)
	b := spawnAt(w, defs.ArchetypeBoss, 10, 10)
	b.HP = 1
	b.TakeDamage(5, nil)

	assert.Same(t, b, loot.Collect())
	assert.Equal(t, 1010, run.Score)
	assert.Empty(t, w.Pickups)
	assert.Equal(t, 3505, VictoryBonus(run.Score))
}

func TestGemLevelUpScenario(t *testing.T) {
	w := newTestWorld(1)
	ps := NewPickupSystem(w, &component.RunState{})
	w.AddPickup(&component.Pickup{Kind: component.PickupGem, Pos: w.Player.Pos, Value: 5})

	assert.True(t, ps.Update(1))
	p := w.Player
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 6, p.XPToNext)
	assert.Empty(t, w.Pickups)
}

func TestOneLevelUpPerTick(t *testing.T) {
	w := newTestWorld(1)
	ps := NewPickupSystem(w, &component.RunState{})
	for i := 0; i < 2; i++ {
		w.AddPickup(&component.Pickup{Kind: component.PickupGem, Pos: w.Player.Pos, Value: 50})
	}

	assert.True(t, ps.Update(1))
	assert.Equal(t, 2, w.Player.Level)
	assert.Len(t, w.Pickups, 1)

	assert.True(t, ps.Update(1))
	assert.Equal(t, 3, w.Player.Level)
	assert.Empty(t, w.Pickups)
}

func TestMagnetPullsWithinRange(t *testing.T) {
	w := newTestWorld(1)
	ps := NewPickupSystem(w, &component.RunState{})
	gem := &component.Pickup{Kind: component.PickupGem, Pos: component.Position{X: 480, Y: 300}, Value: 1}
	far := &component.Pickup{Kind: component.PickupCoin, Pos: component.Position{X: 700, Y: 300}, Value: 10}
	w.AddPickup(gem)
	w.AddPickup(far)

	assert.False(t, ps.Update(1))
	assert.InDelta(t, 480-80*0.15, gem.Pos.X, 1e-9)
	assert.Equal(t, 700.0, far.Pos.X)
}

func TestItemsCoinsAndDiary(t *testing.T) {
	w := newTestWorld(1)
	run := &component.RunState{PagesFound: 24}
	ps := NewPickupSystem(w, run)
	var progress []event.Progress
	w.Events().Subscribe(event.ProgressChanged, event.ListenerFunc(func(e event.Event) {
		progress = append(progress, e.Data.(event.Progress))
	}))
	logs := countEvents(w, event.LogMessage)

	w.Player.HP = 1
	at := w.Player.Pos
	w.AddPickup(&component.Pickup{Kind: component.PickupCoin, Pos: at, Value: 10})
	w.AddPickup(&component.Pickup{Kind: component.PickupBigCoin, Pos: at, Value: 100})
	w.AddPickup(&component.Pickup{Kind: component.PickupDiary, Pos: at})

	ps.Update(1)
	assert.Equal(t, 110, run.Coins)
	assert.Equal(t, 24, run.PagesFound)
	assert.Equal(t, []event.Progress{{PagesFound: 24}}, progress)
	assert.Equal(t, 1, *logs)
	assert.Equal(t, 4, w.Player.HP)
	assert.Empty(t, w.Pickups)
}
