package system

import (
	"testing"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestWorld(seed int64) *entity.World {
	w := entity.NewWorld(800, 600, utils.NewPRNGService(seed), event.NewDispatcher())
	w.Player = entity.NewPlayer(400, 300, nil)
	return w
}

func spawnAt(w *entity.World, a defs.Archetype, x, y float64) *component.Enemy {
	e := component.NewEnemy(w.NextID(), a, x, y, 1, 0)
	w.AddEnemy(e)
	return e
}

func countEvents(w *entity.World, t event.EventType) *int {
	n := new(int)
	w.Events().Subscribe(t, event.ListenerFunc(func(event.Event) { *n++ }))
	return n
}

func TestKamikazePrimesAndHitsOnce(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	k := spawnAt(w, defs.ArchetypeKamikaze, 550, 300) // 150 px от игрока
	hits := countEvents(w, event.PlayerHit)

	ai.Update(1)
	require.Equal(t, component.StatePriming, k.State)

	for i := 0; i < 100 && k.Alive(); i++ {
		ai.Update(1)
	}
	assert.Equal(t, component.RemovedSilently, k.Removal)
	assert.Equal(t, w.Player.MaxHP-2, w.Player.HP)
	assert.Equal(t, 1, *hits)
	assert.True(t, k.HasDealtDamage)
}

func TestKamikazeMissesOutsideBlast(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	k := spawnAt(w, defs.ArchetypeKamikaze, 400, 300)
	k.State = component.StateExploding
	k.Timer = 45
	k.Pos.X = 579 // ближе 180, но дальше 0.85·160 + 18
	for i := 0; i < 50; i++ {
		ai.Update(1)
	}
	assert.Equal(t, w.Player.MaxHP, w.Player.HP)
	assert.False(t, k.Alive())
}

func TestOrcSplitsIntoTwoOffspringWithoutReward(t *testing.T) {
	w := newTestWorld(3)
	run := &component.RunState{}
	ai := NewEnemyAISystem(w)
	loot := NewLootSystem(w, run)

	orc := spawnAt(w, defs.ArchetypeOrc, 600, 300)
	orc.LifeTime = 181
	ai.Update(1)
	require.Equal(t, component.StateWarning, orc.State)

	for i := 0; i < 181 && orc.Alive(); i++ {
		ai.Update(1)
	}
	require.Equal(t, component.RemovedSilently, orc.Removal)
	assert.Nil(t, loot.Collect())

	require.Len(t, w.Enemies, 2)
	for _, child := range w.Enemies {
		assert.Equal(t, 1, child.Generation)
		assert.Equal(t, defs.ArchetypeOrc, child.Archetype)
		assert.InDelta(t, 22*0.8, child.Radius, 1e-9)
		assert.GreaterOrEqual(t, child.Pos.X, 0.0)
		assert.LessOrEqual(t, child.Pos.X, w.W)
	}
	assert.Zero(t, run.Score)
	assert.Empty(t, w.Pickups)
	assert.NotEmpty(t, w.Texts)
}

func TestSecondGenerationOrcNeverSplits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := newTestWorld(rapid.Int64Range(1, 1000).Draw(t, "seed"))
		ai := NewEnemyAISystem(w)
		orc := spawnAt(w, defs.ArchetypeOrc, rapid.Float64Range(0, 800).Draw(t, "x"), rapid.Float64Range(0, 600).Draw(t, "y"))
		orc.Generation = 2
		orc.LifeTime = rapid.Float64Range(0, 1000).Draw(t, "life")
		ticks := rapid.IntRange(1, 600).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			ai.Update(1)
		}
		if !orc.Alive() || len(w.Enemies) != 1 {
			t.Fatalf("gen-2 orc replicated: alive=%v enemies=%d", orc.Alive(), len(w.Enemies))
		}
	})
}

func TestGolemHitStunFreezesMovement(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	g := spawnAt(w, defs.ArchetypeGolem, 100, 300)
	g.TakeDamage(1, w)
	start := g.Pos

	for i := 0; i < 15; i++ {
		ai.Update(1)
	}
	assert.Equal(t, start, g.Pos)
	ai.Update(1)
	assert.Greater(t, g.Pos.X, start.X)
}

func TestSlimeSeeksAndStaysClamped(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	s := spawnAt(w, defs.ArchetypeSlime, -500, 300)
	ai.Update(1)
	assert.Equal(t, -50.0, s.Pos.X)

	s.Pos = component.Position{X: 100, Y: 300}
	ai.Update(1)
	assert.Greater(t, s.Pos.X, 100.0)
}

func TestEliteLocksDashHeadingAtWarnEnd(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	e := spawnAt(w, defs.ArchetypeElite, 200, 300)
	e.State = component.StateWarn
	e.Timer = 1

	ai.Update(1)
	require.Equal(t, component.StateDash, e.State)
	assert.InDelta(t, 0, e.DashAngle, 1e-9)

	w.Player.Pos.Y = 100
	ai.Update(1)
	assert.InDelta(t, 0, e.DashAngle, 1e-9)
	assert.InDelta(t, 205, e.Pos.X, 1e-9)
}

func TestEliteBouncesOffEdges(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	e := spawnAt(w, defs.ArchetypeElite, 799.9, 300)
	e.DriftAngle = 0
	ai.Update(1)
	assert.InDelta(t, 3.14159, e.DriftAngle, 1e-4)
	assert.Greater(t, e.Pos.X, w.W) // элита не ограничивается рамкой
}
