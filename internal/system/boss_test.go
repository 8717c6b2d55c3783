package system

import (
	"testing"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enemyBolts(ps []*component.Projectile) int {
	n := 0
	for _, p := range ps {
		if p.Side == component.SideEnemy {
			n++
		}
	}
	return n
}

func TestBossShootFiresFanAfterWarning(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	b := spawnAt(w, defs.ArchetypeBoss, 400, 100)
	b.State = component.StateWarnShoot

	for i := 0; i < 60; i++ {
		ai.Update(1)
	}
	assert.Empty(t, w.Projectiles)
	ai.Update(1)
	require.Equal(t, component.StateShoot, b.State)
	assert.Equal(t, 5, enemyBolts(w.Projectiles))

	for i := 0; i < 31; i++ {
		ai.Update(1)
	}
	assert.Equal(t, component.StateChasing, b.State)
}

func TestBossSpiralFiresEveryInterval(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	b := spawnAt(w, defs.ArchetypeBoss, 400, 100)
	b.State = component.StateSpiral

	for i := 0; i < 241; i++ {
		ai.Update(1)
	}
	assert.Equal(t, 4*6, enemyBolts(w.Projectiles))
	assert.Equal(t, component.StateChasing, b.State)
}

func TestBossSpiralFasterWhenEnraged(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	b := spawnAt(w, defs.ArchetypeBoss, 400, 100)
	b.State = component.StateSpiral
	b.Enrage = 2

	for i := 0; i < 241; i++ {
		ai.Update(1)
	}
	assert.Equal(t, 8*6, enemyBolts(w.Projectiles))
}

func TestBossDashLocksHeading(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	b := spawnAt(w, defs.ArchetypeBoss, 100, 300)
	b.State = component.StateWarnDash

	for i := 0; i < 121; i++ {
		ai.Update(1)
	}
	require.Equal(t, component.StateDash, b.State)
	w.Player.Pos = component.Position{X: 100, Y: 0}
	ai.Update(1)
	assert.InDelta(t, 106, b.Pos.X, 1e-9)
	assert.InDelta(t, 300, b.Pos.Y, 1e-9)
}

func TestBossChasingDrawsAction(t *testing.T) {
	w := newTestWorld(5)
	ai := NewEnemyAISystem(w)
	b := spawnAt(w, defs.ArchetypeBoss, 100, 300)
	b.ActionCooldown = 1

	ai.Update(1)
	assert.Contains(t, bossActions, b.State)
	assert.Equal(t, 300.0, b.ActionCooldown)
	assert.Zero(t, b.Timer)
}

func TestBossExhaustedIsHarmlessAndRecovers(t *testing.T) {
	w := newTestWorld(1)
	ai := NewEnemyAISystem(w)
	b := spawnAt(w, defs.ArchetypeBoss, 400, 300)
	exhausted := countEvents(w, event.BossExhausted)

	b.TakeDamage(b.MaxHP*0.2, w)
	require.Equal(t, component.StateExhausted, b.State)
	assert.False(t, b.CanDealDamage())
	assert.InDelta(t, 1.2, b.Enrage, 1e-9)

	start := b.Pos
	for i := 0; i < 300; i++ {
		ai.Update(1)
	}
	assert.Equal(t, start, b.Pos)
	assert.Equal(t, component.StateExhausted, b.State)
	assert.Equal(t, 1, *exhausted)

	ai.Update(1)
	assert.Equal(t, component.StateChasing, b.State)
	assert.True(t, b.CanDealDamage())
}
