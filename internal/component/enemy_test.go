package component

import (
	"testing"

	"go-void-survivor/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type textRecorder struct{ texts []string }

func (r *textRecorder) AddFloatingText(text string, x, y float64, kind TextKind) {
	r.texts = append(r.texts, text)
}

func TestEnemyDamageIsAdditive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Float64Range(0, 50).Draw(t, "n")
		m := rapid.Float64Range(0, 50).Draw(t, "m")

		a := NewEnemy(1, defs.ArchetypeGolem, 0, 0, 10, 0)
		a.TakeDamage(n, nil)
		a.TakeDamage(m, nil)

		b := NewEnemy(2, defs.ArchetypeGolem, 0, 0, 10, 0)
		b.TakeDamage(n+m, nil)

		if d := a.HP - b.HP; d > 1e-9 || d < -1e-9 {
			t.Fatalf("hp %v != %v", a.HP, b.HP)
		}
	})
}

func TestEnemyKilledAtZero(t *testing.T) {
	e := NewEnemy(1, defs.ArchetypeSlime, 0, 0, 1, 0)
	e.TakeDamage(e.HP, nil)
	assert.Equal(t, Killed, e.Removal)
	assert.False(t, e.Alive())

	// мёртвый враг больше не получает урон
	hp := e.HP
	e.TakeDamage(5, nil)
	assert.Equal(t, hp, e.HP)
}

func TestRemoveSilentlyKeepsKill(t *testing.T) {
	e := NewEnemy(1, defs.ArchetypeSlime, 0, 0, 1, 0)
	e.TakeDamage(1000, nil)
	e.RemoveSilently()
	assert.Equal(t, Killed, e.Removal)

	s := NewEnemy(2, defs.ArchetypeSlime, 0, 0, 1, 0)
	s.RemoveSilently()
	assert.Equal(t, RemovedSilently, s.Removal)
}

func TestDamageTextAndFlash(t *testing.T) {
	rec := &textRecorder{}
	e := NewEnemy(1, defs.ArchetypeGolem, 0, 0, 1, 0)
	e.TakeDamage(7.9, rec)
	assert.Equal(t, []string{"-7"}, rec.texts)
	assert.Equal(t, 5.0, e.HitFlash)
	assert.Equal(t, 15.0, e.HitStun)
}

func TestBossExhaustion(t *testing.T) {
	rec := &textRecorder{}
	b := NewEnemy(1, defs.ArchetypeBoss, 0, 0, 1, 0)
	require.Equal(t, 3000.0, b.MaxHP)
	require.Equal(t, 600.0, b.ExhaustionThreshold)

	b.TakeDamage(599, rec)
	assert.NotEqual(t, StateExhausted, b.State)
	b.TakeDamage(1, rec)
	assert.Equal(t, StateExhausted, b.State)
	assert.InDelta(t, 1.2, b.Enrage, 1e-9)
	assert.Contains(t, rec.texts, "力竭!")
	assert.False(t, b.CanDealDamage())

	// урон во время истощения не копится
	b.TakeDamage(1000, nil)
	assert.InDelta(t, 1.2, b.Enrage, 1e-9)
	assert.Zero(t, b.ExhaustionDamage)

	b.State = StateChasing
	b.TakeDamage(600, nil)
	assert.InDelta(t, 1.4, b.Enrage, 1e-9)
	assert.True(t, b.Alive())
}

func TestBossEnrageStrictlyIncreases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewEnemy(1, defs.ArchetypeBoss, 0, 0, 100, 0)
		hits := rapid.SliceOfN(rapid.Float64Range(1, 2000), 1, 40).Draw(t, "hits")
		prev := b.Enrage
		for _, h := range hits {
			before := b.State
			b.TakeDamage(h, nil)
			if b.State == StateExhausted && before != StateExhausted {
				if b.Enrage <= prev {
					t.Fatalf("enrage %v did not grow from %v", b.Enrage, prev)
				}
				prev = b.Enrage
				b.State = StateChasing
			} else if b.Enrage != prev {
				t.Fatalf("enrage changed without exhaustion")
			}
		}
	})
}

func TestCanDealDamage(t *testing.T) {
	orc := NewEnemy(1, defs.ArchetypeOrc, 0, 0, 1, 0)
	assert.False(t, orc.CanDealDamage())
	orc.SpawnGrace = 0
	assert.True(t, orc.CanDealDamage())

	slime := NewEnemy(2, defs.ArchetypeSlime, 0, 0, 1, 0)
	assert.True(t, slime.CanDealDamage())
	slime.RemoveSilently()
	assert.False(t, slime.CanDealDamage())
}

func TestEliteFixedHealth(t *testing.T) {
	e := NewEnemy(1, defs.ArchetypeElite, 0, 0, 5, 0)
	assert.Equal(t, 1.0, e.MaxHP)
	assert.Equal(t, StateDrifting, e.State)
}

func TestOffspringGeneration(t *testing.T) {
	parent := NewEnemy(1, defs.ArchetypeOrc, 0, 0, 1, 0)
	child := NewOffspring(2, parent, 5, 5)
	assert.Equal(t, 1, child.Generation)
	assert.InDelta(t, parent.Radius*0.8, child.Radius, 1e-9)
	assert.InDelta(t, parent.Speed*1.4, child.Speed, 1e-9)
}
