package system

import (
	"testing"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestContactDamageRespectsInvincibility(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	spawnAt(w, defs.ArchetypeSlime, 410, 300)
	spawnAt(w, defs.ArchetypeSlime, 390, 300)

	assert.False(t, c.ContactDamage())
	assert.Equal(t, 4, w.Player.HP)

	// неуязвимость 60 тиков
	assert.False(t, c.ContactDamage())
	assert.Equal(t, 4, w.Player.HP)
}

func TestContactDamageKillsPlayer(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	w.Player.HP = 1
	spawnAt(w, defs.ArchetypeSlime, 400, 300)
	assert.True(t, c.ContactDamage())
	assert.Zero(t, w.Player.HP)
}

func TestOrcGraceAndExhaustedBossDealNoContactDamage(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	spawnAt(w, defs.ArchetypeOrc, 400, 300)
	boss := spawnAt(w, defs.ArchetypeBoss, 400, 300)
	boss.State = component.StateExhausted

	c.ContactDamage()
	assert.Equal(t, w.Player.MaxHP, w.Player.HP)
}

func TestBoltDiesOnFirstHitBeamPierces(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	a := spawnAt(w, defs.ArchetypeGoblin, 100, 100)
	b := spawnAt(w, defs.ArchetypeGoblin, 105, 100)

	bolt := w.NewProjectile(component.SidePlayer, component.ShapeBolt, 100, 100, 0, 0, 3)
	c.ProjectileHits(bolt)
	assert.True(t, bolt.Expired())
	assert.Equal(t, 7.0, a.HP)
	assert.Equal(t, 10.0, b.HP)

	beam := w.NewProjectile(component.SidePlayer, component.ShapeBeam, 100, 100, 0, 0, 3)
	c.ProjectileHits(beam)
	c.ProjectileHits(beam)
	assert.False(t, beam.Expired())
	assert.Equal(t, 4.0, a.HP)
	assert.Equal(t, 7.0, b.HP)
}

func TestDelayedExplosionIsInert(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	e := spawnAt(w, defs.ArchetypeGoblin, 100, 100)

	ex := w.NewProjectile(component.SidePlayer, component.ShapeExplosion, 100, 100, 0, 0, 5)
	ex.Radius, ex.Life, ex.MaxLife, ex.Delay = 125, 20, 20, 30
	c.ProjectileHits(ex)
	assert.Equal(t, 10.0, e.HP)

	ex.Delay = 0
	c.ProjectileHits(ex)
	assert.Equal(t, 5.0, e.HP)
}

func TestExplosionUsesGrowingRadius(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	e := spawnAt(w, defs.ArchetypeGoblin, 200, 100) // 100 px от центра

	ex := w.NewProjectile(component.SidePlayer, component.ShapeExplosion, 100, 100, 0, 0, 5)
	ex.Radius, ex.Life, ex.MaxLife = 125, 20, 20
	c.ProjectileHits(ex) // видимый радиус 25
	assert.Equal(t, 10.0, e.HP)

	ex.Life = 5 // радиус 125·(0.2 + 0.8·0.75) = 100
	c.ProjectileHits(ex)
	assert.Equal(t, 5.0, e.HP)
}

func TestEnemyBoltHitsPlayerOnce(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	bolt := w.NewProjectile(component.SideEnemy, component.ShapeBolt, 405, 300, 0, 0, 1)
	assert.False(t, c.BoltHitsPlayer(bolt))
	assert.True(t, bolt.Expired())
	assert.Equal(t, 4, w.Player.HP)

	// неуязвимость гасит урон, но снаряд всё равно исчезает
	again := w.NewProjectile(component.SideEnemy, component.ShapeBolt, 405, 300, 0, 0, 1)
	c.BoltHitsPlayer(again)
	assert.True(t, again.Expired())
	assert.Equal(t, 4, w.Player.HP)
}

func TestDashContactHitsEveryTick(t *testing.T) {
	w := newTestWorld(1)
	c := NewCombatSystem(w)
	e := spawnAt(w, defs.ArchetypeGoblin, 440, 300) // 18 + 16 + 10 = 44
	far := spawnAt(w, defs.ArchetypeGoblin, 450, 300)
	c.DashContact()
	c.DashContact()
	assert.Equal(t, 8.0, e.HP)
	assert.Equal(t, 10.0, far.HP)
}

func TestPlayerHPStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := newTestWorld(rapid.Int64Range(1, 100).Draw(t, "seed"))
		c := NewCombatSystem(w)
		ps := NewProjectileSystem(w, c)
		n := rapid.IntRange(0, 20).Draw(t, "enemies")
		for i := 0; i < n; i++ {
			spawnAt(w, defs.ArchetypeSlime, rapid.Float64Range(350, 450).Draw(t, "x"), rapid.Float64Range(250, 350).Draw(t, "y"))
			w.AddProjectile(w.NewProjectile(component.SideEnemy, component.ShapeBolt, 400, 300, 0, 0, 1))
		}
		for tick := 0; tick < 200; tick++ {
			w.Player.InvincibleTimer -= 1
			c.ContactDamage()
			ps.Update(1)
			p := w.Player
			if p.HP < 0 || p.HP > p.MaxHP {
				t.Fatalf("hp %d outside [0, %d]", p.HP, p.MaxHP)
			}
		}
	})
}

func TestProjectileSystemDropsExpired(t *testing.T) {
	w := newTestWorld(1)
	ps := NewProjectileSystem(w, NewCombatSystem(w))
	p := w.NewProjectile(component.SidePlayer, component.ShapeBeam, 0, 0, 1, 0, 1)
	p.Life = 2
	w.AddProjectile(p)

	ps.Update(1)
	require.Len(t, w.Projectiles, 1)
	assert.Equal(t, 1.0, p.Pos.X)
	ps.Update(1)
	assert.Empty(t, w.Projectiles)
}
