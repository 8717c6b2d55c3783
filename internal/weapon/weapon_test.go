package weapon

import (
	"math"
	"testing"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwner struct {
	pos     component.Position
	facing  float64
	mult    float64
	dash    bool
	removed bool
}

func (o *fakeOwner) Position() component.Position { return o.pos }
func (o *fakeOwner) Facing() float64              { return o.facing }
func (o *fakeOwner) CooldownMultiplier() float64  { return o.mult }
func (o *fakeOwner) DashTriggered() bool          { return o.dash }
func (o *fakeOwner) Removed() bool                { return o.removed }

func newTestWorld() *entity.World {
	return entity.NewWorld(800, 600, utils.NewPRNGService(7), nil)
}

func addEnemy(w *entity.World, x, y, hp float64) *component.Enemy {
	e := component.NewEnemy(w.NextID(), defs.ArchetypeGoblin, x, y, 1, 0)
	e.HP, e.MaxHP = hp, hp
	w.AddEnemy(e)
	return e
}

func TestNewAppliesUpgradesUpToLevel(t *testing.T) {
	owner := &fakeOwner{mult: 1}
	m := New(defs.WeaponMissile, owner, 3).(*Missile)
	assert.Equal(t, 3, m.Level())
	assert.Equal(t, 3, m.Count)
	assert.Equal(t, 80.0, m.Radius)

	assert.Nil(t, New("bogus", owner, 1))
	for _, k := range defs.WeaponKinds {
		w := New(k, owner, 1)
		require.NotNil(t, w, k)
		assert.Equal(t, k, w.Kind())
	}
}

func TestPulseUpgradeTable(t *testing.T) {
	p := NewPulse(&fakeOwner{mult: 1})
	assert.Equal(t, 7.5, p.Damage())
	p.Upgrade() // 2
	assert.Equal(t, 90.0, p.Range)
	assert.Equal(t, 20.0, p.Width)
	p.Upgrade() // 3
	assert.Equal(t, 90.0, p.Range)
	assert.Equal(t, 30.0, p.Width)
	p.Upgrade() // 4
	assert.Equal(t, 110.0, p.Range)
	assert.Equal(t, 35.0, p.Width)
	p.Upgrade() // 5
	assert.Equal(t, 130.0, p.Range)
	assert.Equal(t, 40.0, p.Width)
	assert.Equal(t, 5+5*2.5+8, p.Damage())
}

func TestPulseHitsFacingSideThenBothSides(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 400, Y: 300}, mult: 1}
	right := addEnemy(w, 460, 300, 100)
	left := addEnemy(w, 340, 300, 100)

	p := NewPulse(owner)
	p.Update(1, w)
	assert.Equal(t, 100-7.5, right.HP)
	assert.Equal(t, 100.0, left.HP)
	assert.True(t, p.Attacking)

	p.Upgrade()
	// ждём конца атаки и кулдауна
	for i := 0; i < 90; i++ {
		p.Update(1, w)
	}
	assert.Less(t, left.HP, 100.0)
}

func TestPulseCooldownScalesWithOwnerMultiplier(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 400, Y: 300}, mult: 0.5}
	e := addEnemy(w, 460, 300, 1000)
	p := NewPulse(owner)

	hits := 0
	last := e.HP
	for i := 0; i < 91; i++ {
		p.Update(1, w)
		if e.HP < last {
			hits++
			last = e.HP
		}
	}
	// кулдаун 45 тиков: выстрелы на 1, 46 и 91 тике
	assert.Equal(t, 3, hits)
}

func TestMissilePerTargetHitCooldown(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 400, Y: 300}, mult: 1}
	e := addEnemy(w, 400, 300, 1000)
	e.Radius = 100 // всегда в контакте с орбитой

	m := NewMissile(owner)
	dmg := 3 + 0.8
	m.Update(1, w)
	assert.InDelta(t, 1000-dmg, e.HP, 1e-9)
	assert.Equal(t, missileHitCooldown, m.HitCooldown(e.ID))

	for i := 0; i < 29; i++ {
		m.Update(1, w)
	}
	assert.InDelta(t, 1000-dmg, e.HP, 1e-9)

	for i := 0; i < 3; i++ {
		m.Update(1, w)
	}
	assert.InDelta(t, 1000-2*dmg, e.HP, 1e-9)
}

func TestAuraDamagesOnlyInsideRadius(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 400, Y: 300}, mult: 1}
	near := addEnemy(w, 450, 300, 10)
	far := addEnemy(w, 600, 300, 10)

	a := NewAura(owner)
	a.Update(1, w)
	assert.Equal(t, 9.0, near.HP)
	assert.Equal(t, 10.0, far.HP)

	a.Upgrade()
	assert.Equal(t, 90.0, a.Radius)
	assert.InDelta(t, 1.1, a.Damage, 1e-9)
}

func TestLightningHitsDistinctTargets(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{mult: 1}
	a := addEnemy(w, 10, 10, 100)
	b := addEnemy(w, 700, 500, 100)
	c := addEnemy(w, 300, 300, 100)

	l := NewLightning(owner)
	l.Upgrade()
	l.Upgrade() // уровень 3: две цели
	require.Equal(t, 2, l.Targets())
	l.Update(1, w)

	hit := 0
	for _, e := range []*component.Enemy{a, b, c} {
		switch e.HP {
		case 100:
		case 100 - l.Damage:
			hit++
		default:
			t.Fatalf("enemy hit more than once: hp %v", e.HP)
		}
	}
	assert.Equal(t, 2, hit)
	assert.Len(t, l.Strikes, 2)
	assert.InDelta(t, 200*0.81, l.Cooldown, 1e-9)
}

func TestLaserFiresLevelPlusOneBeams(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 100, Y: 100}, mult: 1}
	l := NewLaser(owner)
	l.Upgrade()
	l.Update(1, w)

	require.Len(t, w.Projectiles, 3)
	for _, p := range w.Projectiles {
		assert.Equal(t, component.ShapeBeam, p.Shape)
		assert.Equal(t, component.SidePlayer, p.Side)
		assert.InDelta(t, 8.0, math.Hypot(p.Vel.X, p.Vel.Y), 1e-9)
	}
	assert.InDelta(t, -0.2, math.Atan2(w.Projectiles[0].Vel.Y, w.Projectiles[0].Vel.X), 1e-9)
}

func TestTrailDropsZonesWhileMoving(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 100, Y: 100}, mult: 1}
	tr := NewTrail(owner)
	tr.Update(1, w)
	assert.Empty(t, tr.Zones)

	owner.pos.X += 25
	tr.Update(1, w)
	require.Len(t, tr.Zones, 1)

	e := addEnemy(w, owner.pos.X, owner.pos.Y, 100)
	for i := 0; i < 100; i++ {
		tr.Update(1, w)
	}
	assert.Less(t, e.HP, 100.0)
	assert.Empty(t, tr.Zones)
}

func TestDashBlastArmsOnlyOnDash(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 50, Y: 60}, mult: 1}
	d := NewDashBlast(owner)
	d.Update(1, w)
	assert.Empty(t, w.Projectiles)

	owner.dash = true
	d.Update(1, w)
	require.Len(t, w.Projectiles, 1)
	p := w.Projectiles[0]
	assert.Equal(t, component.ShapeExplosion, p.Shape)
	assert.Equal(t, 30.0, p.Delay)
	assert.Equal(t, 125.0, p.Radius)
	assert.True(t, p.Inert())
}

func TestRemovedOwnerDealsNoDamage(t *testing.T) {
	w := newTestWorld()
	owner := &fakeOwner{pos: component.Position{X: 400, Y: 300}, mult: 1, removed: true}
	e := addEnemy(w, 420, 300, 50)
	for _, k := range defs.WeaponKinds {
		New(k, owner, 1).Update(1, w)
	}
	assert.Equal(t, 50.0, e.HP)
	assert.Empty(t, w.Projectiles)
}
