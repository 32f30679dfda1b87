package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

func fireAt(w *ecs.World, x, y, r, damage float64) *component.Projectile {
	p := &component.Projectile{X: x, Y: y, R: r, Speed: 20, Damage: damage, Life: 60, Weapon: "pistol"}
	w.SpawnProjectile(p)
	w.Commit()
	return p
}

func TestHeadshotScenario(t *testing.T) {
	w := newWorld()
	a := newAdversary(0, 0, "pistol")
	w.AddActor(a)
	p := fireAt(w, 20, 10, 0, 10)

	NewCollisionSystem(nil).Update(w)

	assert.Equal(t, component.Health{10, 40, 30}, a.Health)
	assert.Equal(t, -5.0, a.Knockback)
	assert.InDelta(t, 10*common.Deg(10)*-1, a.RotateTo, eps)
	assert.True(t, p.Dead)
	assert.Equal(t, 1, countParticles(w.PendingParticles(), component.ParticleImpact))
	assert.False(t, a.Dead)
}

func TestZoneDamage(t *testing.T) {
	cases := []struct {
		name      string
		x, y      float64
		want      component.Health
		knockback float64
		rotate    float64
	}{
		{"head", 20, 5, component.Health{13, 40, 30}, -3.5, 7 * common.Deg(10) * -1},
		{"body", 20, 40, component.Health{20, 33, 30}, -1.75, 0},
		{"legs", 20, 70, component.Health{20, 40, 23}, -1.75, 7 * common.Deg(5)},
		{"head_and_body_seam", 20, 20, component.Health{13, 33, 30}, -1.75, 7 * common.Deg(10) * -1},
		{"miss", 2, 40, component.Health{20, 40, 30}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld()
			a := newAdversary(0, 0, "pistol")
			e := w.AddActor(a)
			fireAt(w, c.x, c.y, 0, 7)

			reactions := 0
			hook := func(_ *ecs.World, he ecs.Entity, _ *component.Actor, _ component.Zone, _ *component.Projectile) {
				require.Equal(t, e, he)
				reactions++
			}
			NewCollisionSystem(hook).Update(w)

			assert.Equal(t, c.want, a.Health)
			assert.InDelta(t, c.knockback, a.Knockback, eps)
			assert.InDelta(t, c.rotate, a.RotateTo, eps)

			zonesHit := 0
			for i := range a.Health {
				if a.Health[i] != a.MaxHealth[i] {
					zonesHit++
				}
			}
			assert.Equal(t, zonesHit, reactions)
		})
	}
}

func TestProjectileHitsOnceAcrossActors(t *testing.T) {
	w := newWorld()
	first := newAdversary(0, 0, "pistol")
	second := newAdversary(0, 0, "pistol")
	w.AddActor(first)
	w.AddActor(second)
	p := fireAt(w, 20, 40, 0, 5)

	NewCollisionSystem(nil).Update(w)

	lost := (first.MaxHealth[1] - first.Health[1]) + (second.MaxHealth[1] - second.Health[1])
	assert.Equal(t, 5.0, lost)
	assert.True(t, p.Dead)
	assert.Equal(t, 1, countParticles(w.PendingParticles(), component.ParticleImpact))
}

func TestOwnerIsNotHit(t *testing.T) {
	w := newWorld()
	a := newAdversary(0, 0, "pistol")
	e := w.AddActor(a)
	p := &component.Projectile{OwnerID: uint64(e), X: 20, Y: 40, Damage: 5, Life: 10}
	w.SpawnProjectile(p)
	w.Commit()

	NewCollisionSystem(nil).Update(w)

	assert.Equal(t, a.MaxHealth, a.Health)
	assert.False(t, p.Dead)
}

func TestDeadProjectileIgnored(t *testing.T) {
	w := newWorld()
	a := newAdversary(0, 0, "pistol")
	w.AddActor(a)
	p := fireAt(w, 20, 40, 0, 5)
	p.Dead = true

	NewCollisionSystem(nil).Update(w)
	assert.Equal(t, a.MaxHealth, a.Health)
}

func TestKnockbackSign(t *testing.T) {
	cases := []struct {
		name string
		r    float64
		want float64
	}{
		{"rightward", 0, -1},
		{"leftward", math.Pi, 1},
		{"straight_down", math.Pi / 2, 1},
		{"straight_up", -math.Pi / 2, 1},
		{"full_turn", 2 * math.Pi, -1},
		{"down_right", math.Pi / 4, -1},
		{"up_left", -3 * math.Pi / 4, 1},
		{"wrapped_left", -math.Pi, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BulletDir(c.r))

			w := newWorld()
			a := newAdversary(0, 0, "pistol")
			w.AddActor(a)
			fireAt(w, 20, 40, c.r, 8)
			NewCollisionSystem(nil).Update(w)
			assert.Equal(t, 2*c.want, a.Knockback)
		})
	}
}

func TestFacingShiftsBodyBox(t *testing.T) {
	a := newAdversary(0, 0, "pistol")
	right := Hitboxes(a)
	a.Dir = -1
	left := Hitboxes(a)

	assert.Equal(t, right[component.ZoneHead], left[component.ZoneHead])
	assert.Equal(t, right[component.ZoneBody].L+5, left[component.ZoneBody].L)
	assert.Equal(t, right[component.ZoneLegs].L+5, left[component.ZoneLegs].L)

	a.MovingDirTo = 1
	moving := Hitboxes(a)
	assert.InDelta(t, left[component.ZoneHead].L+10, moving[component.ZoneHead].L, eps)
	assert.InDelta(t, left[component.ZoneBody].L+7.5, moving[component.ZoneBody].L, eps)
}

func TestExhaustedActorDiesAfterScan(t *testing.T) {
	w := newWorld()
	a := newAdversary(0, 0, "pistol")
	a.Health[0] = 4
	w.AddActor(a)
	fireAt(w, 20, 10, 0, 10)

	NewCollisionSystem(nil).Update(w)

	assert.True(t, a.Dead)
	assert.Equal(t, -6.0, a.Health[0], "health is not clamped")
	assert.Equal(t, 1, countCues(w.Cues(), ecs.CueDeath))

	// a dead actor is no longer a target
	p := fireAt(w, 20, 40, 0, 10)
	NewCollisionSystem(nil).Update(w)
	assert.False(t, p.Dead)
}

func TestDamageClockResetsRegen(t *testing.T) {
	w := newWorld()
	a := newProtagonist(0, 0, component.Slot{Weapon: "pistol", Ammo: 5})
	a.Protagonist.TimeSinceDamaged = 200
	w.AddActor(a)
	fireAt(w, 20, 40, math.Pi, 3)

	NewCollisionSystem(DamageClock).Update(w)

	assert.Equal(t, 0, a.Protagonist.TimeSinceDamaged)
	assert.Equal(t, 1, countCues(w.Cues(), ecs.CueHit))
}
