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

// meleeSetup places the strike point 45 units left of the target's box.
func meleeSetup(rng float64) (*ecs.World, ecs.Entity, *component.Actor, ecs.Entity, *component.Actor, *component.Weapon) {
	knife := &component.Weapon{
		ID: "blade", Damage: 12,
		Melee: &component.MeleeSpec{Length: 30, Range: rng, Knockback: 8},
	}
	w := ecs.NewWorld(ecs.WithWeapons(component.WeaponTable{"blade": knife}))
	attacker := newProtagonist(0, 0, component.Slot{Weapon: "blade"})
	attacker.WeaponRotationTo = 0
	target := newAdversary(95, 0, "blade")
	ae := w.AddActor(attacker)
	te := w.AddActor(target)
	return w, ae, attacker, te, target, knife
}

func TestMeleeRange(t *testing.T) {
	cases := []struct {
		name  string
		rng   float64
		hit   bool
		body  float64
		kb    float64
		queue int
	}{
		{"in_range", 50, true, 28, -8, 1},
		{"out_of_range", 40, false, 40, 0, 0},
		{"exact_range_misses", 45, false, 40, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ae, attacker, _, target, knife := meleeSetup(c.rng)

			hits := Strike(w, ae, attacker, knife)

			assert.Equal(t, c.hit, hits == 1)
			assert.Equal(t, c.body, target.Health[component.ZoneBody])
			assert.Equal(t, target.MaxHealth[component.ZoneHead], target.Health[component.ZoneHead])
			assert.Equal(t, c.kb, target.Knockback)
			assert.Equal(t, c.queue, w.PendingDeferred())
		})
	}
}

func TestMeleeRotationNudge(t *testing.T) {
	w, ae, attacker, _, target, knife := meleeSetup(50)
	Strike(w, ae, attacker, knife)
	// target to the right: dirFromAttacker is -1
	assert.InDelta(t, 8*common.Deg(2), target.RotateTo, eps)
}

func TestMeleeSurrenderedHalvesKnockback(t *testing.T) {
	w, ae, attacker, _, target, knife := meleeSetup(50)
	target.Adversary.HasSurrendered = true

	require.Equal(t, 1, Strike(w, ae, attacker, knife))
	assert.Equal(t, -4.0, target.Knockback)
	assert.Equal(t, 0, w.PendingDeferred(), "no retarget for a surrendered target")
}

func TestMeleeRetarget(t *testing.T) {
	cases := []struct {
		name    string
		kill    func(attacker, target *component.Actor)
		wantDir int
	}{
		{"both_alive", func(*component.Actor, *component.Actor) {}, -1},
		{"attacker_died", func(a, _ *component.Actor) { a.Dead = true }, 1},
		{"target_died", func(_, t *component.Actor) { t.Dead = true }, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ae, attacker, _, target, knife := meleeSetup(50)
			target.Dir = 1
			Strike(w, ae, attacker, knife)
			c.kill(attacker, target)

			s := ecs.NewScheduler()
			for i := 0; i < 29; i++ {
				s.Step(w)
			}
			assert.Equal(t, 1, target.Dir, "retarget is delayed 500ms")
			s.Step(w)
			assert.Equal(t, c.wantDir, target.Dir)
		})
	}
}

func TestMeleeSkipsAlliesAndDead(t *testing.T) {
	w, ae, attacker, _, target, knife := meleeSetup(50)
	ally := newProtagonist(95, 0)
	w.AddActor(ally)
	target.Dead = true

	assert.Equal(t, 0, Strike(w, ae, attacker, knife))
	assert.Equal(t, ally.MaxHealth, ally.Health)
	assert.Equal(t, target.MaxHealth, target.Health)
}

func TestMeleeTargetOnLeft(t *testing.T) {
	w, ae, attacker, _, target, knife := meleeSetup(50)
	attacker.X = 200
	attacker.WeaponRotationTo = math.Pi
	target.X = 110

	require.Equal(t, 1, Strike(w, ae, attacker, knife))
	assert.Equal(t, 8.0, target.Knockback)
}
