package system

import (
	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const retargetDelayMS = 500

// Strike resolves a melee swing against every live opponent. The strike
// point is clamped into each target's box and the hit lands when the clamped
// distance is under the weapon's range. It returns the number of targets hit.
func Strike(w *ecs.World, e ecs.Entity, a *component.Actor, weapon *component.Weapon) int {
	if !weapon.IsMelee() {
		return 0
	}
	spec := weapon.Melee
	strike := pointAt(center(a), a.WeaponRotationTo, spec.Length)

	hits := 0
	w.ForEachActor(func(te ecs.Entity, t *component.Actor) {
		if te == e || t.Dead || !a.Opposes(t) {
			return
		}
		clamped := Bounds(t).ClampVect(&strike)
		if strike.Distance(clamped) >= spec.Range {
			return
		}
		hits++

		// positive knockback pushes left
		dirFromAttacker := -1.0
		if t.X < a.X {
			dirFromAttacker = 1
		}
		surrendered := t.Adversary != nil && t.Adversary.HasSurrendered

		t.Health[component.ZoneBody] -= weapon.Damage
		if surrendered {
			t.Knockback = spec.Knockback / 2 * dirFromAttacker
		} else {
			t.Knockback = spec.Knockback * dirFromAttacker
		}
		t.RotateTo += spec.Knockback * common.Deg(2) * -dirFromAttacker
		w.EmitCue(ecs.Cue{Kind: ecs.CueStrike, Entity: te, Weapon: weapon.ID, X: clamped.X, Y: clamped.Y})

		if !surrendered {
			scheduleRetarget(w, e, te)
		}
	})
	return hits
}

// scheduleRetarget turns the target to face its attacker once the delay
// elapses, unless either of them died in the meantime.
func scheduleRetarget(w *ecs.World, attacker, target ecs.Entity) {
	w.Enqueue(w.Context().MSToFrames(retargetDelayMS), ecs.Deferred{
		Name:     "retarget",
		Subjects: []ecs.Entity{attacker, target},
		Guard:    ecs.GuardAlive,
		Fire: func(w *ecs.World) {
			a, _ := w.Actor(attacker)
			t, _ := w.Actor(target)
			if a.X < t.X {
				t.Dir = -1
			} else {
				t.Dir = 1
			}
		},
	})
}
