package session

import (
	"math"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
)

const autopilotEngage = 350

// Autopilot drives the protagonist toward the nearest fighting adversary.
// It uses the first ranged slot with ammunition, falls back to melee, and
// pulls the trigger on alternate frames so semi-automatic weapons re-arm.
func Autopilot() system.IntentHook {
	return func(w *ecs.World, e ecs.Entity, a *component.Actor) {
		in := component.Idle()
		in.MovingDir = 1

		target, ok := nearestFoe(w, a)
		if !ok {
			a.Intent = in
			return
		}

		slot := pickSlot(w, a)
		if slot >= 0 && slot != a.CurrentSlot {
			in.Slot = slot
		}
		engage := autopilotEngage
		melee := false
		if slot >= 0 {
			if weapon := w.Weapon(a.Slots[slot].Weapon); weapon.IsMelee() {
				melee = true
				engage = int(weapon.Melee.Length + weapon.Melee.Range*0.8)
			}
		}

		dx := target.CenterX() - a.CenterX()
		in.AimX, in.AimY, in.HasAim = target.CenterX(), target.CenterY(), true
		in.MovingDir = 0
		if math.Abs(dx) > float64(engage) {
			in.MovingDir = int(math.Copysign(1, dx))
		}
		in.Jump = target.CenterY() < a.CenterY()-60
		in.Fire = w.Frame()%2 == 0 && (!melee || math.Abs(dx) <= float64(engage))
		a.Intent = in
	}
}

func pickSlot(w *ecs.World, a *component.Actor) int {
	for i, slot := range a.Slots {
		if w.Weapon(slot.Weapon).IsMelee() {
			continue
		}
		if slot.Infinite || slot.Ammo > 0 {
			return i
		}
	}
	return a.MeleeSlot(w.Weapon)
}

func nearestFoe(w *ecs.World, a *component.Actor) (*component.Actor, bool) {
	var best *component.Actor
	bestDist := math.Inf(1)
	w.ForEachActor(func(_ ecs.Entity, b *component.Actor) {
		if b.Dead || !a.Opposes(b) || (b.Adversary != nil && b.Adversary.HasSurrendered) {
			return
		}
		if d := a.Dist(b.CenterX(), b.CenterY()); d < bestDist {
			best, bestDist = b, d
		}
	})
	return best, best != nil
}
