package system

import (
	"math"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const notifyDelayMS = 500

// NotifyClosest schedules a one-shot alert that turns the nearest unaware
// adversary toward x. Only existence of the firer is checked when it runs.
func NotifyClosest(w *ecs.World, firer ecs.Entity, x float64) {
	w.Enqueue(w.Context().MSToFrames(notifyDelayMS), ecs.Deferred{
		Name:     "notify_closest",
		Subjects: []ecs.Entity{firer},
		Guard:    ecs.GuardExists,
		Fire: func(w *ecs.World) {
			Acquire(w, firer, x)
		},
	})
}

// Acquire performs the scan immediately and returns the adversary it turned,
// or 0 when none qualified.
func Acquire(w *ecs.World, firer ecs.Entity, x float64) ecs.Entity {
	f, ok := w.Actor(firer)
	if !ok {
		return 0
	}
	fx, fy := f.CenterX(), f.CenterY()

	var best ecs.Entity
	var target *component.Actor
	bestDist := math.Inf(1)
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		if e == firer || a.Dead || a.Variant != component.VariantAdversary || !a.Adversary.Acquirable() {
			return
		}
		if d := a.Dist(fx, fy); d < bestDist {
			bestDist = d
			best = e
			target = a
		}
	})
	if target == nil {
		return 0
	}

	ctx := w.Context()
	if math.Abs(x-target.CenterX()) >= ctx.ViewportW/2 || math.Abs(fy-target.CenterY()) >= ctx.ViewportH/2 {
		return 0
	}
	if x < target.CenterX() {
		target.Dir = -1
	} else {
		target.Dir = 1
	}
	return best
}
