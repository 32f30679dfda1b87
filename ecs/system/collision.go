package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// ReactionHook runs once per zone a projectile overlaps.
type ReactionHook func(w *ecs.World, e ecs.Entity, a *component.Actor, zone component.Zone, p *component.Projectile)

// CollisionSystem resolves committed projectiles against actor hitboxes.
type CollisionSystem struct {
	onHit ReactionHook
}

func NewCollisionSystem(onHit ReactionHook) *CollisionSystem {
	return &CollisionSystem{onHit: onHit}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		if a.Dead {
			return
		}
		ResolveProjectiles(w, e, a, s.onHit)
	})
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		MarkDeadIfExhausted(w, e, a)
	})
}

// ResolveProjectiles tests every live projectile not owned by e against its
// three zones. Each overlapping zone takes the full damage. A projectile
// stops at its first target.
func ResolveProjectiles(w *ecs.World, e ecs.Entity, a *component.Actor, onHit ReactionHook) int {
	hits := 0
	w.ForEachProjectile(func(_ ecs.Entity, p *component.Projectile) {
		if p.Dead || p.OwnerID == uint64(e) {
			return
		}
		boxes := Hitboxes(a)
		at := cp.Vector{X: p.X, Y: p.Y}
		var overlap [component.ZoneCount]bool
		hit := false
		for z, bb := range boxes {
			if bb.ContainsVect(at) {
				overlap[z] = true
				hit = true
			}
		}
		if !hit {
			return
		}

		spawnImpact(w, p)
		bulletDir := BulletDir(p.R)
		dmg := p.Damage

		if overlap[component.ZoneHead] {
			a.Health[component.ZoneHead] -= dmg
			a.Knockback = dmg / 2 * bulletDir
			a.RotateTo += dmg * common.Deg(10) * -float64(a.Dir)
			react(w, e, a, component.ZoneHead, p, onHit)
		}
		if overlap[component.ZoneBody] {
			a.Health[component.ZoneBody] -= dmg
			a.Knockback = dmg / 4 * bulletDir
			react(w, e, a, component.ZoneBody, p, onHit)
		}
		if overlap[component.ZoneLegs] {
			a.Health[component.ZoneLegs] -= dmg
			a.Knockback = dmg / 4 * bulletDir
			a.RotateTo += dmg * common.Deg(5) * float64(a.Dir)
			react(w, e, a, component.ZoneLegs, p, onHit)
		}

		p.Dead = true
		hits++
	})
	return hits
}

func react(w *ecs.World, e ecs.Entity, a *component.Actor, zone component.Zone, p *component.Projectile, onHit ReactionHook) {
	if onHit != nil {
		onHit(w, e, a, zone, p)
	}
}

// MarkDeadIfExhausted retires a once any health zone reaches zero. Health is
// left unclamped.
func MarkDeadIfExhausted(w *ecs.World, e ecs.Entity, a *component.Actor) bool {
	if a.Dead || !a.Health.Exhausted() {
		return false
	}
	a.Dead = true
	w.Logger().Debug("actor died", "entity", e, "variant", a.Variant.String(), "health", a.Health)
	w.EmitCue(ecs.Cue{Kind: ecs.CueDeath, Entity: e, X: a.CenterX(), Y: a.CenterY()})
	return true
}

// DamageClock resets the protagonist's regeneration timer and emits a hit
// cue. It is the stock ReactionHook.
func DamageClock(w *ecs.World, e ecs.Entity, a *component.Actor, zone component.Zone, p *component.Projectile) {
	if a.Protagonist != nil {
		a.Protagonist.TimeSinceDamaged = 0
	}
	w.EmitCue(ecs.Cue{Kind: ecs.CueHit, Entity: e, Weapon: p.Weapon, X: p.X, Y: p.Y})
}
