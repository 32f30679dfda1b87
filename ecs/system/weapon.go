package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// WeaponSystem ticks fire cooldowns and honours fire intent.
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem { return &WeaponSystem{} }

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		if a.Dead {
			return
		}
		if a.FireCooldown > 0 {
			a.FireCooldown--
		}
		TryFire(w, e, a)
	})
}

// TryFire evaluates one frame of fire intent and reports whether an attack
// was made. Releasing fire re-arms semi-automatic and melee weapons.
func TryFire(w *ecs.World, e ecs.Entity, a *component.Actor) bool {
	if !a.Intent.Fire {
		a.HasFired = false
		return false
	}
	weapon := w.Weapon(a.Weapon)
	if a.FireCooldown > 0 || (weapon.Semi() && a.HasFired) {
		return false
	}

	if a.Intent.QuickMelee {
		if i := a.MeleeSlot(w.Weapon); i >= 0 {
			a.SelectSlot(i)
			weapon = w.Weapon(a.Weapon)
		}
	}

	fired := false
	if weapon.IsMelee() {
		a.FireFrame = 1
		w.EmitCue(ecs.Cue{Kind: ecs.CueSwing, Entity: e, Weapon: weapon.ID, X: a.CenterX(), Y: a.CenterY()})
		Strike(w, e, a, weapon)
		fired = true
	} else if slot := a.Slot(); slot == nil || slot.Infinite || slot.Ammo > 0 {
		if slot != nil && !slot.Infinite {
			slot.Ammo--
		}
		a.FireFrame = 1
		tip := Muzzle(a, weapon.Ranged, a.WeaponRotationTo)
		w.EmitCue(ecs.Cue{Kind: ecs.CueFire, Entity: e, Weapon: weapon.ID, X: tip.X, Y: tip.Y})
		Shoot(w, e, a, weapon, a.WeaponRotationTo)
		if a.Variant == component.VariantProtagonist {
			NotifyClosest(w, e, a.X)
			if a.Protagonist != nil {
				a.Protagonist.ShotsFired++
			}
		}
		fired = true
	} else if !a.HasFired {
		w.Logger().Debug("dry fire", "entity", e, "weapon", weapon.ID)
		w.EmitCue(ecs.Cue{Kind: ecs.CueDryFire, Entity: e, Weapon: weapon.ID, X: a.CenterX(), Y: a.CenterY()})
	}

	a.HasFired = true
	return fired
}
