package system

import (
	"math"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const (
	dashImpulse    = 20
	footstepMS     = 200
	footstepPeriod = 2.5
)

// IntentHook writes an actor's intent for the coming frame. Input handling
// and adversary behaviour live behind it.
type IntentHook func(w *ecs.World, e ecs.Entity, a *component.Actor)

// ControlSystem runs the per-variant intent hooks and applies the intent
// that does not belong to movement or firing: facing, aim, jumping, slot
// switches, dashing, regeneration and footsteps.
type ControlSystem struct {
	hooks map[component.Variant]IntentHook
}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{hooks: make(map[component.Variant]IntentHook)}
}

// SetHook installs h for every actor of variant v. A nil hook leaves the
// intent untouched.
func (s *ControlSystem) SetHook(v component.Variant, h IntentHook) {
	if s == nil {
		return
	}
	s.hooks[v] = h
}

func (s *ControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		if a.Dead || MarkDeadIfExhausted(w, e, a) {
			return
		}
		if hook := s.hooks[a.Variant]; hook != nil {
			hook(w, e, a)
		}
		Control(w, e, a)
	})
}

// Control applies a's current intent.
func Control(w *ecs.World, e ecs.Entity, a *component.Actor) {
	in := a.Intent
	a.MovingDir = clampDir(in.MovingDir)

	if in.Slot != component.NoSlot {
		a.SelectSlot(in.Slot)
	} else if slot := a.Slot(); slot != nil {
		a.Weapon = slot.Weapon
	}
	weapon := w.Weapon(a.Weapon)

	if in.Jump && a.CanJump {
		Jump(a, weapon)
		w.EmitCue(ecs.Cue{Kind: ecs.CueJump, Entity: e, X: a.CenterX(), Y: a.Y + a.H})
	}

	if in.HasAim {
		Aim(a, weapon, in.AimX, in.AimY)
	}

	if p := a.Protagonist; p != nil {
		dash(w, e, a, p)
		regenerate(a, p)
		footstep(w, e, a, p, weapon)
	}
}

// Aim faces a toward (x, y) and points the live aim at it. Ranged weapons aim
// from the shoulder pivot rather than the body centre.
func Aim(a *component.Actor, weapon *component.Weapon, x, y float64) {
	cx, cy := a.CenterX(), a.CenterY()
	a.SetFacing(x - cx)
	a.WeaponRotation = math.Atan2(y-cy, x-cx)
	if !weapon.IsMelee() {
		pivot := pointAt(center(a), a.WeaponRotation+math.Pi/2*float64(a.Dir), weapon.Ranged.BarrelY)
		a.WeaponRotation = math.Atan2(y-pivot.Y, x-pivot.X)
	}
}

func dash(w *ecs.World, e ecs.Entity, a *component.Actor, p *component.Protagonist) {
	if p.DashTime > 0 {
		p.DashTime--
	}
	if p.DashTime == 0 && a.Intent.Dash && a.MovingDir != 0 {
		a.Knockback -= dashImpulse * float64(a.MovingDir)
		p.DashTime = p.DashDelay
		w.EmitCue(ecs.Cue{Kind: ecs.CueDash, Entity: e, X: a.CenterX(), Y: a.CenterY()})
	}
}

// regenerate heals a fraction of each zone's deficit once the actor has gone
// long enough without damage. It never crosses the maximum.
func regenerate(a *component.Actor, p *component.Protagonist) {
	if p.TimeSinceDamaged < p.RegenDelay {
		p.TimeSinceDamaged++
		return
	}
	for i, h := range a.Health {
		limit := a.MaxHealth[i]
		if limit <= 0 {
			continue
		}
		a.Health[i] += (1 - h/limit) * p.RegenRate
	}
}

func footstep(w *ecs.World, e ecs.Entity, a *component.Actor, p *component.Protagonist, weapon *component.Weapon) {
	ratio := 1.0
	if !weapon.IsMelee() && a.Speed > 0 {
		ratio = (a.Speed - weapon.Weight()) / a.Speed
	}
	phase := float64(w.Frame()) / footstepPeriod * ratio
	p.Footstep[1] = math.Floor(math.Cos(phase)) == 0 && a.MovingDir != 0

	if !p.Footstep[1] || p.Footstep[0] || !a.CanJump {
		return
	}
	p.Footstep[0] = true
	w.EmitCue(ecs.Cue{Kind: ecs.CueFootstep, Entity: e, X: a.CenterX(), Y: a.Y + a.H})
	w.Enqueue(w.Context().MSToFrames(footstepMS), ecs.Deferred{
		Name:     "footstep_reset",
		Subjects: []ecs.Entity{e},
		Guard:    ecs.GuardExists,
		Fire: func(w *ecs.World) {
			if a, ok := w.Actor(e); ok && a.Protagonist != nil {
				a.Protagonist.Footstep[0] = false
			}
		},
	})
}

func clampDir(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
