package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const (
	shellLife      = 25
	impactLifeSecs = 1.0
)

// Shoot emits a bullet at angle r from the muzzle of a ranged weapon, plus
// the shell casing and muzzle flash, and applies recoil. Melee weapons are
// ignored.
func Shoot(w *ecs.World, e ecs.Entity, a *component.Actor, weapon *component.Weapon, r float64) {
	if weapon.IsMelee() {
		return
	}
	spec := weapon.Ranged
	ctx := w.Context()
	muzzle := Muzzle(a, spec, r)

	w.SpawnProjectile(&component.Projectile{
		OwnerID: uint64(e),
		Weapon:  weapon.ID,
		X:       muzzle.X,
		Y:       muzzle.Y,
		R:       r,
		Speed:   spec.BulletSpeed,
		Damage:  weapon.Damage,
		Life:    spec.BulletLife,
	})

	if spec.Shell != nil {
		shell := *spec.Shell
		eject := func(w *ecs.World) {
			a, ok := w.Actor(e)
			if !ok {
				return
			}
			ejectShell(w, a, shell, r)
		}
		if delay := ctx.MSToFrames(shell.DelayMS); delay > 0 {
			w.Enqueue(delay, ecs.Deferred{
				Name:     "shell",
				Subjects: []ecs.Entity{e},
				Guard:    ecs.GuardAlive,
				Fire:     eject,
			})
		} else {
			ejectShell(w, a, shell, r)
		}
	}

	for i := 2 + int(ctx.Float()*2); i > 0; i-- {
		w.SpawnParticle(&component.Particle{
			Kind:  component.ParticleMuzzleFlash,
			X:     muzzle.X,
			Y:     muzzle.Y,
			R:     r + ctx.Float()*(math.Pi/30) - math.Pi/60,
			Angle: ctx.Float()*(math.Pi/16-math.Pi/30) + math.Pi/30,
			Size:  spec.BulletSpeed,
			Life:  secondsToFrames(ctx, 0.25+ctx.Float()*0.25),
		})
	}

	if a.MovingDir != 0 {
		a.XVel += math.Cos(r) * -spec.RecoilX
	}
	a.RecoilRotation += common.Deg(spec.RecoilY)
	a.WeaponRotationTo -= a.RecoilRotation * float64(a.Dir)
	a.FireCooldown = spec.Reload
}

// ejectShell spawns the casing from the actor's current position.
func ejectShell(w *ecs.World, a *component.Actor, shell component.Shell, r float64) {
	ctx := w.Context()
	origin := cp.Vector{X: a.CenterX(), Y: a.CenterY() + shell.Y}
	at := pointAt(origin, r, shell.X)
	w.SpawnParticle(&component.Particle{
		Kind: component.ParticleShell,
		X:    at.X,
		Y:    at.Y,
		R:    r,
		XVel: -float64(a.Dir) * 2,
		YVel: ctx.Float()*5 - 15,
		Size: 4,
		Life: shellLife,
	})
}

// spawnImpact marks where a projectile struck.
func spawnImpact(w *ecs.World, p *component.Projectile) {
	w.SpawnParticle(&component.Particle{
		Kind: component.ParticleImpact,
		X:    p.X,
		Y:    p.Y,
		R:    p.R,
		Size: p.Speed,
		Life: secondsToFrames(w.Context(), impactLifeSecs),
	})
}

func secondsToFrames(ctx *ecs.Context, secs float64) int {
	n := int(math.Round(secs * float64(ctx.FPS)))
	if n < 1 {
		n = 1
	}
	return n
}
