package system

import (
	"math"

	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const (
	leanAngle    = math.Pi / 32
	leanRate     = 5
	frictionRate = 10
)

// MovementSystem integrates actor velocity and position.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ctx := w.Context()
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		if a.Dead {
			return
		}
		weapon := w.Weapon(a.Weapon)
		MoveX(a, weapon)
		if MoveY(a, ctx) {
			w.Logger().Debug("actor fell out of the world", "entity", e, "y", a.Y)
			w.EmitCue(ecs.Cue{Kind: ecs.CueDeath, Entity: e, X: a.X, Y: a.Y})
		}
	})
}

// SpeedCap is the horizontal speed limit for a carrying weapon. Moving against
// the facing halves it.
func SpeedCap(a *component.Actor, weapon *component.Weapon) float64 {
	limit := a.Speed - weapon.Weight()
	if a.MovingDir != a.Dir {
		limit /= 2
	}
	return limit
}

// MoveX applies acceleration, lean, friction, the speed cap and knockback.
func MoveX(a *component.Actor, weapon *component.Weapon) {
	if a.MovingDir != 0 {
		dir := float64(a.MovingDir)
		a.XVel += dir * a.Acceleration
		common.Approach(&a.RotateTo, dir*leanAngle, leanRate)
	} else {
		common.Approach(&a.RotateTo, 0, leanRate)
	}

	limit := SpeedCap(a, weapon)
	common.Approach(&a.XVel, 0, frictionRate)
	a.XVel = common.Clamp(a.XVel, -limit, limit) - a.Knockback
	a.X += a.XVel
}

// MoveY applies gravity and reports whether the actor fell past the floor.
// The floor check uses the position from before this frame's integration.
func MoveY(a *component.Actor, ctx *ecs.Context) bool {
	if a.Y > ctx.FloorY() {
		a.Dead = true
		return true
	}
	if a.YVel+ctx.Gravity < ctx.MaxVel {
		a.YVel += ctx.Gravity
	}
	a.YVel = common.Clamp(a.YVel, -a.JumpForce, ctx.MaxVel)
	a.Y += a.YVel
	return false
}

// Jump launches a grounded actor. Callers check CanJump first.
func Jump(a *component.Actor, weapon *component.Weapon) {
	a.YVel = -(a.JumpForce - weapon.Weight())
	a.CanJump = false
}
