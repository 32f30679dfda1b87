package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs/component"
)

// rect builds a y-down box from its top-left corner and size. cp.BB only
// needs B <= T, so B holds the top edge.
func rect(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Hitboxes returns the head, body and legs boxes of a, offset by the smoothed
// moving direction and the facing.
func Hitboxes(a *component.Actor) [component.ZoneCount]cp.BB {
	headX := a.X + a.W/4 + 10*a.MovingDirTo
	bodyX := a.X + a.W/8 + 7.5*a.MovingDirTo
	if a.Dir == -1 {
		bodyX += 5
	}
	return [component.ZoneCount]cp.BB{
		component.ZoneHead: rect(headX, a.Y, a.W/2, 20),
		component.ZoneBody: rect(bodyX, a.Y+20, 25, 40),
		component.ZoneLegs: rect(bodyX, a.Y+60, 25, 20),
	}
}

// Bounds returns the actor's full bounding box.
func Bounds(a *component.Actor) cp.BB {
	return rect(a.X, a.Y, a.W, a.H)
}

func center(a *component.Actor) cp.Vector {
	return cp.Vector{X: a.CenterX(), Y: a.CenterY()}
}

// pointAt offsets origin by dist along angle.
func pointAt(origin cp.Vector, angle, dist float64) cp.Vector {
	return origin.Add(cp.ForAngle(angle).Mult(dist))
}

// Muzzle returns the bullet spawn point for a ranged shot at angle r.
func Muzzle(a *component.Actor, spec *component.RangedSpec, r float64) cp.Vector {
	origin := cp.Vector{X: a.CenterX(), Y: a.CenterY() + spec.BarrelY}
	return pointAt(origin, r, spec.BarrelX)
}

// GunTip returns the muzzle along the smoothed aim. Melee weapons report the
// actor's centre.
func GunTip(a *component.Actor, weapon *component.Weapon) cp.Vector {
	if weapon.IsMelee() {
		return center(a)
	}
	return Muzzle(a, weapon.Ranged, a.WeaponRotationTo)
}

// BulletDir is -1 for bullets travelling rightward and 1 otherwise. The angle
// is normalized to (-π, π] first, so exactly ±π/2 count as leftward.
func BulletDir(r float64) float64 {
	n := common.NormalizeAngle(r)
	if n > -math.Pi/2 && n < math.Pi/2 {
		return -1
	}
	return 1
}
