package system

import (
	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const (
	animRate   = 5
	recoilRate = 10
	hoverRate  = 10
)

// AnimationSystem smooths display state after all combat effects for the
// frame have landed.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem { return &AnimationSystem{} }

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.ForEachActor(func(_ ecs.Entity, a *component.Actor) {
		Animate(a, w.Weapon(a.Weapon))
	})
}

// Animate advances every smoothing scalar of a by one frame.
func Animate(a *component.Actor, weapon *component.Weapon) {
	dir := float64(a.Dir)
	common.Approach(&a.BaseRotation, a.RotateTo, animRate)
	common.Approach(&a.BaseScaleTo, dir, animRate)
	common.Approach(&a.MovingDirTo, float64(a.MovingDir), animRate)
	common.Approach(&a.FireFrame, 0, frameDelay(weapon))
	common.Approach(&a.RecoilRotation, 0, recoilRate)
	common.Approach(&a.DirTo, dir, animRate)
	common.Approach(&a.Knockback, 0, animRate)

	// the smoothed aim follows the live aim the short way round
	delta := common.WrappedDelta(a.WeaponRotation, a.WeaponRotationTo)
	a.WeaponRotationTo += common.Tween(a.WeaponRotationTo, a.WeaponRotationTo+delta, animRate)

	if p := a.Protagonist; p != nil {
		common.Approach(&p.WeaponNumberTo, float64(a.CurrentSlot), animRate)
		hover := 0.0
		if a.Intent.Hovering {
			hover = 1
		}
		common.Approach(&p.HoverFrame, hover, hoverRate)
	}
}

func frameDelay(weapon *component.Weapon) float64 {
	if weapon == nil || weapon.FrameDelay == 0 {
		return 1
	}
	return weapon.FrameDelay
}
