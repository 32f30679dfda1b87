package system

import "github.com/milk9111/skirmish/ecs"

// NewPipeline returns the frame schedule: control, movement and terrain,
// projectile and particle stepping, firing, collision, then animation. A nil
// onHit uses DamageClock.
func NewPipeline(control *ControlSystem, terrain Terrain, onHit ReactionHook) *ecs.Scheduler {
	if control == nil {
		control = NewControlSystem()
	}
	if onHit == nil {
		onHit = DamageClock
	}
	s := ecs.NewScheduler(
		control,
		NewMovementSystem(),
	)
	if terrain != nil {
		s.Add(NewTerrainSystem(terrain))
	}
	s.Add(NewProjectileSystem())
	s.Add(NewParticleSystem())
	s.Add(NewWeaponSystem())
	s.Add(NewCollisionSystem(onHit))
	s.Add(NewAnimationSystem())
	return s
}
