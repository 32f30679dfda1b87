package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// ProjectileSystem advances committed projectiles and ages them out.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.ForEachProjectile(func(_ ecs.Entity, p *component.Projectile) {
		p.Step()
	})
}
