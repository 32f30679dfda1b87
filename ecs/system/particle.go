package system

import (
	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// ParticleSystem moves cosmetic particles and ages them out. Shells fall
// under gravity. Flashes and impacts stay put.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	g := w.Context().Gravity
	w.ForEachParticle(func(_ ecs.Entity, p *component.Particle) {
		if p.Dead {
			return
		}
		if p.MaxLife == 0 {
			p.MaxLife = p.Life
		}
		if p.Kind == component.ParticleShell {
			p.YVel += g
			p.X += p.XVel
			p.Y += p.YVel
			p.R += 0.3 * common.Sign(p.XVel)
		}
		p.Life--
		if p.Life <= 0 {
			p.Dead = true
		}
	})
}
