package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// Terrain reports the ground height under x, if any.
type Terrain interface {
	Support(x float64) (groundY float64, ok bool)
}

// Gap is an open horizontal span with no ground.
type Gap struct {
	From, To float64
}

// FlatGround is a single floor at Y broken by pits.
type FlatGround struct {
	Y    float64
	Gaps []Gap
}

func (g FlatGround) Support(x float64) (float64, bool) {
	for _, gap := range g.Gaps {
		if x > gap.From && x < gap.To {
			return 0, false
		}
	}
	return g.Y, true
}

// TerrainSystem lands falling actors on the ground and maintains CanJump.
type TerrainSystem struct {
	terrain Terrain
}

func NewTerrainSystem(t Terrain) *TerrainSystem {
	return &TerrainSystem{terrain: t}
}

func (s *TerrainSystem) Update(w *ecs.World) {
	if w == nil || s.terrain == nil {
		return
	}
	w.ForEachActor(func(_ ecs.Entity, a *component.Actor) {
		if a.Dead {
			return
		}
		Ground(a, s.terrain)
	})
}

// Ground snaps a onto t when its feet crossed the surface this frame.
func Ground(a *component.Actor, t Terrain) {
	a.CanJump = false
	groundY, ok := t.Support(a.CenterX())
	if !ok || a.YVel < 0 {
		return
	}
	feet := a.Y + a.H
	prevFeet := feet - a.YVel
	if feet >= groundY && prevFeet <= groundY {
		a.Y = groundY - a.H
		a.YVel = 0
		a.CanJump = true
	}
}
