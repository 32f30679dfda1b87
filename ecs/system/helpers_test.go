package system

import (
	"math"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

const eps = 1e-9

var testWeapons = component.WeaponTable{
	"pistol": {
		ID: "pistol", Name: "Pistol", Damage: 10, FrameDelay: 3,
		Ranged: &component.RangedSpec{
			BarrelX: 30, BarrelY: -5, BulletSpeed: 20, BulletLife: 60,
			Reload: 10, RecoilX: 2, RecoilY: 6, Weight: 1, Semi: true,
		},
	},
	"smg": {
		ID: "smg", Name: "SMG", Damage: 4,
		Ranged: &component.RangedSpec{
			BarrelX: 35, BarrelY: -5, BulletSpeed: 25, BulletLife: 60,
			Reload: 2, RecoilX: 1, RecoilY: 2, Weight: 2,
		},
	},
	"rifle": {
		ID: "rifle", Name: "Rifle", Damage: 15,
		Ranged: &component.RangedSpec{
			BarrelX: 45, BarrelY: -5, BulletSpeed: 30, BulletLife: 60,
			Reload: 0, Weight: 1.5, Semi: true,
			Shell: &component.Shell{X: 10, Y: -5, DelayMS: 100},
		},
	},
	"shotgun": {
		ID: "shotgun", Name: "Shotgun", Damage: 8,
		Ranged: &component.RangedSpec{
			BarrelX: 40, BarrelY: -5, BulletSpeed: 20, BulletLife: 60,
			Reload: 30, Weight: 2, Semi: true,
			Shell: &component.Shell{X: 10, Y: -5},
		},
	},
	"knife": {
		ID: "knife", Name: "Knife", Damage: 12, FrameDelay: 4,
		Melee: &component.MeleeSpec{Length: 30, Range: 50, Knockback: 8},
	},
}

var testArchetype = component.Archetype{
	W: 40, H: 80, Speed: 5, Acceleration: 0.5, JumpForce: 12,
	MaxHealth: component.Health{20, 40, 30},
}

func newWorld() *ecs.World {
	return ecs.NewWorld(ecs.WithWeapons(testWeapons))
}

func newAdversary(x, y float64, weapon component.WeaponID) *component.Actor {
	a := component.NewActor(component.VariantAdversary, x, y, testArchetype)
	a.Adversary = &component.Adversary{}
	a.Slots = []component.Slot{{Weapon: weapon, Infinite: true}}
	a.SelectSlot(0)
	a.Intent = component.Idle()
	return a
}

func newProtagonist(x, y float64, slots ...component.Slot) *component.Actor {
	arch := testArchetype
	arch.Speed = 7
	a := component.NewActor(component.VariantProtagonist, x, y, arch)
	a.Protagonist = component.NewProtagonist()
	a.Slots = slots
	a.SelectSlot(0)
	a.Intent = component.Idle()
	return a
}

func countParticles(ps []*component.Particle, kind component.ParticleKind) int {
	n := 0
	for _, p := range ps {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func countCues(cues []ecs.Cue, kind ecs.CueKind) int {
	n := 0
	for _, c := range cues {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
