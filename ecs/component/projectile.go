package component

import "math"

// Projectile is a live bullet owned by the world registry. OwnerID is the raw
// handle of the firing actor.
type Projectile struct {
	OwnerID uint64
	Weapon  WeaponID

	X, Y   float64
	R      float64
	Speed  float64
	Damage float64

	Life int
	Dead bool
}

// Step advances the projectile along its heading and ages it.
func (p *Projectile) Step() {
	if p == nil || p.Dead {
		return
	}
	p.X += math.Cos(p.R) * p.Speed
	p.Y += math.Sin(p.R) * p.Speed
	p.Life--
	if p.Life <= 0 {
		p.Dead = true
	}
}

type ParticleKind uint8

const (
	ParticleShell ParticleKind = iota
	ParticleMuzzleFlash
	ParticleImpact
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleShell:
		return "shell"
	case ParticleMuzzleFlash:
		return "muzzle_flash"
	case ParticleImpact:
		return "impact"
	default:
		return "unknown"
	}
}

// Particle is cosmetic. It never takes part in collision.
type Particle struct {
	Kind ParticleKind

	X, Y       float64
	XVel, YVel float64
	R          float64
	// Angle is the cone width for muzzle flashes.
	Angle float64
	Size  float64

	Life    int
	MaxLife int
	Dead    bool
}
