package component

import (
	"math"

	"github.com/milk9111/skirmish/common"
)

// Variant tags the closed set of actor kinds.
type Variant uint8

const (
	VariantProtagonist Variant = iota
	VariantAdversary
)

func (v Variant) String() string {
	switch v {
	case VariantProtagonist:
		return "protagonist"
	case VariantAdversary:
		return "adversary"
	default:
		return "unknown"
	}
}

// Zone is one of the three anatomical hitbox zones.
type Zone int

const (
	ZoneHead Zone = iota
	ZoneBody
	ZoneLegs
	ZoneCount
)

func (z Zone) String() string {
	switch z {
	case ZoneHead:
		return "head"
	case ZoneBody:
		return "body"
	case ZoneLegs:
		return "legs"
	default:
		return "unknown"
	}
}

// Health holds per-zone hit points indexed by Zone.
type Health [ZoneCount]float64

// Exhausted reports whether any zone is at or below zero.
func (h Health) Exhausted() bool {
	for _, v := range h {
		if v <= 0 {
			return true
		}
	}
	return false
}

// Slot is one weapon slot with its remaining ammunition. Infinite slots never
// consume ammo.
type Slot struct {
	Weapon   WeaponID
	Ammo     int
	Infinite bool
}

// Actor is the shared combat state of every variant.
type Actor struct {
	Variant Variant

	X, Y       float64
	XVel, YVel float64
	W, H       float64

	Speed        float64
	Acceleration float64
	JumpForce    float64
	CanJump      bool

	// Dir is the instantaneous facing, always -1 or 1.
	Dir   int
	DirTo float64

	MovingDir   int
	MovingDirTo float64

	BaseRotation float64
	RotateTo     float64
	BaseScaleTo  float64

	Health    Health
	MaxHealth Health
	Knockback float64

	FireCooldown     int
	Weapon           WeaponID
	WeaponRotation   float64
	WeaponRotationTo float64
	RecoilRotation   float64
	FireFrame        float64

	Slots       []Slot
	CurrentSlot int
	HasFired    bool

	Intent Intent
	Dead   bool

	Protagonist *Protagonist
	Adversary   *Adversary
}

// Archetype carries the fixed parameters an actor is built from.
type Archetype struct {
	W, H         float64
	Speed        float64
	Acceleration float64
	JumpForce    float64
	MaxHealth    Health
}

// NewActor creates an actor at (x, y) with zeroed kinetic and animation state,
// facing right with its aim pointing straight down.
func NewActor(variant Variant, x, y float64, arch Archetype) *Actor {
	return &Actor{
		Variant:          variant,
		X:                x,
		Y:                y,
		W:                arch.W,
		H:                arch.H,
		Speed:            arch.Speed,
		Acceleration:     arch.Acceleration,
		JumpForce:        arch.JumpForce,
		Dir:              1,
		DirTo:            1,
		BaseScaleTo:      1,
		Health:           arch.MaxHealth,
		MaxHealth:        arch.MaxHealth,
		WeaponRotation:   math.Pi / 2,
		WeaponRotationTo: math.Pi / 2,
	}
}

func (a *Actor) CenterX() float64 { return a.X + a.W/2 }

func (a *Actor) CenterY() float64 { return a.Y + a.H/2 }

// Dist returns the distance from the actor's centre to (x, y).
func (a *Actor) Dist(x, y float64) float64 {
	return common.Dist(a.CenterX(), a.CenterY(), x, y)
}

// Slot returns the active weapon slot, or nil when the actor has none.
func (a *Actor) Slot() *Slot {
	if a.CurrentSlot < 0 || a.CurrentSlot >= len(a.Slots) {
		return nil
	}
	return &a.Slots[a.CurrentSlot]
}

// SelectSlot makes slot i current and updates Weapon. Out-of-range indices are
// ignored.
func (a *Actor) SelectSlot(i int) {
	if i < 0 || i >= len(a.Slots) {
		return
	}
	a.CurrentSlot = i
	a.Weapon = a.Slots[i].Weapon
}

// MeleeSlot returns the index of the first slot holding a melee weapon, or -1.
func (a *Actor) MeleeSlot(resolve func(WeaponID) *Weapon) int {
	for i, s := range a.Slots {
		if resolve(s.Weapon).IsMelee() {
			return i
		}
	}
	return -1
}

// SetFacing sets Dir from a signed value; zero keeps the current facing.
func (a *Actor) SetFacing(sign float64) {
	if sign > 0 {
		a.Dir = 1
	} else if sign < 0 {
		a.Dir = -1
	}
}

// Opposes reports whether b is on the other side of the fight from a.
func (a *Actor) Opposes(b *Actor) bool {
	return a != nil && b != nil && a.Variant != b.Variant
}
