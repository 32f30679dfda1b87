package component

// WeaponID identifies a weapon definition in a WeaponLookup.
type WeaponID string

// UnarmedID is the built-in melee weapon used when a lookup misses.
const UnarmedID WeaponID = "unarmed"

// Shell describes the cosmetic casing ejected after a ranged shot.
type Shell struct {
	X, Y    float64
	DelayMS float64
}

// RangedSpec holds ballistic parameters. Lifetimes and reload are in frames.
type RangedSpec struct {
	BarrelX, BarrelY float64
	BulletSpeed      float64
	BulletLife       int
	Reload           int
	RecoilX          float64
	// RecoilY is in degrees.
	RecoilY float64
	Weight  float64
	Semi    bool
	Shell   *Shell
}

// MeleeSpec holds strike geometry.
type MeleeSpec struct {
	Length    float64
	Range     float64
	Knockback float64
}

// Weapon is a read-only definition. Exactly one of Ranged or Melee is set.
type Weapon struct {
	ID         WeaponID
	Name       string
	Damage     float64
	FrameDelay float64

	Ranged *RangedSpec
	Melee  *MeleeSpec
}

func (w *Weapon) IsMelee() bool {
	return w != nil && w.Ranged == nil
}

// Weight is the speed penalty the weapon imposes. Melee weapons impose none.
func (w *Weapon) Weight() float64 {
	if w == nil || w.Ranged == nil {
		return 0
	}
	return w.Ranged.Weight
}

// Semi reports whether the weapon needs a release between attacks.
func (w *Weapon) Semi() bool {
	if w == nil {
		return true
	}
	return w.Ranged == nil || w.Ranged.Semi
}

// Unarmed is the fallback for unknown weapon ids.
var Unarmed = Weapon{
	ID:         UnarmedID,
	Name:       "Fists",
	Damage:     5,
	FrameDelay: 5,
	Melee: &MeleeSpec{
		Length:    30,
		Range:     40,
		Knockback: 5,
	},
}

// WeaponLookup resolves weapon ids to definitions.
type WeaponLookup interface {
	Weapon(id WeaponID) (*Weapon, bool)
}

// LookupOrUnarmed resolves id through weapons, falling back to Unarmed.
func LookupOrUnarmed(weapons WeaponLookup, id WeaponID) *Weapon {
	if weapons != nil {
		if w, ok := weapons.Weapon(id); ok && w != nil {
			return w
		}
	}
	return &Unarmed
}

// WeaponTable is a map-backed WeaponLookup.
type WeaponTable map[WeaponID]*Weapon

func (t WeaponTable) Weapon(id WeaponID) (*Weapon, bool) {
	w, ok := t[id]
	return w, ok
}
