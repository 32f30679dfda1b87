package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// WeaponRegistry is the read-only weapon table loaded from weapons.yaml.
type WeaponRegistry struct {
	weapons map[component.WeaponID]*component.Weapon
	order   []component.WeaponID
}

func LoadWeaponRegistry() (*WeaponRegistry, error) {
	spec, err := LoadWeaponsSpec()
	if err != nil {
		return nil, err
	}
	return NewWeaponRegistry(spec)
}

func NewWeaponRegistry(spec *WeaponsSpec) (*WeaponRegistry, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: nil weapons spec")
	}
	r := &WeaponRegistry{weapons: make(map[component.WeaponID]*component.Weapon, len(spec.Weapons))}
	for i, ws := range spec.Weapons {
		w, err := ws.Build()
		if err != nil {
			return nil, fmt.Errorf("prefabs: weapon %d: %w", i, err)
		}
		if _, dup := r.weapons[w.ID]; dup {
			return nil, fmt.Errorf("prefabs: duplicate weapon id %q", w.ID)
		}
		r.weapons[w.ID] = w
		r.order = append(r.order, w.ID)
	}
	return r, nil
}

func (r *WeaponRegistry) Weapon(id component.WeaponID) (*component.Weapon, bool) {
	if r == nil {
		return nil, false
	}
	w, ok := r.weapons[id]
	return w, ok
}

// IDs returns weapon ids in file order.
func (r *WeaponRegistry) IDs() []component.WeaponID {
	if r == nil {
		return nil
	}
	return append([]component.WeaponID(nil), r.order...)
}

// Build converts the spec into a weapon definition.
func (s WeaponSpec) Build() (*component.Weapon, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		return nil, fmt.Errorf("missing id")
	}
	if (s.Ranged == nil) == (s.Melee == nil) {
		return nil, fmt.Errorf("%s: exactly one of ranged or melee is required", id)
	}
	if s.Damage < 0 {
		return nil, fmt.Errorf("%s: negative damage", id)
	}

	w := &component.Weapon{
		ID:         component.WeaponID(id),
		Name:       s.Name,
		Damage:     s.Damage,
		FrameDelay: s.FrameDelay,
	}
	if w.Name == "" {
		w.Name = id
	}

	if r := s.Ranged; r != nil {
		if r.Reload < 0 || r.BulletLife <= 0 {
			return nil, fmt.Errorf("%s: reload must be >= 0 and bullet_life > 0", id)
		}
		w.Ranged = &component.RangedSpec{
			BarrelX:     r.BarrelX,
			BarrelY:     r.BarrelY,
			BulletSpeed: r.BulletSpeed,
			BulletLife:  r.BulletLife,
			Reload:      r.Reload,
			RecoilX:     r.RecoilX,
			RecoilY:     r.RecoilY,
			Weight:      r.Weight,
			Semi:        r.Semi,
		}
		if r.Shell != nil {
			w.Ranged.Shell = &component.Shell{X: r.Shell.X, Y: r.Shell.Y, DelayMS: r.Shell.DelayMS}
		}
	} else {
		m := s.Melee
		if m.Range <= 0 {
			return nil, fmt.Errorf("%s: melee range must be > 0", id)
		}
		w.Melee = &component.MeleeSpec{Length: m.Length, Range: m.Range, Knockback: m.Knockback}
	}
	return w, nil
}

// Context builds the frame context for level, seeded with seed.
func (s *WorldSpec) Context(level *LevelSpec, seed int64) ecs.Context {
	ctx := ecs.DefaultContext(seed)
	if s == nil {
		return ctx
	}
	if s.FPS > 0 {
		ctx.FPS = s.FPS
	}
	if s.Gravity != 0 {
		ctx.Gravity = s.Gravity
	}
	if s.MaxVelocity > 0 {
		ctx.MaxVel = s.MaxVelocity
	}
	if s.BlockSize > 0 {
		ctx.BlockSize = s.BlockSize
	}
	if s.FallMargin > 0 {
		ctx.FallMargin = s.FallMargin
	}
	if s.ViewportW > 0 {
		ctx.ViewportW = s.ViewportW
	}
	if s.ViewportH > 0 {
		ctx.ViewportH = s.ViewportH
	}
	if level != nil && level.Rows > 0 {
		ctx.LevelRows = level.Rows
	}
	return ctx
}
