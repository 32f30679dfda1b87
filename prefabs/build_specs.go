package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
)

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// BehaviourParams tunes an adversary script. Spawn values override the
// archetype's.
type BehaviourParams struct {
	SightRange     float64 `yaml:"sight_range"`
	KeepDistance   float64 `yaml:"keep_distance"`
	FireInterval   int     `yaml:"fire_interval"`
	SurrenderBelow float64 `yaml:"surrender_below"`
	PatrolFrames   int     `yaml:"patrol_frames"`
}

func defaultBehaviour() BehaviourParams {
	return BehaviourParams{
		SightRange:   500,
		KeepDistance: 250,
		FireInterval: 30,
		PatrolFrames: 120,
	}
}

// Map exposes the params to scripts.
func (p BehaviourParams) Map() map[string]any {
	return map[string]any{
		"sight_range":     p.SightRange,
		"keep_distance":   p.KeepDistance,
		"fire_interval":   p.FireInterval,
		"surrender_below": p.SurrenderBelow,
		"patrol_frames":   p.PatrolFrames,
	}
}

func mergeBehaviour(layers ...map[string]any) (BehaviourParams, error) {
	merged := map[string]any{}
	for k, v := range defaultBehaviour().Map() {
		merged[k] = v
	}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	p, err := DecodeComponentSpec[BehaviourParams](merged)
	if err != nil {
		return p, err
	}
	// frame counters in scripts; must be positive
	p.FireInterval = max(p.FireInterval, 1)
	p.PatrolFrames = max(p.PatrolFrames, 1)
	return p, nil
}

// Spawned is an adversary created by BuildLevel along with what its
// behaviour layer needs.
type Spawned struct {
	Entity ecs.Entity
	Name   string
	Script string
	Params BehaviourParams
}

// Roster lists the actors BuildLevel created.
type Roster struct {
	Protagonist ecs.Entity
	Adversaries []Spawned
	Terrain     system.FlatGround
}

// Archetype converts the spec into core actor parameters.
func (s ActorSpec) Archetype() component.Archetype {
	return component.Archetype{
		W:            s.Width,
		H:            s.Height,
		Speed:        s.Speed,
		Acceleration: s.Acceleration,
		JumpForce:    s.JumpForce,
		MaxHealth:    component.Health(s.Health),
	}
}

// Terrain returns the level's ground collaborator.
func (l *LevelSpec) Terrain() system.FlatGround {
	g := system.FlatGround{Y: l.GroundY}
	for _, gap := range l.Gaps {
		g.Gaps = append(g.Gaps, system.Gap{From: gap.From, To: gap.To})
	}
	return g
}

// Loadout returns the protagonist's long, short and melee slots. Empty
// weapon names are skipped.
func (l *LevelSpec) Loadout() []component.Slot {
	var slots []component.Slot
	if l.LongWeapon != "" {
		slots = append(slots, component.Slot{Weapon: component.WeaponID(l.LongWeapon), Ammo: l.MainAmmo})
	}
	if l.ShortWeapon != "" {
		slots = append(slots, component.Slot{Weapon: component.WeaponID(l.ShortWeapon), Ammo: l.SideAmmo})
	}
	melee := l.MeleeWeapon
	if melee == "" {
		melee = string(component.UnarmedID)
	}
	return append(slots, component.Slot{Weapon: component.WeaponID(melee)})
}

// BuildLevel populates w with the level's protagonist and adversaries.
func BuildLevel(w *ecs.World, level *LevelSpec, actors *ActorsSpec) (*Roster, error) {
	if w == nil || level == nil || actors == nil {
		return nil, fmt.Errorf("prefabs: build level: missing world, level or actors")
	}

	hero := component.NewActor(component.VariantProtagonist, level.Spawn.X, level.Spawn.Y, actors.Protagonist.Archetype())
	hero.Protagonist = component.NewProtagonist()
	hero.Slots = level.Loadout()
	hero.SelectSlot(0)
	hero.Intent = component.Idle()
	roster := &Roster{
		Protagonist: w.AddActor(hero),
		Terrain:     level.Terrain(),
	}

	for i, sp := range level.Adversaries {
		arch, ok := actors.Adversaries[sp.Archetype]
		if !ok {
			return nil, fmt.Errorf("prefabs: level %s adversary %d: unknown archetype %q", level.Name, i, sp.Archetype)
		}
		params, err := mergeBehaviour(arch.Behaviour, sp.Behaviour)
		if err != nil {
			return nil, fmt.Errorf("prefabs: level %s adversary %d: behaviour: %w", level.Name, i, err)
		}

		a := component.NewActor(component.VariantAdversary, sp.X, sp.Y, arch.Archetype())
		name := sp.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", sp.Archetype, i)
		}
		a.Adversary = &component.Adversary{Name: name, Archetype: sp.Archetype}
		a.Slots = []component.Slot{{Weapon: component.WeaponID(sp.Weapon), Infinite: true}}
		a.SelectSlot(0)
		a.Intent = component.Idle()
		if sp.Dir < 0 {
			a.Dir, a.DirTo, a.BaseScaleTo = -1, -1, -1
		}

		roster.Adversaries = append(roster.Adversaries, Spawned{
			Entity: w.AddActor(a),
			Name:   name,
			Script: arch.Script,
			Params: params,
		})
	}
	return roster, nil
}
