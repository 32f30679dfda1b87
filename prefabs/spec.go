package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec holds the world constants shared by every level.
type WorldSpec struct {
	FPS          int     `yaml:"fps"`
	Gravity      float64 `yaml:"gravity"`
	MaxVelocity  float64 `yaml:"max_velocity"`
	BlockSize    float64 `yaml:"block_size"`
	FallMargin   float64 `yaml:"fall_margin"`
	ViewportW    float64 `yaml:"viewport_w"`
	ViewportH    float64 `yaml:"viewport_h"`
	DefaultLevel string  `yaml:"default_level"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ShellSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	DelayMS float64 `yaml:"delay_ms"`
}

type RangedSpec struct {
	BarrelX     float64    `yaml:"barrel_x"`
	BarrelY     float64    `yaml:"barrel_y"`
	BulletSpeed float64    `yaml:"bullet_speed"`
	BulletLife  int        `yaml:"bullet_life"`
	Reload      int        `yaml:"reload"`
	RecoilX     float64    `yaml:"recoil_x"`
	RecoilY     float64    `yaml:"recoil_y"`
	Weight      float64    `yaml:"weight"`
	Semi        bool       `yaml:"semi"`
	Shell       *ShellSpec `yaml:"shell"`
}

type MeleeSpec struct {
	Length    float64 `yaml:"length"`
	Range     float64 `yaml:"range"`
	Knockback float64 `yaml:"knockback"`
}

type WeaponSpec struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Damage     float64     `yaml:"damage"`
	FrameDelay float64     `yaml:"frame_delay"`
	Ranged     *RangedSpec `yaml:"ranged"`
	Melee      *MeleeSpec  `yaml:"melee"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func LoadWeaponsSpec() (*WeaponsSpec, error) {
	spec, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ActorSpec describes an actor archetype.
type ActorSpec struct {
	Name         string         `yaml:"name"`
	Width        float64        `yaml:"width"`
	Height       float64        `yaml:"height"`
	Speed        float64        `yaml:"speed"`
	Acceleration float64        `yaml:"acceleration"`
	JumpForce    float64        `yaml:"jump_force"`
	Health       [3]float64     `yaml:"health"`
	Color        *YAMLColor     `yaml:"color"`
	Script       string         `yaml:"script"`
	Behaviour    map[string]any `yaml:"behaviour"`
}

type ActorsSpec struct {
	Protagonist ActorSpec            `yaml:"protagonist"`
	Adversaries map[string]ActorSpec `yaml:"adversaries"`
}

func LoadActorsSpec() (*ActorsSpec, error) {
	spec, err := LoadSpec[ActorsSpec]("actors.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GapSpec struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

type SpawnSpec struct {
	Archetype string         `yaml:"archetype"`
	Name      string         `yaml:"name"`
	X         float64        `yaml:"x"`
	Y         float64        `yaml:"y"`
	Weapon    string         `yaml:"weapon"`
	Dir       int            `yaml:"dir"`
	Behaviour map[string]any `yaml:"behaviour"`
}

type LevelSpec struct {
	Name        string      `yaml:"name"`
	Rows        int         `yaml:"rows"`
	GroundY     float64     `yaml:"ground_y"`
	Gaps        []GapSpec   `yaml:"gaps"`
	LongWeapon  string      `yaml:"long_weapon"`
	MainAmmo    int         `yaml:"main_ammo"`
	ShortWeapon string      `yaml:"short_weapon"`
	SideAmmo    int         `yaml:"side_ammo"`
	MeleeWeapon string      `yaml:"melee_weapon"`
	Spawn       SpawnSpec   `yaml:"spawn"`
	Adversaries []SpawnSpec `yaml:"adversaries"`
}

type LevelsSpec struct {
	Levels []LevelSpec `yaml:"levels"`
}

func LoadLevelsSpec() (*LevelsSpec, error) {
	spec, err := LoadSpec[LevelsSpec]("levels.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Level returns the level named name.
func (s *LevelsSpec) Level(name string) (*LevelSpec, error) {
	if s == nil {
		return nil, fmt.Errorf("prefabs: no levels loaded")
	}
	for i := range s.Levels {
		if s.Levels[i].Name == name {
			return &s.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("prefabs: unknown level %q", name)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
