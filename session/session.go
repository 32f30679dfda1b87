package session

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/script"
)

// Options selects what New loads.
type Options struct {
	Level  string
	Seed   int64
	Logger *slog.Logger
	Sink   ecs.CueSink
}

// Session is a loaded level ready to step: world, pipeline, and the
// adversary script runtime.
type Session struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Control   *system.ControlSystem
	Scripts   *script.Runtime
	Roster    *prefabs.Roster
	Level     *prefabs.LevelSpec
	Actors    *prefabs.ActorsSpec

	logger *slog.Logger
	cues   map[ecs.CueKind]int
}

// New loads the prefabs and builds opts.Level, or the world's default level
// when empty.
func New(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	weapons, err := prefabs.LoadWeaponRegistry()
	if err != nil {
		return nil, err
	}
	actors, err := prefabs.LoadActorsSpec()
	if err != nil {
		return nil, err
	}
	levels, err := prefabs.LoadLevelsSpec()
	if err != nil {
		return nil, err
	}

	name := opts.Level
	if name == "" {
		name = worldSpec.DefaultLevel
	}
	level, err := levels.Level(name)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Level:  level,
		Actors: actors,
		logger: logger,
		cues:   map[ecs.CueKind]int{},
	}

	sink := ecs.CueSinkFunc(func(c ecs.Cue) {
		s.cues[c.Kind]++
		if opts.Sink != nil {
			opts.Sink.Cue(c)
		}
	})
	s.World = ecs.NewWorld(
		ecs.WithContext(worldSpec.Context(level, opts.Seed)),
		ecs.WithWeapons(weapons),
		ecs.WithCueSink(sink),
		ecs.WithLogger(logger),
	)

	s.Roster, err = prefabs.BuildLevel(s.World, level, actors)
	if err != nil {
		return nil, err
	}

	s.Scripts = script.NewRuntime(logger, prefabs.LoadScript)
	if err := s.Scripts.AttachRoster(s.Roster); err != nil {
		return nil, err
	}

	s.Control = system.NewControlSystem()
	s.Control.SetHook(component.VariantAdversary, s.Scripts.Hook())
	s.Scheduler = system.NewPipeline(s.Control, s.Roster.Terrain, nil)

	logger.Info("level loaded",
		"level", level.Name,
		"seed", opts.Seed,
		"adversaries", len(s.Roster.Adversaries),
		"weapons", len(weapons.IDs()),
	)
	return s, nil
}

// SetProtagonistHook installs the intent source for the protagonist.
func (s *Session) SetProtagonistHook(h system.IntentHook) {
	s.Control.SetHook(component.VariantProtagonist, h)
}

// Step advances the simulation one frame.
func (s *Session) Step() {
	s.Scheduler.Step(s.World)
}

func (s *Session) Protagonist() (*component.Actor, bool) {
	return s.World.Actor(s.Roster.Protagonist)
}

// Apply reloads weapons and scripts named by changes. Failures are logged
// and the previous definitions stay in effect.
func (s *Session) Apply(changes []prefabs.Change) {
	for _, c := range changes {
		switch c.Kind {
		case prefabs.ChangeSpec:
			if c.Name != "weapons.yaml" {
				continue
			}
			weapons, err := prefabs.LoadWeaponRegistry()
			if err != nil {
				s.logger.Warn("weapons reload failed", "err", err)
				continue
			}
			s.World.SetWeapons(weapons)
			s.logger.Info("weapons reloaded", "count", len(weapons.IDs()))
		case prefabs.ChangeScript:
			if err := s.Scripts.Reload(c.Name); err != nil {
				s.logger.Warn("script reload failed", "script", c.Name, "err", err)
				continue
			}
			s.logger.Info("script reloaded", "script", c.Name)
		}
	}
}

// Over reports whether the protagonist is dead or no adversary can fight.
func (s *Session) Over() bool {
	hero, ok := s.Protagonist()
	if !ok || hero.Dead {
		return true
	}
	for _, sp := range s.Roster.Adversaries {
		a, ok := s.World.Actor(sp.Entity)
		if ok && !a.Dead && !a.Adversary.HasSurrendered {
			return false
		}
	}
	return true
}

// Summary is a snapshot of a run's outcome.
type Summary struct {
	Level       string
	Frame       uint64
	HeroAlive   bool
	HeroHealth  component.Health
	ShotsFired  int
	Alive       int
	Surrendered int
	Dead        int
	Cues        map[ecs.CueKind]int
}

func (s *Session) Summary() Summary {
	sum := Summary{
		Level: s.Level.Name,
		Frame: s.World.Frame(),
		Cues:  make(map[ecs.CueKind]int, len(s.cues)),
	}
	for k, v := range s.cues {
		sum.Cues[k] = v
	}
	if hero, ok := s.Protagonist(); ok {
		sum.HeroAlive = !hero.Dead
		sum.HeroHealth = hero.Health
		if hero.Protagonist != nil {
			sum.ShotsFired = hero.Protagonist.ShotsFired
		}
	}
	for _, sp := range s.Roster.Adversaries {
		a, ok := s.World.Actor(sp.Entity)
		switch {
		case !ok || a.Dead:
			sum.Dead++
		case a.Adversary.HasSurrendered:
			sum.Surrendered++
		default:
			sum.Alive++
		}
	}
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf("level=%s frame=%d hero_alive=%t hero_health=%v shots=%d adversaries alive=%d surrendered=%d dead=%d",
		s.Level, s.Frame, s.HeroAlive, s.HeroHealth, s.ShotsFired, s.Alive, s.Surrendered, s.Dead)
}
