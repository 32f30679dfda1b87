package script

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
	"github.com/milk9111/skirmish/prefabs"
)

// Scripts define think(self, target, state, params) and return a map with
// move, fire, jump, aim_x, aim_y, seen and surrender.
const thinkDispatchScript = `
__out = think(__self, __target, __state, __params)
`

// Loader resolves a script name to its source.
type Loader func(name string) ([]byte, error)

// Runtime drives adversary intents from tengo scripts. Each attached entity
// runs its own clone of the compiled script with a state map that persists
// between frames.
type Runtime struct {
	load     Loader
	logger   *slog.Logger
	compiled map[string]*tengo.Compiled
	minds    map[ecs.Entity]*mind
	target   ecs.Entity
}

type mind struct {
	script   string
	compiled *tengo.Compiled
	state    *tengo.Map
	params   *tengo.Map
}

func NewRuntime(logger *slog.Logger, load Loader) *Runtime {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if load == nil {
		load = prefabs.LoadScript
	}
	return &Runtime{
		load:     load,
		logger:   logger,
		compiled: map[string]*tengo.Compiled{},
		minds:    map[ecs.Entity]*mind{},
	}
}

// SetTarget names the actor scripts see as their target.
func (r *Runtime) SetTarget(e ecs.Entity) {
	r.target = e
}

// Attach binds e to the named script. Compile errors are returned here
// rather than surfacing every frame.
func (r *Runtime) Attach(e ecs.Entity, name string, params map[string]any) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("script: attach entity %d: empty script name", e)
	}
	base, err := r.compile(name)
	if err != nil {
		return err
	}
	p, err := toMap(params)
	if err != nil {
		return fmt.Errorf("script: attach entity %d: params: %w", e, err)
	}
	r.minds[e] = &mind{
		script:   name,
		compiled: base.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		params:   p,
	}
	return nil
}

// AttachRoster attaches every scripted adversary BuildLevel produced and
// targets the protagonist.
func (r *Runtime) AttachRoster(roster *prefabs.Roster) error {
	if roster == nil {
		return nil
	}
	r.SetTarget(roster.Protagonist)
	for _, sp := range roster.Adversaries {
		if sp.Script == "" {
			continue
		}
		if err := r.Attach(sp.Entity, sp.Script, sp.Params.Map()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runtime) Forget(e ecs.Entity) {
	delete(r.minds, e)
}

func (r *Runtime) Attached(e ecs.Entity) bool {
	_, ok := r.minds[e]
	return ok
}

// Reload recompiles name and swaps it into every mind running it. State
// maps survive. On failure the old code keeps running.
func (r *Runtime) Reload(name string) error {
	prev := r.compiled[name]
	delete(r.compiled, name)
	base, err := r.compile(name)
	if err != nil {
		if prev != nil {
			r.compiled[name] = prev
		}
		return err
	}
	for _, m := range r.minds {
		if m.script == name {
			m.compiled = base.Clone()
		}
	}
	return nil
}

// Scripts lists the names of the compiled scripts.
func (r *Runtime) Scripts() []string {
	names := make([]string, 0, len(r.compiled))
	for name := range r.compiled {
		names = append(names, name)
	}
	return names
}

// Hook adapts the runtime to the control system.
func (r *Runtime) Hook() system.IntentHook {
	return func(w *ecs.World, e ecs.Entity, a *component.Actor) {
		r.Think(w, e, a)
	}
}

// Think runs one tick of e's script and writes the result into a.Intent.
// Entities without a script are left alone.
func (r *Runtime) Think(w *ecs.World, e ecs.Entity, a *component.Actor) {
	m, ok := r.minds[e]
	if !ok || a == nil {
		return
	}

	out, err := m.run(selfObject(w, a), r.targetObject(w))
	if err != nil {
		r.logger.Warn("script: think failed", "entity", e, "script", m.script, "err", err)
		a.Intent = component.Idle()
		return
	}
	apply(a, out)
}

func (r *Runtime) compile(name string) (*tengo.Compiled, error) {
	if c, ok := r.compiled[name]; ok {
		return c, nil
	}
	src, err := r.load(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}

	s := tengo.NewScript([]byte(string(src) + "\n" + thinkDispatchScript))
	_ = s.Add("__self", map[string]any{})
	_ = s.Add("__target", nil)
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__params", map[string]any{})
	_ = s.Add("__out", nil)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	r.compiled[name] = compiled
	return compiled, nil
}

func (m *mind) run(self, target tengo.Object) (result map[string]any, err error) {
	// some VM faults surface as Go panics rather than errors
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("think panicked: %v", r)
		}
	}()
	if err := m.compiled.Set("__self", self); err != nil {
		return nil, err
	}
	if err := m.compiled.Set("__target", target); err != nil {
		return nil, err
	}
	if err := m.compiled.Set("__state", m.state); err != nil {
		return nil, err
	}
	if err := m.compiled.Set("__params", m.params); err != nil {
		return nil, err
	}
	if err := m.compiled.Run(); err != nil {
		return nil, err
	}
	out := m.compiled.Get("__out")
	if out.IsUndefined() {
		return nil, fmt.Errorf("think returned nothing")
	}
	result = out.Map()
	if result == nil {
		return nil, fmt.Errorf("think returned %s, want map", out.ValueType())
	}
	return result, nil
}

func (r *Runtime) targetObject(w *ecs.World) tengo.Object {
	t, ok := w.Actor(r.target)
	if !ok {
		return tengo.UndefinedValue
	}
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":    &tengo.Float{Value: t.X},
		"y":    &tengo.Float{Value: t.Y},
		"cx":   &tengo.Float{Value: t.CenterX()},
		"cy":   &tengo.Float{Value: t.CenterY()},
		"dead": boolObject(t.Dead),
	}}
}

func selfObject(w *ecs.World, a *component.Actor) tengo.Object {
	weapon := w.Weapon(a.Weapon)
	reach := 0.0
	if weapon.Melee != nil {
		reach = weapon.Melee.Length + weapon.Melee.Range
	}
	adv := a.Adversary
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":           &tengo.Float{Value: a.X},
		"y":           &tengo.Float{Value: a.Y},
		"cx":          &tengo.Float{Value: a.CenterX()},
		"cy":          &tengo.Float{Value: a.CenterY()},
		"dir":         &tengo.Int{Value: int64(a.Dir)},
		"frame":       &tengo.Int{Value: int64(w.Frame())},
		"health_frac": &tengo.Float{Value: healthFraction(a)},
		"can_jump":    boolObject(a.CanJump),
		"melee":       boolObject(weapon.IsMelee()),
		"reach":       &tengo.Float{Value: reach},
		"has_seen":    boolObject(adv != nil && adv.HasSeenPlayer),
		"surrendered": boolObject(adv != nil && adv.HasSurrendered),
	}}
}

// healthFraction is the lowest remaining share across zones.
func healthFraction(a *component.Actor) float64 {
	frac := 1.0
	for z := range a.Health {
		if a.MaxHealth[z] <= 0 {
			continue
		}
		if f := a.Health[z] / a.MaxHealth[z]; f < frac {
			frac = f
		}
	}
	return frac
}

func apply(a *component.Actor, out map[string]any) {
	in := component.Idle()
	in.MovingDir = int(asFloat(out["move"]))
	in.Fire = asBool(out["fire"])
	in.Jump = asBool(out["jump"])
	x, okX := out["aim_x"]
	y, okY := out["aim_y"]
	if okX && okY {
		in.AimX, in.AimY, in.HasAim = asFloat(x), asFloat(y), true
	}
	a.Intent = in

	if adv := a.Adversary; adv != nil {
		if asBool(out["seen"]) {
			adv.HasSeenPlayer = true
		}
		if asBool(out["surrender"]) {
			adv.HasSurrendered = true
		}
		if adv.HasSurrendered {
			a.Intent = component.Idle()
		}
	}
}
