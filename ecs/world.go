package ecs

import (
	"log/slog"

	"github.com/milk9111/skirmish/ecs/component"
)

// World owns entities, the actor set and the projectile and particle
// registries. Everything is mutated from a single goroutine.
type World struct {
	entities entityStore
	ctx      Context

	actors      SparseSet[*component.Actor]
	projectiles SparseSet[*component.Projectile]
	particles   SparseSet[*component.Particle]

	pendingProjectiles []pendingValue[*component.Projectile]
	pendingParticles   []pendingValue[*component.Particle]

	deferred deferredQueue
	cues     EventQueue
	sink     CueSink

	weapons component.WeaponLookup
	logger  *slog.Logger
}

type pendingValue[T any] struct {
	e Entity
	v T
}

// Option configures a World.
type Option func(*World)

func WithContext(ctx Context) Option {
	return func(w *World) { w.ctx = ctx }
}

func WithWeapons(weapons component.WeaponLookup) Option {
	return func(w *World) { w.weapons = weapons }
}

func WithCueSink(sink CueSink) Option {
	return func(w *World) { w.sink = sink }
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWorld creates an empty world with the default context seeded with 1.
func NewWorld(opts ...Option) *World {
	w := &World{
		ctx:    DefaultContext(1),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Context returns the frame context.
func (w *World) Context() *Context {
	if w == nil {
		return nil
	}
	return &w.ctx
}

func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.ctx.Frame
}

func (w *World) Logger() *slog.Logger {
	if w == nil || w.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.logger
}

// Weapon resolves id, falling back to the unarmed weapon.
func (w *World) Weapon(id component.WeaponID) *component.Weapon {
	if w == nil {
		return &component.Unarmed
	}
	return component.LookupOrUnarmed(w.weapons, id)
}

// SetWeapons swaps the weapon lookup, e.g. after a hot reload.
func (w *World) SetWeapons(weapons component.WeaponLookup) {
	if w == nil {
		return
	}
	w.weapons = weapons
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddActor registers a into the live actor set.
func (w *World) AddActor(a *component.Actor) Entity {
	if w == nil || a == nil {
		return 0
	}
	e := w.entities.create()
	w.actors.Set(e, a)
	return e
}

// RemoveActor retires the handle. Deferred events naming it are dropped.
func (w *World) RemoveActor(e Entity) bool {
	if w == nil || !w.actors.Has(e) {
		return false
	}
	w.actors.Remove(e)
	return w.entities.destroy(e)
}

func (w *World) Actor(e Entity) (*component.Actor, bool) {
	if w == nil {
		return nil, false
	}
	return w.actors.Get(e)
}

// ActorAlive reports whether e names an actor that has not died.
func (w *World) ActorAlive(e Entity) bool {
	a, ok := w.Actor(e)
	return ok && !a.Dead
}

// Actors returns the live actor handles in registry order. Callers must not
// mutate the slice.
func (w *World) Actors() []Entity {
	if w == nil {
		return nil
	}
	return w.actors.Entities()
}

// ForEachActor calls fn for every actor, dead ones included.
func (w *World) ForEachActor(fn func(e Entity, a *component.Actor)) {
	if w == nil || fn == nil {
		return
	}
	ents := w.actors.Entities()
	vals := w.actors.Values()
	for i := range ents {
		fn(ents[i], vals[i])
	}
}

// SpawnProjectile hands p to the registry. It becomes visible after the
// current frame commits.
func (w *World) SpawnProjectile(p *component.Projectile) Entity {
	if w == nil || p == nil {
		return 0
	}
	e := w.entities.create()
	w.pendingProjectiles = append(w.pendingProjectiles, pendingValue[*component.Projectile]{e: e, v: p})
	return e
}

// SpawnParticle hands p to the registry. It becomes visible after the
// current frame commits.
func (w *World) SpawnParticle(p *component.Particle) Entity {
	if w == nil || p == nil {
		return 0
	}
	e := w.entities.create()
	w.pendingParticles = append(w.pendingParticles, pendingValue[*component.Particle]{e: e, v: p})
	return e
}

// ForEachProjectile iterates committed projectiles.
func (w *World) ForEachProjectile(fn func(e Entity, p *component.Projectile)) {
	if w == nil || fn == nil {
		return
	}
	ents := w.projectiles.Entities()
	vals := w.projectiles.Values()
	for i := range ents {
		fn(ents[i], vals[i])
	}
}

// ForEachParticle iterates committed particles.
func (w *World) ForEachParticle(fn func(e Entity, p *component.Particle)) {
	if w == nil || fn == nil {
		return
	}
	ents := w.particles.Entities()
	vals := w.particles.Values()
	for i := range ents {
		fn(ents[i], vals[i])
	}
}

// Projectiles returns the committed projectiles.
func (w *World) Projectiles() []*component.Projectile {
	if w == nil {
		return nil
	}
	return w.projectiles.Values()
}

// Particles returns the committed particles.
func (w *World) Particles() []*component.Particle {
	if w == nil {
		return nil
	}
	return w.particles.Values()
}

// PendingProjectiles returns projectiles spawned this frame.
func (w *World) PendingProjectiles() []*component.Projectile {
	if w == nil {
		return nil
	}
	out := make([]*component.Projectile, 0, len(w.pendingProjectiles))
	for _, p := range w.pendingProjectiles {
		out = append(out, p.v)
	}
	return out
}

// PendingParticles returns particles spawned this frame.
func (w *World) PendingParticles() []*component.Particle {
	if w == nil {
		return nil
	}
	out := make([]*component.Particle, 0, len(w.pendingParticles))
	for _, p := range w.pendingParticles {
		out = append(out, p.v)
	}
	return out
}

// Commit culls dead registry entries then publishes everything spawned since
// the last commit.
func (w *World) Commit() {
	if w == nil {
		return
	}
	cull(w, &w.projectiles, func(p *component.Projectile) bool { return p == nil || p.Dead })
	cull(w, &w.particles, func(p *component.Particle) bool { return p == nil || p.Dead })

	for _, p := range w.pendingProjectiles {
		w.projectiles.Set(p.e, p.v)
	}
	for _, p := range w.pendingParticles {
		w.particles.Set(p.e, p.v)
	}
	w.pendingProjectiles = w.pendingProjectiles[:0]
	w.pendingParticles = w.pendingParticles[:0]
}

func cull[T any](w *World, set *SparseSet[T], dead func(T) bool) {
	// walk backwards so swap-remove never skips an entry
	ents := set.Entities()
	vals := set.Values()
	for i := len(ents) - 1; i >= 0; i-- {
		if dead(vals[i]) {
			e := ents[i]
			set.Remove(e)
			w.entities.destroy(e)
		}
	}
}

// EmitCue buffers c for this frame and forwards it to the sink.
func (w *World) EmitCue(c Cue) {
	if w == nil {
		return
	}
	w.cues.Push(c)
	if w.sink != nil {
		w.sink.Cue(c)
	}
}

// Cues returns the cues emitted during the current frame. The slice is the
// caller's to keep.
func (w *World) Cues() []Cue {
	if w == nil {
		return nil
	}
	return w.cues.Items()
}

func (w *World) beginFrame() {
	w.ctx.Frame++
	w.cues.flush()
}
