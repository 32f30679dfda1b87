package ecs

import "sort"

// Guard selects the liveness check applied before a deferred event fires.
type Guard uint8

const (
	// GuardExists requires every subject to still be in the world.
	GuardExists Guard = iota
	// GuardAlive additionally requires no subject actor to be dead.
	GuardAlive
)

func (g Guard) String() string {
	if g == GuardAlive {
		return "alive"
	}
	return "exists"
}

// Deferred is a one-shot callback scheduled a number of frames ahead. There
// is no cancellation; stale events are dropped by their guard.
type Deferred struct {
	Name     string
	Subjects []Entity
	Guard    Guard
	Fire     func(w *World)
}

type deferredItem struct {
	due uint64
	seq uint64
	ev  Deferred
}

type deferredQueue struct {
	items []deferredItem
	seq   uint64
}

// Enqueue schedules ev to fire delayFrames after the current frame. Delays
// below one fire at the start of the next frame.
func (w *World) Enqueue(delayFrames int, ev Deferred) {
	if w == nil || ev.Fire == nil {
		return
	}
	if delayFrames < 1 {
		delayFrames = 1
	}
	w.deferred.seq++
	w.deferred.items = append(w.deferred.items, deferredItem{
		due: w.ctx.Frame + uint64(delayFrames),
		seq: w.deferred.seq,
		ev:  ev,
	})
}

// PendingDeferred returns the number of scheduled events.
func (w *World) PendingDeferred() int {
	if w == nil {
		return 0
	}
	return len(w.deferred.items)
}

// RunDeferred fires every event due at or before the current frame in
// due-then-enqueue order. Events enqueued while running wait for a later
// frame.
func (w *World) RunDeferred() {
	if w == nil || len(w.deferred.items) == 0 {
		return
	}
	now := w.ctx.Frame
	var due, later []deferredItem
	for _, it := range w.deferred.items {
		if it.due <= now {
			due = append(due, it)
		} else {
			later = append(later, it)
		}
	}
	if len(due) == 0 {
		return
	}
	w.deferred.items = later
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	for _, it := range due {
		if !w.guardHolds(it.ev) {
			w.logger.Debug("deferred dropped", "event", it.ev.Name, "guard", it.ev.Guard.String(), "frame", now)
			continue
		}
		it.ev.Fire(w)
	}
}

func (w *World) guardHolds(ev Deferred) bool {
	for _, e := range ev.Subjects {
		if !w.IsAlive(e) {
			return false
		}
		if ev.Guard == GuardAlive && w.actors.Has(e) && !w.ActorAlive(e) {
			return false
		}
	}
	return true
}
