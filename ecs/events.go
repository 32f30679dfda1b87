package ecs

import "github.com/milk9111/skirmish/ecs/component"

// CueKind names a fire-and-forget feedback notification.
type CueKind string

const (
	CueFire     CueKind = "fire"
	CueDryFire  CueKind = "dry_fire"
	CueSwing    CueKind = "swing"
	CueStrike   CueKind = "strike"
	CueHit      CueKind = "hit"
	CueFootstep CueKind = "footstep"
	CueJump     CueKind = "jump"
	CueDash     CueKind = "dash"
	CueDeath    CueKind = "death"
)

// Cue is a notification for audio or visual feedback. Nothing in the
// simulation depends on it being consumed.
type Cue struct {
	Kind   CueKind
	Entity Entity
	Weapon component.WeaponID
	X, Y   float64
}

// CueSink receives cues as they are emitted.
type CueSink interface {
	Cue(c Cue)
}

// CueSinkFunc adapts a function to CueSink.
type CueSinkFunc func(c Cue)

func (f CueSinkFunc) Cue(c Cue) { f(c) }

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Cue
}

// Push adds a cue.
func (q *EventQueue) Push(c Cue) {
	if q == nil {
		return
	}
	q.items = append(q.items, c)
}

// Items returns a copy of the queued cues without clearing them. The queue
// reuses its buffer every frame.
func (q *EventQueue) Items() []Cue {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	return append([]Cue(nil), q.items...)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
