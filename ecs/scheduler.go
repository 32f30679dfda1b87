package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs the systems once in order without any frame bookkeeping.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Step runs one full frame: advance the frame counter, fire due deferred
// events, run the systems, then commit registry changes.
func (s *Scheduler) Step(w *World) {
	if s == nil || w == nil {
		return
	}
	w.beginFrame()
	w.RunDeferred()
	s.Update(w)
	w.Commit()
}
