package ecs

// entityStore hands out handles and recycles slots. gens[i] is the current
// generation of slot i+1.
type entityStore struct {
	gens []uint32
	free []uint32
	live int
}

func (s *entityStore) create() Entity {
	var slot uint32
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		slot = uint32(len(s.gens))
	}
	s.live++
	return handle(slot, s.gens[slot-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := e.slot()
	s.gens[slot-1]++
	s.free = append(s.free, slot)
	s.live--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	slot := e.slot()
	if slot == 0 || int(slot) > len(s.gens) {
		return false
	}
	return s.gens[slot-1] == e.gen()
}
