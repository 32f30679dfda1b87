package ecs

// SparseSet is a cache-friendly store keyed by entity id. Dense order is
// insertion order until a removal swaps the last element into the hole.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

// Has returns true if the entity is present with the same generation.
func (s *SparseSet[T]) Has(e Entity) bool {
	idx, ok := s.index(e)
	return ok && s.denseEntities[idx] == e
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
	id := int(e.slot())
	if id <= 0 || id-1 >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseEntities) {
		return 0, false
	}
	return idx, true
}

// Get returns the value for e, or the zero value.
func (s *SparseSet[T]) Get(e Entity) (T, bool) {
	var zero T
	if !s.Has(e) {
		return zero, false
	}
	idx, _ := s.index(e)
	return s.denseValues[idx], true
}

// Set inserts or replaces the value for e.
func (s *SparseSet[T]) Set(e Entity, v T) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.slot())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.index(e); ok {
		// a stale generation in the same slot is replaced outright
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx, _ := s.index(e)
	last := len(s.denseEntities) - 1
	lastEnt := s.denseEntities[last]

	s.denseEntities[idx] = lastEnt
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEnt.slot()-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.slot()-1] = -1
	return true
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list. Callers must not mutate it.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Values returns the dense value list. Callers must not mutate it.
func (s *SparseSet[T]) Values() []T {
	if s == nil {
		return nil
	}
	return s.denseValues
}
