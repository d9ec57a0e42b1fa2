package ecs

// componentStore is the type-erased view the world needs to drop components of
// destroyed entities.
type componentStore interface {
	remove(e Entity) bool
	len() int
}

// SparseSet stores one component type keyed by entity slot. Values are kept
// densely so iteration touches only entities that carry the component.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        []int
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id <= 0 || id >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has returns true if the entity exists in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns the component for e, or nil.
func (s *SparseSet[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.denseValues[idx], true
}

// Set inserts or replaces the component for e.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	id := int(e.id())
	for id >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id] = len(s.denseEntities) - 1
}

func (s *SparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues[last] = nil
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()] = -1
	return true
}

func (s *SparseSet[T]) len() int {
	return len(s.denseEntities)
}

// Entities returns a copy of the dense entity list.
func (s *SparseSet[T]) Entities() []Entity {
	return append([]Entity(nil), s.denseEntities...)
}
