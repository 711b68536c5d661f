package ecs

// SparseSet stores at most one component value per entity with a dense,
// cache-friendly iteration order. Values are stored as `any`; the typed
// accessors on World perform the casts.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

// Has reports whether the entity has a value in this set.
func (s *SparseSet) Has(e Entity) bool {
	if s == nil || e <= 0 || int(e)-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[e-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

// Get returns the value for the entity, or nil when absent.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.values[s.sparse[e-1]]
}

// Set inserts or replaces the value for the entity.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || e <= 0 {
		return
	}
	for int(e)-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(e) {
		s.values[s.sparse[e-1]] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[e-1] = len(s.dense) - 1
}

// Remove deletes the value for the entity if present.
func (s *SparseSet) Remove(e Entity) {
	if s == nil || !s.Has(e) {
		return
	}
	idx := s.sparse[e-1]
	last := len(s.dense) - 1
	lastEnt := s.dense[last]

	s.dense[idx] = s.dense[last]
	s.values[idx] = s.values[last]
	s.sparse[lastEnt-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e-1] = -1
}

// Entities returns the dense entity list. The slice is owned by the set;
// callers must not mutate it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
