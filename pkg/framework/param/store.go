package param

// Store exposes a registry through the host's index-based parameter
// contract. Hosts probe indices speculatively, so every accessor is total:
// out-of-range indices return a benign default rather than an error.
//
// The underlying values are the same atomics the real-time thread reads, so
// a Set on the UI thread is visible to the audio thread on its next read
// with no further synchronization.
type Store struct {
	registry *Registry
}

// NewStore wraps a registry in the host parameter contract.
func NewStore(registry *Registry) *Store {
	return &Store{registry: registry}
}

// Count returns the number of declared parameters.
func (s *Store) Count() int32 {
	return s.registry.Count()
}

// Get returns the normalized value at index, 0 when out of range.
func (s *Store) Get(index int32) float32 {
	if p := s.registry.GetByIndex(index); p != nil {
		return p.GetValue()
	}
	return 0
}

// Set stores a normalized value at index. Out-of-range indices are ignored.
func (s *Store) Set(index int32, value float32) {
	if p := s.registry.GetByIndex(index); p != nil {
		p.SetValue(value)
	}
}

// Name returns the parameter name at index, "" when out of range.
func (s *Store) Name(index int32) string {
	if p := s.registry.GetByIndex(index); p != nil {
		return p.Name
	}
	return ""
}

// Label returns the unit label at index, "" when out of range.
func (s *Store) Label(index int32) string {
	if p := s.registry.GetByIndex(index); p != nil {
		return p.Label
	}
	return ""
}

// Text returns the formatted display text at index, "" when out of range.
func (s *Store) Text(index int32) string {
	if p := s.registry.GetByIndex(index); p != nil {
		return p.Text()
	}
	return ""
}
