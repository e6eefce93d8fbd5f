package entry

// Store is an ordered list of entry references with an explicit capacity.
// The zero value is an empty store ready for use.
type Store struct {
	entries []*Entry
}

// NewStore returns a store with room for capacity entries.
func NewStore(capacity int) *Store {
	s := &Store{}
	s.Resize(capacity)
	return s
}

// Resize grows the capacity to at least max. It never shrinks.
func (s *Store) Resize(max int) {
	if max <= cap(s.entries) {
		return
	}
	grown := make([]*Entry, len(s.entries), max)
	copy(grown, s.entries)
	s.entries = grown
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Cap returns the capacity.
func (s *Store) Cap() int { return cap(s.entries) }

// At returns the entry at index, or nil if index is out of range.
func (s *Store) At(index int) *Entry {
	if index < 0 || index >= len(s.entries) {
		return nil
	}
	return s.entries[index]
}

// Append adds e at the end, growing the store as needed.
func (s *Store) Append(e *Entry) error {
	if e == nil {
		return ErrNilEntry
	}
	s.entries = append(s.entries, e)
	return nil
}

// InsertAt places e at index in [0, Len], shifting later entries right.
func (s *Store) InsertAt(e *Entry, index int) error {
	if e == nil {
		return ErrNilEntry
	}
	if index < 0 || index > len(s.entries) {
		return ErrIndexRange
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[index+1:], s.entries[index:])
	s.entries[index] = e
	return nil
}

// Find returns the index of the first entry pred matches, or -1 if none
// does or pred aborts.
func (s *Store) Find(pred Predicate) int {
	for i, e := range s.entries {
		switch pred(e) {
		case Match:
			return i
		case Abort:
			return -1
		}
	}
	return -1
}

// TakeLast removes and returns the last entry, or nil when empty.
func (s *Store) TakeLast() *Entry {
	n := len(s.entries)
	if n == 0 {
		return nil
	}
	e := s.entries[n-1]
	s.entries[n-1] = nil
	s.entries = s.entries[:n-1]
	return e
}

// Entries returns a copy of the entry references in order.
func (s *Store) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reset drops every reference and keeps the capacity.
func (s *Store) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
