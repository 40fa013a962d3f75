package onboarding

import "sync"

// FormStateStore owns the single onboarding record. Every step component
// writes through Update; nothing else mutates the record, which keeps the
// single-writer invariant at the API boundary instead of by convention.
type FormStateStore struct {
	mu     sync.Mutex
	record Record
}

// NewFormStateStore creates an empty store.
func NewFormStateStore() *FormStateStore {
	return &FormStateStore{record: Record{}}
}

// Get returns a read-only snapshot of the record.
func (s *FormStateStore) Get() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// Update shallow-merges partial into the record, last write wins per field.
// Keys absent from partial are never removed: once a field is set it
// persists even if the step owning it is later hidden.
func (s *FormStateStore) Update(partial Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range partial {
		s.record[k] = v
	}
}

// SetBusinessType records the selected category. It writes the businessType
// field into the record like any other field; switching types does not
// purge fields owned by the previous type.
func (s *FormStateStore) SetBusinessType(bt BusinessType) {
	s.Update(Record{FieldBusinessType: string(bt)})
}

// BusinessType returns the currently selected category, or "" before the
// selector step has been completed.
func (s *FormStateStore) BusinessType() BusinessType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BusinessType(s.record.StringField(FieldBusinessType))
}

// Reset clears the record. Only an explicit start-over action calls this.
func (s *FormStateStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = Record{}
}
