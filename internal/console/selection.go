package console

import "github.com/vogue360/studio/internal/store"

// Selection holds the record currently shown in a detail view.
type Selection[R store.Record[R]] struct {
	current *R
}

// Select shows r.
func (s *Selection[R]) Select(r R) {
	s.current = &r
}

// Current returns the selected record.
func (s *Selection[R]) Current() (R, bool) {
	if s.current == nil {
		var zero R
		return zero, false
	}
	return *s.current, true
}

// Close clears the selection.
func (s *Selection[R]) Close() {
	s.current = nil
}

// Sync replaces the selected record with r when they share an ID.
func (s *Selection[R]) Sync(r R) {
	if s.current != nil && (*s.current).RecordID() == r.RecordID() {
		s.current = &r
	}
}

// ClearIf clears the selection when it holds id.
func (s *Selection[R]) ClearIf(id int64) bool {
	if s.current != nil && (*s.current).RecordID() == id {
		s.current = nil
		return true
	}
	return false
}
