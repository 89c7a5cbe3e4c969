// Package editor implements the create/edit session behind the admin
// record forms.
package editor

import (
	"errors"

	"github.com/vogue360/studio/internal/store"
)

// ErrClosed is returned by Submit when no draft is open.
var ErrClosed = errors.New("editor is closed")

// ValidationError describes why a draft was rejected. Message is shown to
// the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// Store is the part of a record collection the editor writes to.
type Store[R any] interface {
	Add(r R) R
	Replace(id int64, r R) bool
}

// Notifier receives the outcome of a submit.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Form describes how drafts of one record type are built and validated.
type Form[R any, D any] struct {
	// FromRecord fills a draft from an existing record.
	FromRecord func(R) D
	// Build validates d and returns the record to store. base is the record
	// being edited, or the zero value when creating.
	Build func(d D, base R) (R, error)
	// Created and Updated are the success messages.
	Created string
	Updated string
}

// open is the state of an open session. A nil *open means closed.
type open[R any, D any] struct {
	draft     D
	base      R
	target    int64
	hasTarget bool
}

// Session is either closed or open on one draft, optionally targeting an
// existing record that submit replaces.
type Session[R store.Record[R], D any] struct {
	form     Form[R, D]
	store    Store[R]
	notifier Notifier
	state    *open[R, D]
}

// New returns a closed session writing to s and reporting to n.
func New[R store.Record[R], D any](form Form[R, D], s Store[R], n Notifier) *Session[R, D] {
	return &Session[R, D]{form: form, store: s, notifier: n}
}

// OpenForCreate opens the session on an empty draft. An already open draft
// is discarded.
func (s *Session[R, D]) OpenForCreate() {
	s.state = &open[R, D]{}
}

// OpenForEdit opens the session on a draft filled from r and remembers r's ID
// as the replace target.
func (s *Session[R, D]) OpenForEdit(r R) {
	s.state = &open[R, D]{
		draft:     s.form.FromRecord(r),
		base:      r,
		target:    r.RecordID(),
		hasTarget: true,
	}
}

// Cancel closes the session and discards the draft.
func (s *Session[R, D]) Cancel() {
	s.state = nil
}

// IsOpen reports whether a draft is open.
func (s *Session[R, D]) IsOpen() bool { return s.state != nil }

// Draft returns the open draft.
func (s *Session[R, D]) Draft() (D, bool) {
	if s.state == nil {
		var zero D
		return zero, false
	}
	return s.state.draft, true
}

// Target returns the ID submit will replace, if editing.
func (s *Session[R, D]) Target() (int64, bool) {
	if s.state == nil || !s.state.hasTarget {
		return 0, false
	}
	return s.state.target, true
}

// Submit validates d. A rejected draft stays open with d as its content, an
// error notification is emitted and the store is untouched. An accepted
// draft replaces the target (or is added when there is none), the session
// closes and a success notification is emitted.
func (s *Session[R, D]) Submit(d D) (R, error) {
	var zero R
	if s.state == nil {
		return zero, ErrClosed
	}
	s.state.draft = d

	r, err := s.form.Build(d, s.state.base)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.notifier.Error(verr.Message)
		} else {
			s.notifier.Error(err.Error())
		}
		return zero, err
	}

	msg := s.form.Created
	if s.state.hasTarget {
		r = r.WithID(s.state.target)
		s.store.Replace(s.state.target, r)
		msg = s.form.Updated
	} else {
		r = s.store.Add(r)
	}

	s.state = nil
	s.notifier.Success(msg)
	return r, nil
}
