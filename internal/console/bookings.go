package console

import (
	"log/slog"
	"sync"

	"github.com/vogue360/studio/internal/clock"
	"github.com/vogue360/studio/internal/editor"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/notify"
	"github.com/vogue360/studio/internal/projection"
	"github.com/vogue360/studio/internal/store"
)

// BookingsView is a render snapshot of the bookings screen.
type BookingsView struct {
	Criteria     projection.Criteria
	Bookings     []model.Booking
	Total        int
	Selected     *model.Booking
	Editor       *EditorView[editor.BookingDraft]
	Notification *notify.Notification
}

// BookingsScreen manages bookings for one admin session.
type BookingsScreen struct {
	mu        sync.Mutex
	store     *store.Bookings
	criteria  projection.Criteria
	selection Selection[model.Booking]
	editor    *editor.Session[model.Booking, editor.BookingDraft]
	notifier  *notify.Emitter
	log       *slog.Logger
}

// NewBookingsScreen returns a screen over bookings reporting through n.
func NewBookingsScreen(bookings *store.Bookings, n *notify.Emitter, now clock.Func, log *slog.Logger) *BookingsScreen {
	return &BookingsScreen{
		store:    bookings,
		criteria: projection.Criteria{Filter: projection.All},
		editor:   editor.New(editor.BookingForm(now), bookings, n),
		notifier: n,
		log:      log,
	}
}

// SetCriteria changes the filter and search text.
func (s *BookingsScreen) SetCriteria(c projection.Criteria) {
	s.mu.Lock()
	s.criteria = c.Normalize()
	s.mu.Unlock()
}

// Visible returns the bookings matching the current criteria.
func (s *BookingsScreen) Visible() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return projection.Bookings(s.store.List(), s.criteria)
}

// Select shows the booking with the given ID in the detail view.
func (s *BookingsScreen) Select(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.selection.Select(b)
	return true
}

// Selected returns the booking in the detail view. A selection whose record
// has since been deleted is dropped.
func (s *BookingsScreen) Selected() (model.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected()
}

func (s *BookingsScreen) selected() (model.Booking, bool) {
	cur, ok := s.selection.Current()
	if !ok {
		return cur, false
	}
	b, ok := s.store.Get(cur.ID)
	if !ok {
		s.selection.Close()
		return model.Booking{}, false
	}
	s.selection.Sync(b)
	return b, true
}

// CloseDetail clears the detail view.
func (s *BookingsScreen) CloseDetail() {
	s.mu.Lock()
	s.selection.Close()
	s.mu.Unlock()
}

// SetStatus moves the booking to status, updating the store and the detail
// view together. Setting the status it already has changes nothing. It
// reports false when the booking does not exist.
func (s *BookingsScreen) SetStatus(id int64, status model.BookingStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.store.Get(id)
	if !ok {
		return false
	}
	if cur.Status == status {
		return true
	}

	updated, ok := s.store.Update(id, func(b model.Booking) model.Booking {
		b.Status = status
		return b
	})
	if !ok {
		return false
	}
	s.selection.Sync(updated)
	s.notifier.Success("Booking marked as " + string(status))
	s.log.Info("booking status changed", "booking", id, "from", cur.Status, "to", status)
	return true
}

// Delete removes the booking and clears it from the detail view.
func (s *BookingsScreen) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Remove(id) {
		return false
	}
	s.selection.ClearIf(id)
	s.notifier.Success("Booking deleted successfully")
	s.log.Info("booking deleted", "booking", id)
	return true
}

// OpenCreate opens the editor on an empty booking.
func (s *BookingsScreen) OpenCreate() {
	s.mu.Lock()
	s.editor.OpenForCreate()
	s.mu.Unlock()
}

// OpenEdit opens the editor on the booking with the given ID.
func (s *BookingsScreen) OpenEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.editor.OpenForEdit(b)
	return true
}

// CancelEdit closes the editor.
func (s *BookingsScreen) CancelEdit() {
	s.mu.Lock()
	s.editor.Cancel()
	s.mu.Unlock()
}

// Submit saves the editor draft.
func (s *BookingsScreen) Submit(d editor.BookingDraft) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, editing := s.editor.Target()
	b, err := s.editor.Submit(d)
	if err != nil {
		return b, err
	}
	s.selection.Sync(b)
	if editing {
		s.log.Info("booking updated", "booking", b.ID)
	} else {
		s.log.Info("booking added", "booking", b.ID, "name", b.Name)
	}
	return b, nil
}

// Notification returns the active notification.
func (s *BookingsScreen) Notification() (notify.Notification, bool) {
	return s.notifier.Current()
}

// Dismiss clears the active notification.
func (s *BookingsScreen) Dismiss() {
	s.notifier.Dismiss()
}

// View returns everything needed to render the screen.
func (s *BookingsScreen) View() BookingsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.List()
	v := BookingsView{
		Criteria: s.criteria,
		Bookings: projection.Bookings(all, s.criteria),
		Total:    len(all),
		Editor:   editorView(s.editor),
	}
	if b, ok := s.selected(); ok {
		v.Selected = &b
	}
	if n, ok := s.notifier.Current(); ok {
		v.Notification = &n
	}
	return v
}
