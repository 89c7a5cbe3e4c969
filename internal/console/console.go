// Package console holds the per-session state of the admin screens: the
// active filters, the detail view, the open editor and the notification.
// Record stores are shared by every session.
package console

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/vogue360/studio/internal/clock"
	"github.com/vogue360/studio/internal/editor"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/notify"
	"github.com/vogue360/studio/internal/store"
)

// EditorView is a render snapshot of an open editor.
type EditorView[D any] struct {
	Draft   D
	Target  int64
	Editing bool
}

func editorView[R store.Record[R], D any](s *editor.Session[R, D]) *EditorView[D] {
	d, ok := s.Draft()
	if !ok {
		return nil
	}
	target, editing := s.Target()
	return &EditorView[D]{Draft: d, Target: target, Editing: editing}
}

// Deps are the collaborators shared by every console.
type Deps struct {
	Bookings        *store.Bookings
	Catalog         *store.Catalog
	NotificationTTL time.Duration
	// Now is the time source for notification expiry and booking stamps.
	// Nil means time.Now.
	Now clock.Func
	// OnNotify is called for every emitted notification.
	OnNotify func(notify.Severity)
	Logger   *slog.Logger
}

// Console bundles the admin screens of one session.
type Console struct {
	Bookings *BookingsScreen
	Catalog  *CatalogScreen
}

// New creates a console with fresh screen state over the shared stores.
func New(d Deps) *Console {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}

	emitter := func() *notify.Emitter {
		opts := []notify.Option{notify.WithClock(now)}
		if d.OnNotify != nil {
			opts = append(opts, notify.WithObserver(d.OnNotify))
		}
		return notify.NewEmitter(d.NotificationTTL, opts...)
	}

	return &Console{
		Bookings: NewBookingsScreen(d.Bookings, emitter(), now, log),
		Catalog:  NewCatalogScreen(d.Catalog, emitter(), log),
	}
}

// Registry maps session IDs to consoles.
type Registry struct {
	mu       sync.Mutex
	deps     Deps
	consoles map[string]*Console
}

// NewRegistry returns an empty registry building consoles from d.
func NewRegistry(d Deps) *Registry {
	return &Registry{deps: d, consoles: make(map[string]*Console)}
}

// Open returns the console for sessionID, creating it on first use.
func (r *Registry) Open(sessionID string) *Console {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.consoles[sessionID]
	if !ok {
		c = New(r.deps)
		r.consoles[sessionID] = c
	}
	return c
}

// Close drops the console for sessionID.
func (r *Registry) Close(sessionID string) {
	r.mu.Lock()
	delete(r.consoles, sessionID)
	r.mu.Unlock()
}

// Len returns the number of open consoles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consoles)
}

// Overview summarises the stores for the dashboard.
type Overview struct {
	TotalBookings    int
	GalleryItems     int
	UpcomingSessions int
	RecentBookings   []model.Booking
}

// Summarize computes the dashboard overview. Recent bookings are the three
// most recently created, newest first.
func Summarize(bookings *store.Bookings, catalog *store.Catalog) Overview {
	list := bookings.List()
	o := Overview{TotalBookings: len(list), GalleryItems: catalog.Len()}
	for _, b := range list {
		if b.Status.Upcoming() {
			o.UpcomingSessions++
		}
	}

	// Insertion order follows creation order, so newest are at the end.
	recent := slices.Clone(list)
	slices.Reverse(recent)
	if len(recent) > 3 {
		recent = recent[:3]
	}
	o.RecentBookings = recent
	return o
}
