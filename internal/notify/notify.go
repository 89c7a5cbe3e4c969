// Package notify holds the single transient notification shown after a
// mutating action.
package notify

import (
	"sync"
	"time"

	"github.com/vogue360/studio/internal/clock"
)

// Severity classifies a notification.
type Severity string

// Severities.
const (
	Success Severity = "success"
	Error   Severity = "error"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Notification is a message shown to the admin.
type Notification struct {
	Message  string
	Severity Severity
}

// Emitter holds at most one active notification. A new notification replaces
// the current one; it expires TTL after it was set.
type Emitter struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     clock.Func
	onEmit  func(Severity)
	current *Notification
	expires time.Time
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithClock sets the time source used for expiry.
func WithClock(now clock.Func) Option {
	return func(e *Emitter) { e.now = now }
}

// WithObserver registers fn to be called for every emitted notification.
func WithObserver(fn func(Severity)) Option {
	return func(e *Emitter) { e.onEmit = fn }
}

// NewEmitter returns an emitter whose notifications expire after ttl. A
// non-positive ttl uses DefaultTTL.
func NewEmitter(ttl time.Duration, opts ...Option) *Emitter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	e := &Emitter{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Success shows a success notification.
func (e *Emitter) Success(message string) { e.emit(message, Success) }

// Error shows an error notification.
func (e *Emitter) Error(message string) { e.emit(message, Error) }

func (e *Emitter) emit(message string, sev Severity) {
	e.mu.Lock()
	e.current = &Notification{Message: message, Severity: sev}
	e.expires = e.now().Add(e.ttl)
	fn := e.onEmit
	e.mu.Unlock()

	if fn != nil {
		fn(sev)
	}
}

// Current returns the active notification, if any.
func (e *Emitter) Current() (Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return Notification{}, false
	}
	if !e.now().Before(e.expires) {
		e.current = nil
		return Notification{}, false
	}
	return *e.current, true
}

// Dismiss clears the active notification.
func (e *Emitter) Dismiss() {
	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()
}

// TTL returns the configured lifetime.
func (e *Emitter) TTL() time.Duration { return e.ttl }
