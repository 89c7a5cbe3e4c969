package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vogue360/studio/internal/clock"
	"github.com/vogue360/studio/internal/latency"
)

// CookieName is the cookie carrying the session token in the browser.
const CookieName = "session"

// ErrInvalidCredentials is returned by Login for a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrRevoked is returned by Authenticate for a logged-out session.
var ErrRevoked = errors.New("session has been revoked")

// Session is an authenticated admin session.
type Session struct {
	ID        string
	Email     string
	ExpiresAt time.Time
}

// Config configures a Manager.
type Config struct {
	Email    string
	Password string
	Secret   string
	// Expiry is the session lifetime.
	Expiry time.Duration
	// Delay is the simulated latency of a login check.
	Delay time.Duration
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
	Now  clock.Func
}

// Manager checks the admin credentials and tracks issued sessions.
type Manager struct {
	email  string
	hash   []byte
	secret string
	expiry time.Duration
	delay  time.Duration
	now    clock.Func

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewManager hashes the configured password and returns a manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("admin email and password required")
	}
	if cfg.Secret == "" {
		return nil, errors.New("session secret required")
	}
	cost := cfg.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		email:   strings.ToLower(strings.TrimSpace(cfg.Email)),
		hash:    hash,
		secret:  cfg.Secret,
		expiry:  cfg.Expiry,
		delay:   cfg.Delay,
		now:     now,
		revoked: make(map[string]time.Time),
	}, nil
}

// Login waits out the simulated latency, then checks the credentials. It
// returns the session and its signed token. A cancelled ctx aborts the login.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, string, error) {
	if err := latency.Wait(ctx, m.delay); err != nil {
		return nil, "", err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != m.email {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(m.hash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, claims, err := GenerateToken(m.secret, m.email, m.now(), m.expiry)
	if err != nil {
		return nil, "", err
	}
	return sessionFromClaims(claims), token, nil
}

// Authenticate validates token and returns its session.
func (m *Manager) Authenticate(token string) (*Session, error) {
	claims, err := validateToken(m.secret, token, m.now)
	if err != nil {
		return nil, err
	}
	if m.isRevoked(claims.ID) {
		return nil, ErrRevoked
	}
	return sessionFromClaims(claims), nil
}

// Logout revokes s. Its token stops authenticating immediately.
func (m *Manager) Logout(s *Session) {
	if s == nil || s.ID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[s.ID] = s.ExpiresAt

	// Opportunistically forget revocations of tokens that expired anyway.
	now := m.now()
	for id, exp := range m.revoked {
		if !exp.IsZero() && exp.Before(now) {
			delete(m.revoked, id)
		}
	}
}

func (m *Manager) isRevoked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[id]
	return ok
}

func sessionFromClaims(c *Claims) *Session {
	s := &Session{ID: c.ID, Email: c.Email}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session carried by ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
