package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vogue360/studio/internal/clock"
)

func newTestManager(t *testing.T, delay time.Duration) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Email:    "admin@vogue360.com",
		Password: "admin123",
		Secret:   "test-secret",
		Expiry:   time.Hour,
		Delay:    delay,
		Cost:     bcrypt.MinCost,
	})
	require.NoError(t, err)
	return m
}

func TestLoginAndAuthenticate(t *testing.T) {
	m := newTestManager(t, 0)

	s, token, err := m.Login(context.Background(), " Admin@Vogue360.com ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@vogue360.com", s.Email)
	assert.NotEmpty(t, s.ID)

	got, err := m.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	m := newTestManager(t, 0)

	_, _, err := m.Login(context.Background(), "admin@vogue360.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = m.Login(context.Background(), "someone@vogue360.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAbandoned(t *testing.T) {
	m := newTestManager(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := m.Login(ctx, "admin@vogue360.com", "admin123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogoutRevokes(t *testing.T) {
	m := newTestManager(t, 0)
	s, token, err := m.Login(context.Background(), "admin@vogue360.com", "admin123")
	require.NoError(t, err)

	m.Logout(s)

	_, err = m.Authenticate(token)
	assert.ErrorIs(t, err, ErrRevoked)

	// A fresh login is unaffected.
	_, token2, err := m.Login(context.Background(), "admin@vogue360.com", "admin123")
	require.NoError(t, err)
	_, err = m.Authenticate(token2)
	assert.NoError(t, err)
}

func TestNewManagerRequiresCredentials(t *testing.T) {
	_, err := NewManager(Config{Email: "a@b.c", Secret: "s"})
	assert.Error(t, err)
	_, err = NewManager(Config{Email: "a@b.c", Password: "p"})
	assert.Error(t, err)
}

func TestSessionContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	s := &Session{ID: "abc", Email: "admin@vogue360.com"}
	assert.Same(t, s, FromContext(WithSession(context.Background(), s)))
}

func TestSessionExpiresOnManagerClock(t *testing.T) {
	c := clock.NewManual(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	m, err := NewManager(Config{
		Email:    "admin@vogue360.com",
		Password: "admin123",
		Secret:   "test-secret",
		Expiry:   time.Hour,
		Cost:     bcrypt.MinCost,
		Now:      c.Now,
	})
	require.NoError(t, err)

	s, token, err := m.Login(context.Background(), "admin@vogue360.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, c.Now().Add(time.Hour), s.ExpiresAt)

	_, err = m.Authenticate(token)
	require.NoError(t, err)

	c.Advance(time.Hour + time.Second)
	_, err = m.Authenticate(token)
	assert.Error(t, err)
}
