package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vogue360/studio/internal/config"
)

// TestLoad_defaults verifies the values used when nothing is set.
func TestLoad_defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "ADMIN_EMAIL", "ADMIN_PASSWORD", "SESSION_SECRET", "NOTIFICATION_TTL", "BOOKING_DELAY"} {
		// Setenv restores the variable after the test; Unsetenv makes it
		// absent rather than empty, which envconfig treats differently.
		t.Setenv("VOGUE_"+k, "")
		os.Unsetenv("VOGUE_" + k)
	}

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "admin@vogue360.com", cfg.AdminEmail)
	require.Equal(t, 3*time.Second, cfg.NotificationTTL)
	require.Equal(t, 1500*time.Millisecond, cfg.BookingDelay)
	require.Len(t, cfg.SessionSecret, 64, "an empty secret is generated")
}

// TestLoad_overrides verifies that values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("VOGUE_ADDR", "127.0.0.1:9000")
	t.Setenv("VOGUE_SESSION_SECRET", "fixed")
	t.Setenv("VOGUE_NOTIFICATION_TTL", "5s")
	t.Setenv("VOGUE_LOGIN_DELAY", "0s")
	t.Setenv("VOGUE_IMAGE_MAX_DIMENSION", "512")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)
	require.Equal(t, "fixed", cfg.SessionSecret)
	require.Equal(t, 5*time.Second, cfg.NotificationTTL)
	require.Equal(t, time.Duration(0), cfg.LoginDelay)
	require.Equal(t, 512, cfg.ImageMaxDimension)
}

// TestLoad_invalid verifies that malformed or out-of-range values are
// rejected.
func TestLoad_invalid(t *testing.T) {
	t.Setenv("VOGUE_NOTIFICATION_TTL", "soon")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("VOGUE_NOTIFICATION_TTL", "0s")
	_, err = config.Load()
	require.ErrorContains(t, err, "NOTIFICATION_TTL")
}
