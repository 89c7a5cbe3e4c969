// Package config loads the server configuration from VOGUE_* environment
// variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "VOGUE"

// Config holds all configuration values for the server.
type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	LogPath  string `envconfig:"LOG_PATH"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	AdminEmail    string        `envconfig:"ADMIN_EMAIL" default:"admin@vogue360.com"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	NotificationTTL time.Duration `envconfig:"NOTIFICATION_TTL" default:"3s"`
	LoginDelay      time.Duration `envconfig:"LOGIN_DELAY" default:"1s"`
	BookingDelay    time.Duration `envconfig:"BOOKING_DELAY" default:"1500ms"`

	ImageMaxDimension int   `envconfig:"IMAGE_MAX_DIMENSION" default:"1024"`
	UploadLimit       int64 `envconfig:"UPLOAD_LIMIT" default:"5242880"`
}

// Load reads the configuration from the environment and validates it. An
// empty session secret is replaced with a random one, so sessions do not
// survive a restart.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.SessionSecret == "" {
		secret, err := RandomSecret()
		if err != nil {
			return Config{}, err
		}
		cfg.SessionSecret = secret
	}
	return cfg, nil
}

// Validate checks values that envconfig cannot.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%s_ADDR must not be empty", Prefix)
	case c.AdminEmail == "" || c.AdminPassword == "":
		return fmt.Errorf("%s_ADMIN_EMAIL and %s_ADMIN_PASSWORD must not be empty", Prefix, Prefix)
	case c.NotificationTTL <= 0:
		return fmt.Errorf("%s_NOTIFICATION_TTL must be positive", Prefix)
	case c.LoginDelay < 0 || c.BookingDelay < 0:
		return fmt.Errorf("simulated delays must not be negative")
	case c.ImageMaxDimension <= 0:
		return fmt.Errorf("%s_IMAGE_MAX_DIMENSION must be positive", Prefix)
	case c.UploadLimit <= 0:
		return fmt.Errorf("%s_UPLOAD_LIMIT must be positive", Prefix)
	}
	return nil
}

// RandomSecret returns 32 random bytes, hex encoded.
func RandomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
