package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ProviderLocal    = "local"
	ProviderFirebase = "firebase"
)

// Config holds runtime settings for the client.
type Config struct {
	DatabasePath string `env:"DATABASE_PATH" validate:"required"`
	LogFile      string `env:"LOG_FILE"`
	LogLevel     string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	Provider         string        `env:"PROVIDER" validate:"oneof=local firebase"`
	FirebaseAPIKey   string        `env:"FIREBASE_API_KEY" validate:"required_if=Provider firebase"`
	IdentityEndpoint string        `env:"IDENTITY_ENDPOINT" validate:"omitempty,url"`
	LocalTokenSecret string        `env:"LOCAL_TOKEN_SECRET"`
	LocalTokenTTL    time.Duration `env:"LOCAL_TOKEN_TTL" validate:"gt=0"`

	// LeadEndpoint is left empty by default; submissions then fail until
	// it is configured.
	LeadEndpoint string        `env:"LEAD_ENDPOINT" validate:"omitempty,url"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" validate:"gt=0"`

	SplashDuration       time.Duration `env:"SPLASH_DURATION" validate:"gt=0"`
	ErrorDisplayDuration time.Duration `env:"ERROR_DISPLAY_DURATION" validate:"gt=0"`
	ResetSentDelay       time.Duration `env:"RESET_SENT_DELAY" validate:"gte=0"`
	ResetSentDisplay     time.Duration `env:"RESET_SENT_DISPLAY" validate:"gte=0"`
}

// LoadDefaults populates c with the values the client ships with.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "leadcap.db"
	c.LogFile = "logs/leadcap.log"
	c.LogLevel = "info"
	c.Provider = ProviderLocal
	c.IdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"
	c.LocalTokenTTL = 30 * 24 * time.Hour
	c.HTTPTimeout = 15 * time.Second
	c.SplashDuration = 2 * time.Second
	c.ErrorDisplayDuration = 3 * time.Second
	c.ResetSentDelay = time.Second
	c.ResetSentDisplay = 2 * time.Second
}

var validate = validator.New()

// Validate checks field constraints after all sources have been applied.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// LoadConfig applies defaults, then JSON, environment and flags in that
// order. Malformed input panics, as the client cannot start without a
// usable configuration.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
