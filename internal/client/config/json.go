package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/psptechhub/leadcap/internal/flagx"
	"github.com/psptechhub/leadcap/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields keep
// whatever value the earlier stages produced.
type JsonConfig struct {
	DatabasePath         string         `json:"database_path"`
	LogFile              *string        `json:"log_file"`
	LogLevel             string         `json:"log_level"`
	Provider             string         `json:"provider"`
	FirebaseAPIKey       string         `json:"firebase_api_key"`
	IdentityEndpoint     string         `json:"identity_endpoint"`
	LocalTokenSecret     string         `json:"local_token_secret"`
	LocalTokenTTL        timex.Duration `json:"local_token_ttl"`
	LeadEndpoint         string         `json:"lead_endpoint"`
	HTTPTimeout          timex.Duration `json:"http_timeout"`
	SplashDuration       timex.Duration `json:"splash_duration"`
	ErrorDisplayDuration timex.Duration `json:"error_display_duration"`
	ResetSentDelay       timex.Duration `json:"reset_sent_delay"`
	ResetSentDisplay     timex.Duration `json:"reset_sent_display"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.Provider, jc.Provider)
	setString(&cfg.FirebaseAPIKey, jc.FirebaseAPIKey)
	setString(&cfg.IdentityEndpoint, jc.IdentityEndpoint)
	setString(&cfg.LocalTokenSecret, jc.LocalTokenSecret)
	setString(&cfg.LeadEndpoint, jc.LeadEndpoint)

	setDuration(&cfg.LocalTokenTTL, jc.LocalTokenTTL)
	setDuration(&cfg.HTTPTimeout, jc.HTTPTimeout)
	setDuration(&cfg.SplashDuration, jc.SplashDuration)
	setDuration(&cfg.ErrorDisplayDuration, jc.ErrorDisplayDuration)
	setDuration(&cfg.ResetSentDelay, jc.ResetSentDelay)
	setDuration(&cfg.ResetSentDisplay, jc.ResetSentDisplay)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
