package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name in the Config env tags.
const EnvPrefix = "LEADCAP_"

// parseEnv loads an optional .env file from the working directory and then
// overlays cfg with LEADCAP_* variables. Unset variables leave fields alone.
// Variables already present in the environment win over .env entries.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
