// Package config loads runtime configuration for the lead-capture client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Optional .env file in the working directory, then LEADCAP_* environment
//     variables (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-d string   path to the local SQLite database
//	-p string   identity provider: "local" or "firebase"
//	-k string   Firebase Web API key
//	-e string   lead submission endpoint URL
//	-log string path to the log file ("" logs to stderr)
//
// # JSON schema
//
// Durations accept "2s" style strings or integer nanoseconds:
//
//	{
//	  "database_path": "state/leadcap.db",
//	  "provider": "firebase",
//	  "firebase_api_key": "AIza...",
//	  "lead_endpoint": "https://script.google.com/macros/s/.../exec",
//	  "splash_duration": "2s",
//	  "error_display_duration": "3s"
//	}
package config
