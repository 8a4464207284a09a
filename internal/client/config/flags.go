package config

import (
	"flag"
	"os"

	"github.com/psptechhub/leadcap/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   SQLite database path
//	-p string   identity provider ("local" or "firebase")
//	-k string   Firebase Web API key
//	-e string   lead submission endpoint
//	-log string log file path
//
// Only these flags are read from os.Args (see flagx.FilterArgs), so -c/-config
// does not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-k", "-e", "-log"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local SQLite database")
	fs.StringVar(&cfg.Provider, "p", cfg.Provider, "identity provider: local or firebase")
	fs.StringVar(&cfg.FirebaseAPIKey, "k", cfg.FirebaseAPIKey, "Firebase Web API key")
	fs.StringVar(&cfg.LeadEndpoint, "e", cfg.LeadEndpoint, "lead submission endpoint URL")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path (empty logs to stderr)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
