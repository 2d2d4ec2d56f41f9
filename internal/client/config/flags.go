package config

import (
	"flag"
	"os"

	"github.com/velvetresearch/velvet/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend HTTP API (default from Config)
//	-d string   path to the local SQLite store (default from Config)
//	-r string   resume policy after sign-in: manual or auto
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path to the local SQLite store")
	fs.StringVar(&cfg.ResumePolicy, "r", cfg.ResumePolicy, "resume policy after sign-in (manual|auto)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
