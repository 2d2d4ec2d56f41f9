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
//	-a string   listen address (default from Config)
//	-s string   static asset directory (default from Config)
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.StaticDir, "s", cfg.StaticDir, "static asset directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
