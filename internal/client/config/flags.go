package config

import (
	"flag"
	"os"
	"time"

	"github.com/fundunity/cmsdash/internal/flagx"
)

// parseFlags overlays cfg with the console's command-line flags. Unknown
// arguments are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-x", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ContentOrigin, "a", cfg.ContentOrigin, "content API origin")
	fs.StringVar(&cfg.TransactionOrigin, "x", cfg.TransactionOrigin, "transaction API origin")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
