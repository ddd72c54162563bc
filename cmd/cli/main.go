package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/fundunity/cmsdash/internal/client/cli"
	"github.com/fundunity/cmsdash/internal/client/config"
	"github.com/fundunity/cmsdash/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// diagnostics go to stderr so they do not mix with tables on stdout
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
