package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport/internal/cli"
	"github.com/Domenick1991/airport/internal/logging"
	"github.com/Domenick1991/airport/internal/registry"
	"github.com/Domenick1991/airport/internal/service/flights"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	level := flag.String("log-level", "error", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(*level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	menu := cli.NewMenu(flights.NewFlightService(registry.New(), logger), os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("cli", zap.Error(err))
	}
}
