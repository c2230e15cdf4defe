package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PortfolioDesk/internal/admin/commands"
	"PortfolioDesk/internal/config"
)

// Заполняются через -ldflags при сборке релиза.
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("pdesk %s (build %s)\n", version, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	stop()
	if code != 0 {
		os.Exit(code)
	}
}
