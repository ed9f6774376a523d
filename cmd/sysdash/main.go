package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sysdash/cmd/sysdash/app"
	"sysdash/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	if err := app.NewCommand(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
