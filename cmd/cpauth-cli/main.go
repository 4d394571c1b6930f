package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cpauth/cmd/cpauth-cli/commands"
	"cpauth/internal/platform/logger"
)

func main() {
	opts := logger.FromEnv()
	opts.Service = "cpauth-cli"
	logger.Init(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.ExecuteContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
