// @title         cpauth API
// @version       0.1.0
// @description   Verifies ownership of CodeChef, LeetCode and Codeforces accounts
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cpauth/internal/platform/config"
	"cpauth/internal/platform/logger"
	phttp "cpauth/internal/platform/net/http"

	"cpauth/internal/services/api"
)

func main() {
	// service scope (CPAUTH_*) for modules, api scope (CPAUTH_API_*) for HTTP
	root := config.New().Prefix("CPAUTH_")
	apiCfg := root.Prefix("API_")

	// bring up logging early
	lo := logger.FromEnv()
	if lo.Service == "cpauth" {
		lo.Service = "cpauth-api"
	}
	logger.Init(lo)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CPAUTH_API_PORT / CPAUTH_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	opts := api.OptionsFromConfig(root, apiCfg)
	opts.Logger = l
	api.Mount(srv.Router(), opts)

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server stopped")
}
