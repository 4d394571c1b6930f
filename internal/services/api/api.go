// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"cpauth/internal/modkit"
	"cpauth/internal/modkit/httpkit"
	"cpauth/internal/modkit/module"
	"cpauth/internal/modkit/swaggerkit"
	"cpauth/internal/platform/config"
	"cpauth/internal/platform/logger"
	phttp "cpauth/internal/platform/net/http"
	"cpauth/internal/platform/net/middleware"

	metamod "cpauth/internal/services/api/meta/module"
	verifymod "cpauth/internal/services/verify/module"
)

// Banner is the body of GET /
const Banner = "praise the lord!"

// Options are the API options
type Options struct {
	// Config is the service scope (CPAUTH_); modules add their own prefixes
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	RequestTimeout time.Duration
	CORSOrigins    []string

	// Verify replaces the production verify module, mostly for tests
	Verify modkit.Module
}

// OptionsFromConfig reads API options from the api scope (CPAUTH_API_)
func OptionsFromConfig(root, apiCfg config.Conf) Options {
	return Options{
		Config:         root,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		RequestTimeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}

	// root stack first; chi refuses middleware after routes
	r.Use(middleware.Defaults(middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins}, opt.RequestTimeout)...)

	verify := opt.Verify
	if verify == nil {
		verify = verifymod.New(deps)
	}

	mods := []module.Module{
		verify,
		metamod.New(deps),
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(Banner))
	})
	swaggerkit.Mount(r, opt.EnableSwagger)

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m)
			m.MountRoutes(api)
		}
	})

	// unversioned /auth/{platform} kept for existing clients
	r.Group(func(legacy httpkit.Router) {
		legacy.Use(httpkit.CommonStack()...)
		verify.MountRoutes(legacy)
	})

	deps.Logger().Info().
		Bool("swagger", opt.EnableSwagger).
		Dur("request_timeout", opt.RequestTimeout).
		Int("modules", len(mods)).
		Msg("api mounted")
}
