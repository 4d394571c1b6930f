// Package module wires verification into the API using modkit
package module

import (
	"cpauth/internal/adapters/platforms"
	"cpauth/internal/adapters/platforms/codechef"
	"cpauth/internal/adapters/platforms/codeforces"
	"cpauth/internal/adapters/platforms/leetcode"
	"cpauth/internal/adapters/scrape"
	modkit "cpauth/internal/modkit"
	"cpauth/internal/modkit/httpkit"
	"cpauth/internal/services/verify/domain"
	verifyhttp "cpauth/internal/services/verify/http"
	"cpauth/internal/services/verify/service"
)

// Ports exposed by the verify module
type Ports struct {
	Service domain.ServicePort
}

// Module implements the verify module
type Module struct {
	deps  modkit.Deps
	b     modkit.Built
	svc   service.Service
	ports Ports
}

// NewService builds the dispatcher with the production verifiers sharing one client
func NewService(o platforms.Options) *service.Svc {
	o = o.WithDefaults()
	client := platforms.NewClient(o)
	return service.New(map[domain.Platform]domain.Verifier{
		domain.CodeChef:   codechef.New(o.CodeChefBaseURL, scrape.New(client)),
		domain.LeetCode:   leetcode.New(o.LeetCodeGraphQLURL, client),
		domain.Codeforces: codeforces.New(o.CodeforcesAPIURL, client),
	})
}

// New constructs the verify module from deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	o := FromConfig(deps.Cfg)
	return WithService(deps, NewService(o.Platforms), opts...)
}

// WithService constructs the verify module around an existing service
func WithService(deps modkit.Deps, s service.Service, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{modkit.WithName("verify"), modkit.WithPrefix("/auth")}, opts...)
	m := &Module{deps: deps, b: b, svc: s}
	m.ports = Ports{Service: s}

	deps.Logger().Info().
		Str("module", b.Name).
		Str("prefix", b.Prefix).
		Interface("platforms", s.Platforms()).
		Msg("verify module ready")
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { verifyhttp.Register(sub, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
