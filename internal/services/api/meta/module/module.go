// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "cpauth/internal/modkit"
	"cpauth/internal/modkit/httpkit"
	"cpauth/internal/modkit/module"
	metahttp "cpauth/internal/services/api/meta/http"
	"cpauth/internal/services/verify/domain"
)

// ServiceName is reported by the meta endpoints unless overridden
const ServiceName = "cpauth-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	b         modkit.Built
	service   string
	startedAt time.Time
}

// New constructs a meta module; the verify port is resolved from the module registry
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)

	return &Module{
		deps:      deps,
		b:         b,
		service:   deps.Cfg.MayString("SERVICE_NAME", ServiceName),
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		metahttp.Register(sub, metahttp.Deps{
			ServiceName: m.service,
			StartedAt:   m.startedAt,
			Verifier:    func() (domain.ServicePort, bool) { return module.Lookup[domain.ServicePort]("verify") },
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
