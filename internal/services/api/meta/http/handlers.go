// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"cpauth/internal/core/version"
	"cpauth/internal/modkit/httpkit"
	"cpauth/internal/services/verify/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Verifier resolves the verification port at request time; nil or !ok means not wired
	Verifier func() (domain.ServicePort, bool)
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"cpauth-api"`
	Started string `json:"started"  example:"2026-10-16T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-16T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"verifier:codechef"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"verify module not registered"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-16T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"cpauth-api"`
	Started string `json:"started" example:"2026-10-16T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with the registered verifiers
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	out := ReadyResponse{Status: "ok", Now: time.Now().UTC().Format(time.RFC3339)}

	var port domain.ServicePort
	ok := false
	if h.deps.Verifier != nil {
		port, ok = h.deps.Verifier()
	}
	if !ok {
		out.Status = "fail"
		out.Checks = []ReadyCheck{{Name: "verify", Status: "fail", Error: "verify module not registered"}}
		return out, nil
	}

	for _, p := range port.Platforms() {
		out.Checks = append(out.Checks, ReadyCheck{Name: "verifier:" + p.String(), Status: "ok"})
	}
	if len(out.Checks) == 0 {
		out.Status = "fail"
		out.Checks = []ReadyCheck{{Name: "verify", Status: "fail", Error: "no verifiers registered"}}
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
