package modkit

import (
	"net/http"

	"cpauth/internal/modkit/httpkit"
	"cpauth/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register attaches caller supplied endpoints; never nil
	Register func(httpkit.Router)
}

// Build applies Option funcs over defaults and returns a plain struct
func Build(defaults []Option, opts ...Option) Built {
	var c buildCfg
	for _, o := range append(append([]Option(nil), defaults...), opts...) {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     strings.MustString(c.name, "module name"),
		Prefix:   strings.MustPrefix(c.prefix),
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount mounts own under the module prefix with its middlewares, then the caller's extra routes
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		own(sub)
		b.Register(sub)
	})
}
