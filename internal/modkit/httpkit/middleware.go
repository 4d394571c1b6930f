package httpkit

import (
	"net/http"

	"cpauth/internal/platform/net/middleware"
)

// CommonStack is the per API scope middleware; the root stack lives in middleware.Defaults
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AllowContentType("application/json"),
	}
}
