package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	modkit "cpauth/internal/modkit"
	"cpauth/internal/platform/config"
	phttp "cpauth/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestMetaModuleMounts(t *testing.T) {
	t.Setenv("CPAUTH_SERVICE_NAME", "cpauth-test")

	mod := New(modkit.Deps{Cfg: config.New().Prefix("CPAUTH_")})
	require.Equal(t, "meta", mod.Name())
	require.Equal(t, "/meta", mod.Prefix())
	require.Nil(t, mod.Ports())

	m := chi.NewRouter()
	mod.MountRoutes(phttp.AdaptChi(m))
	for _, p := range []string{"/meta/health", "/meta/ready", "/meta/version", "/meta/service"} {
		rr := httptest.NewRecorder()
		m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, p, nil))
		require.Equal(t, http.StatusOK, rr.Code, p)
		require.Contains(t, rr.Body.String(), `"status_code":200`)
	}

	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	require.Contains(t, rr.Body.String(), "cpauth-test")
}
