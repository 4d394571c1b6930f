package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cpauth/internal/modkit"
	"cpauth/internal/modkit/module"
	"cpauth/internal/platform/config"
	phttp "cpauth/internal/platform/net/http"
	"cpauth/internal/services/verify/domain"
	verifymod "cpauth/internal/services/verify/module"
	"cpauth/internal/services/verify/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	title := domain.VerifierFunc(func(context.Context, string) (domain.Candidates, error) {
		return domain.Candidates{"code123 - user - CodeChef"}, nil
	})
	svc := service.New(map[domain.Platform]domain.Verifier{
		domain.CodeChef:   title,
		domain.LeetCode:   title,
		domain.Codeforces: title,
	})

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), Options{
		Config:         config.New().Prefix("CPAUTH_TEST_"),
		EnableSwagger:  true,
		RequestTimeout: 5 * time.Second,
		CORSOrigins:    []string{"https://app.example"},
		Verify:         verifymod.WithService(modkit.Deps{}, svc),
	})
	return m
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestBanner(t *testing.T) {
	rr := do(newAPI(t), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, Banner, rr.Body.String())
}

func TestVerifyRoutes(t *testing.T) {
	h := newAPI(t)
	for _, prefix := range []string{"/api/v1/auth/", "/auth/"} {
		for _, p := range domain.AllPlatforms() {
			ok := do(h, http.MethodPost, prefix+p.String(), `{"username":"user","code":"code123"}`)
			require.Equal(t, http.StatusOK, ok.Code, "%s%s: %s", prefix, p, ok.Body.String())
			require.NotEmpty(t, ok.Header().Get("X-Request-ID"))

			no := do(h, http.MethodPost, prefix+p.String(), `{"username":"user","code":"nope"}`)
			require.Equal(t, http.StatusUnauthorized, no.Code)
		}
	}
	require.Equal(t, http.StatusOK, do(h, http.MethodGet, "/api/v1/auth/platforms", "").Code)
}

func TestMetaReadySeesVerify(t *testing.T) {
	rr := do(newAPI(t), http.MethodGet, "/api/v1/meta/ready", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":"ok"`)
	require.Contains(t, rr.Body.String(), "verifier:codeforces")
}

func TestSwaggerDocs(t *testing.T) {
	rr := do(newAPI(t), http.MethodGet, "/api/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "/auth/{platform}")
	require.Contains(t, rr.Body.String(), "rejected before any platform call")
}

func TestHandleWithForeignCharactersIsBadRequest(t *testing.T) {
	rr := do(newAPI(t), http.MethodPost, "/api/v1/auth/codechef", `{"username":"user name","code":"code123"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
	require.Contains(t, rr.Body.String(), "username")
}

func TestCORSPreflight(t *testing.T) {
	h := newAPI(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/codechef", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("CPAUTH_API_REQUEST_TIMEOUT", "3s")
	t.Setenv("CPAUTH_API_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CPAUTH_API_SWAGGER", "false")

	root := config.New().Prefix("CPAUTH_")
	o := OptionsFromConfig(root, root.Prefix("API_"))
	require.Equal(t, 3*time.Second, o.RequestTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, o.CORSOrigins)
	require.False(t, o.EnableSwagger)
}
