package httpkit_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpauth/internal/modkit/httpkit"
	perr "cpauth/internal/platform/errors"
	phttp "cpauth/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type in struct {
	Name string `json:"name" validate:"required"`
}

func newRouter() (*chi.Mux, httpkit.Router) {
	m := chi.NewRouter()
	return m, phttp.AdaptChi(m)
}

func serve(h http.Handler, method, path, body string, ct string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestMountAPIV1WithSugar(t *testing.T) {
	m, r := newRouter()
	var mwHits int
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			mwHits++
			next.ServeHTTP(w, req)
		})
	}

	httpkit.MountAPIV1(r, []func(http.Handler) http.Handler{mw}, func(api httpkit.Router) {
		httpkit.Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		httpkit.PostJSON(api, "/echo", func(_ *http.Request, v in) (any, error) { return v.Name, nil })
		httpkit.Get(api, "/deny", func(*http.Request) (any, error) {
			return nil, perr.Unauthorizedf("authentication failed")
		})
	})

	if rr := serve(m, http.MethodGet, "/api/v1/ping", "", ""); rr.Code != 200 {
		t.Fatalf("GET ping = %d", rr.Code)
	}
	if rr := serve(m, http.MethodPost, "/api/v1/echo", `{"name":"x"}`, "application/json"); rr.Code != 200 {
		t.Fatalf("POST echo = %d", rr.Code)
	}
	if rr := serve(m, http.MethodPost, "/api/v1/echo", `{}`, "application/json"); rr.Code != 400 {
		t.Fatalf("POST echo invalid = %d, want 400", rr.Code)
	}
	if rr := serve(m, http.MethodGet, "/api/v1/deny", "", ""); rr.Code != 401 {
		t.Fatalf("GET deny = %d, want 401", rr.Code)
	}
	if mwHits != 4 {
		t.Fatalf("scope middleware hits = %d, want 4", mwHits)
	}
	if rr := serve(m, http.MethodGet, "/ping", "", ""); rr.Code != 404 {
		t.Fatalf("unversioned path should not exist, got %d", rr.Code)
	}
}

func TestMountAPITrimsVersionSlashes(t *testing.T) {
	m, r := newRouter()
	httpkit.MountAPI(r, "/v2/", nil, func(api httpkit.Router) {
		httpkit.Get(api, "/x", func(*http.Request) (any, error) { return 1, nil })
	})
	if rr := serve(m, http.MethodGet, "/api/v2/x", "", ""); rr.Code != 200 {
		t.Fatalf("GET /api/v2/x = %d", rr.Code)
	}
}

func TestCommonStackRejectsNonJSONBodies(t *testing.T) {
	m, r := newRouter()
	httpkit.MountUnder(r, "/auth", httpkit.CommonStack(), func(sub httpkit.Router) {
		httpkit.PostJSON(sub, "/x", func(_ *http.Request, v in) (any, error) { return v.Name, nil })
	})

	if rr := serve(m, http.MethodPost, "/auth/x", `{"name":"a"}`, "text/plain"); rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("text/plain body = %d, want 415", rr.Code)
	}
	if rr := serve(m, http.MethodPost, "/auth/x", `{"name":"a"}`, "application/json; charset=utf-8"); rr.Code != 200 {
		t.Fatalf("json body = %d, want 200", rr.Code)
	}
}
