package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"cpauth/internal/platform/config"
	phttp "cpauth/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestServerRunServesAndStopsOnCancel(t *testing.T) {
	t.Setenv("SRV_PORT", "127.0.0.1:0")
	t.Setenv("SRV_SHUTDOWN_GRACE", "1s")

	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("SRV_"), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}

	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", func(sub phttp.Router) {
		sub.Group(func(g phttp.Router) {
			g.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
		})
		sub.Post("/echo", func(w http.ResponseWriter, req *http.Request) { _, _ = io.Copy(w, req.Body) })
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.Ready():
	case <-time.After(2 * time.Second):
		t.Fatalf("server did not bind")
	}

	resp, err := http.Get("http://" + srv.Addr() + "/api/ping")
	if err != nil {
		t.Fatalf("GET /api/ping: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" || resp.Header.Get("X-MW") != "1" {
		t.Fatalf("unexpected response %q mw=%q", body, resp.Header.Get("X-MW"))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil after cancel", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
}

func TestServerRunBadAddr(t *testing.T) {
	t.Setenv("BAD_PORT", "256.0.0.1:99999")
	srv := phttp.NewServer(config.New().Prefix("BAD_"))
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
	if srv.Addr() != "256.0.0.1:99999" {
		t.Fatalf("Addr should fall back to configured value, got %q", srv.Addr())
	}
}
