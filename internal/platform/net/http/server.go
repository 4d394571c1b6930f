package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	"cpauth/internal/platform/config"
	"cpauth/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server

	mu    sync.Mutex
	bound string
	ready chan struct{}
}

// NewServer reads PORT and SHUTDOWN_GRACE from cfg (already prefixed, e.g. CPAUTH_API_)
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		mux:   m,
		srv: &stdhttp.Server{
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ready: make(chan struct{}),
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the bound address once listening, otherwise the configured one
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != "" {
		return s.bound
	}
	return s.addr
}

// Ready is closed once the listener is bound
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Run listens and serves until ctx is cancelled, then drains in-flight requests
// for up to the configured grace period
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bound = ln.Addr().String()
	s.mu.Unlock()
	close(s.ready)

	log := logger.Named("http")
	log.Info().Str("addr", s.Addr()).Msg("http listening")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.grace)
		defer cancel()
		log.Info().Dur("grace", s.grace).Msg("http shutting down")
		return s.srv.Shutdown(sctx)
	})
	return g.Wait()
}
