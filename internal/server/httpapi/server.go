// Package httpapi exposes the GardenKeeper REST API over chi.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gardenkeeper/internal/logging"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/services"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/validation"
	"github.com/go-chi/chi/v5"
)

// Services groups the application services the handlers call.
type Services struct {
	Users   *services.UserService
	Auth    *services.AuthService
	Crops   *services.CropService
	Journal *services.JournalService
}

// Options tunes the HTTP layer.
type Options struct {
	// CORSAllowedOrigins are passed to the CORS middleware.
	CORSAllowedOrigins []string
	// AuthRateLimit is the per-IP request budget per minute on /api/auth; 0 disables it.
	AuthRateLimit int
	// ShutdownTimeout bounds the graceful stop once the run context is cancelled.
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	store   repomanager.RepositoryManager
	svc     Services
	opts    Options
	metrics *Metrics
	router  chi.Router

	signupRules        validation.Validator
	cropCreateRules    validation.Validator
	cropUpdateRules    validation.Validator
	journalCreateRules validation.Validator
	journalUpdateRules validation.Validator
}

func NewHTTPServer(address string, l logging.Logger, store repomanager.RepositoryManager, svc Services, opts Options) *HTTPServer {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	s := &HTTPServer{
		address: address,
		logger:  l.With("module", "http_server"),
		store:   store,
		svc:     svc,
		opts:    opts,
		metrics: NewMetrics(),
	}
	s.buildRules()
	s.router = s.routes()
	return s
}

// Handler returns the fully assembled router.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
