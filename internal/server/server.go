package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/handlers"
	"dconn.dev/portfolio/internal/models"
	"dconn.dev/portfolio/internal/services"
)

// Server owns the HTTP listener and the session sweeper
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	views      *services.ViewService
	handler    http.Handler
	httpServer *http.Server
}

// New wires services and routes for cfg
func New(cfg *config.Config, logger *zap.Logger) *Server {
	projects := services.NewProjectService(models.SeedProjects())
	views := services.NewViewService(projects, cfg.Session.TTL, logger)

	handler := handlers.SetupRoutes(handlers.Deps{
		Config:   cfg,
		Logger:   logger,
		Projects: projects,
		Views:    views,
	})

	return &Server{
		cfg:     cfg,
		logger:  logger,
		views:   views,
		handler: handler,
		httpServer: &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address until ctx is done
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ServerAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.ServerAddr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		s.views.Run(sweepCtx, s.cfg.Session.SweepInterval)
	}()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Portfolio server listening", zap.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	var err error
	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		err = s.Shutdown()
		<-errCh
	}

	stopSweep()
	<-sweepDone
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down", zap.Int("sessions", s.views.Len()))
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
