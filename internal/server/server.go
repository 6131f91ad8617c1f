package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/internhub/internhub/internal/bootstrap"
	"github.com/internhub/internhub/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server lifecycle
type Server struct {
	app        *bootstrap.Application
	httpServer *http.Server
}

// New creates a Server for an initialized application. The router is
// wrapped with CORS since the SPA is served from another origin.
func New(app *bootstrap.Application) *Server {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   app.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return &Server{
		app: app,
		httpServer: &http.Server{
			Addr:         ":" + app.Config.Server.Port,
			Handler:      corsHandler.Handler(app.Router),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully and closes the database pool.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.app.DB.Close()
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.app.DB.Close()
		return err
	}

	s.app.DB.Close()
	logger.Info().Msg("Server stopped")

	return nil
}
