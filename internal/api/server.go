package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, service *services.Service) *Server {
	handler := NewHandler(service)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.GetAddress(),
			Handler:      NewRouter(handler),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start blocks until the server is shut down, http.ErrServerClosed is not reported as an error
func (s *Server) Start() error {
	log.Info().Str("address", s.httpServer.Addr).Msg("Starting wallet risk checker server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
