package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/handler"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP server from handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	if w == nil {
		w = workers.NewWorkers()
	}
	servers.workers = w
	servers.logger = logger

	return servers, nil
}

// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received and the
// server has shut down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done or the HTTP server fails. Workers are stopped
// after the HTTP server so that requests finishing during shutdown can still
// hand work to them.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	workersDone := make(chan error, 1)
	go func(done chan<- error) {
		done <- s.workers.Run(workersCtx)
	}(workersDone)

	serveDone := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveDone <- s.httpServer.serve(ln)
	}()

	var serveErr error
loop:
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("shutdown signal received")
			s.Shutdown()
			serveErr = <-serveDone
			break loop
		case serveErr = <-serveDone:
			break loop
		case err = <-workersDone:
			workersDone = nil
			if err != nil {
				s.logger.Err(err).Msg("workers stopped unexpectedly")
				s.Shutdown()
				<-serveDone
				return err
			}
		}
	}

	stopWorkers()
	if workersDone != nil {
		if err = <-workersDone; err != nil {
			s.logger.Err(err).Msg("workers stopped with error")
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return serveErr
}
