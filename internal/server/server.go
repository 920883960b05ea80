// Package server exposes the study, quiz and dashboard services as a
// JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sparklearn/internal/auth"
	"github.com/abhisek/sparklearn/internal/dashboard"
	"github.com/abhisek/sparklearn/internal/logger"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/study"
)

// Deps are the services behind the API.
type Deps struct {
	Study       *study.Service
	Quiz        *quiz.Service
	Dashboard   *dashboard.Service
	Tokens      *auth.Tokens
	Log         *logger.Logger
	CORSOrigins []string
}

type Server struct {
	Engine *gin.Engine
	log    *logger.Logger
}

func New(d Deps) *Server {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &Server{Engine: NewRouter(d), log: d.Log}
}

// Run serves on addr until ctx is done, then drains in-flight requests
// for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Engine,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// Weekly plans with retries can take minutes.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
