package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter - wires the read-only game routes and the leaderboard.
func NewRouter(h Handlers) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", h.PingHandler)

	router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.GetGame)
		r.Get("/moves", h.GetLegalMoves)
	})

	router.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", h.GetLeaderboard)
		r.Delete("/", h.ClearLeaderboard)
		r.Get("/usernames", h.GetUsernames)
	})

	return router
}

// Start - serves h on port until ctx is done.
func Start(ctx context.Context, logger *slog.Logger, port string, h Handlers) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
