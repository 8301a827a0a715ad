package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	GetGame(w http.ResponseWriter, r *http.Request)
	GetLegalMoves(w http.ResponseWriter, r *http.Request)

	GetLeaderboard(w http.ResponseWriter, r *http.Request)
	ClearLeaderboard(w http.ResponseWriter, r *http.Request)
	GetUsernames(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	LegalMoves(ctx context.Context, id string) ([]entity.Move, error)
	Leaderboard(ctx context.Context) ([]entity.ScoreEntry, error)
	Usernames(ctx context.Context) ([]string, error)
	ClearLeaderboard(ctx context.Context) error
}

type handlers struct {
	logger      *slog.Logger
	gameService gameService
}

func NewHandlers(logger *slog.Logger, gameService gameService) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameService: gameService,
	}
}

type gameResponse struct {
	Game   *entity.Game `json:"game"`
	Winner string       `json:"winner,omitempty"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameService.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	response := gameResponse{Game: game}
	if winner, ok := tictactoe.Outcome(game); ok {
		response.Winner = winner.String()
	}

	that.writeJSON(w, http.StatusOK, response)
}

func (that *handlers) GetLegalMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := that.gameService.LegalMoves(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	if moves == nil {
		moves = []entity.Move{}
	}

	that.writeJSON(w, http.StatusOK, moves)
}

func (that *handlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.gameService.Leaderboard(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	if entries == nil {
		entries = []entity.ScoreEntry{}
	}

	that.writeJSON(w, http.StatusOK, entries)
}

func (that *handlers) ClearLeaderboard(w http.ResponseWriter, r *http.Request) {
	if err := that.gameService.ClearLeaderboard(r.Context()); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) GetUsernames(w http.ResponseWriter, r *http.Request) {
	names, err := that.gameService.Usernames(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	if names == nil {
		names = []string{}
	}

	that.writeJSON(w, http.StatusOK, names)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, apperror.ErrGameNotFound) {
		status = http.StatusNotFound
	} else {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: http.StatusText(status), Reason: apperror.Reason(err)})
}
