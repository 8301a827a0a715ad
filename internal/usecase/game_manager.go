package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type leaderboardRepo interface {
	Add(ctx context.Context, entry entity.ScoreEntry) error
	Top(ctx context.Context, limit int64) ([]entity.ScoreEntry, error)
	Usernames(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type botService interface {
	SelectMove(game *entity.Game) (entity.Move, error)
}

// GameManager owns the stored games. Every state change bumps the game's
// epoch, so a timer armed against an older epoch is rejected with
// apperror.ErrStaleEvent.
type GameManager struct {
	logger *slog.Logger

	gameRepo        gameRepo
	leaderboardRepo leaderboardRepo
	bot             botService

	scores          tictactoe.ScoreTable
	leaderboardSize int64

	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

func NewGameManager(
	logger *slog.Logger,
	gameRepo gameRepo,
	leaderboardRepo leaderboardRepo,
	bot botService,
	scores tictactoe.ScoreTable,
	leaderboardSize int64,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:        gameRepo,
		leaderboardRepo: leaderboardRepo,
		bot:             bot,

		scores:          scores,
		leaderboardSize: leaderboardSize,

		now:   time.Now,
		newID: uuid.NewString,
	}
}

// StartGame - creates and stores a fresh game. An empty difficulty starts a
// game between two humans.
func (that *GameManager) StartGame(ctx context.Context, difficulty entity.Difficulty, computer entity.Player, username string) (*entity.Game, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	game := tictactoe.NewGame(that.newID(), difficulty, computer, username)
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Debug("game started", "game_id", game.ID, "difficulty", difficulty, "computer", game.Computer)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies a move for player. A rejected move leaves the stored game
// untouched and returns it together with the rejection.
func (that *GameManager) MakeTurn(ctx context.Context, id string, player entity.Player, move entity.Move) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.ApplyMove(game, move, player, that.now()); err != nil {
		return game, err
	}

	if err = that.commit(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// ComputerTurn - lets the computer move if the game is still at epoch.
func (that *GameManager) ComputerTurn(ctx context.Context, id string, epoch uint64) (*entity.Game, error) {
	log := that.logger.With("method", "ComputerTurn", "game_id", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadAt(ctx, id, epoch)
	if err != nil {
		return nil, err
	}

	move, err := that.bot.SelectMove(game)
	if err != nil {
		return game, fmt.Errorf("failed to select computer move: %w", err)
	}

	if err = tictactoe.ApplyMove(game, move, game.Computer, that.now()); err != nil {
		log.Error("computer picked an illegal move", "move", move.String(), "error", err)
		return nil, fmt.Errorf("failed to apply computer move: %w", err)
	}

	if err = that.commit(ctx, game); err != nil {
		return nil, err
	}

	log.Debug("computer moved", "move", move.String())

	return game, nil
}

// ExpireTurn - passes player's turn when its countdown runs out at epoch.
func (that *GameManager) ExpireTurn(ctx context.Context, id string, epoch uint64, player entity.Player) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadAt(ctx, id, epoch)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.SkipTurn(game, player); err != nil {
		return game, err
	}

	if err = that.commit(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Debug("turn expired", "game_id", id, "player", player)

	return game, nil
}

// ResetGame - starts the game over with the same id and opponent settings.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	fresh := tictactoe.Reset(game)
	if err = that.gameRepo.CreateOrUpdate(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return fresh, nil
}

func (that *GameManager) LegalMoves(ctx context.Context, id string) ([]entity.Move, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return tictactoe.LegalMoves(game), nil
}

func (that *GameManager) Leaderboard(ctx context.Context) ([]entity.ScoreEntry, error) {
	entries, err := that.leaderboardRepo.Top(ctx, that.leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}

func (that *GameManager) Usernames(ctx context.Context) ([]string, error) {
	names, err := that.leaderboardRepo.Usernames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get usernames: %w", err)
	}

	return names, nil
}

func (that *GameManager) ClearLeaderboard(ctx context.Context) error {
	if err := that.leaderboardRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	return nil
}

func (that *GameManager) loadAt(ctx context.Context, id string, epoch uint64) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.Epoch != epoch {
		return nil, fmt.Errorf("%w: game %s is at epoch %d, event was for %d", apperror.ErrStaleEvent, id, game.Epoch, epoch)
	}

	return game, nil
}

// commit - bumps the epoch, scores a finished game and saves it.
func (that *GameManager) commit(ctx context.Context, game *entity.Game) error {
	game.Epoch++

	if game.IsResolved() {
		that.finish(ctx, game)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) finish(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finish", "game_id", game.ID)

	game.Score = tictactoe.FinalScore(game, that.scores, that.now())

	winner, _ := tictactoe.Outcome(game)
	log.Info("game finished", "winner", winner.String(), "score", game.Score, "moves", game.MoveCount)

	if game.Score <= 0 || game.Username == "" {
		return
	}

	entry := entity.ScoreEntry{Username: game.Username, Score: game.Score}
	if err := that.leaderboardRepo.Add(ctx, entry); err != nil {
		log.Error("failed to record score", "username", game.Username, "error", err)
	}
}
