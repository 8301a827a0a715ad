package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type BotService interface {
	SelectMove(game *entity.Game) (entity.Move, error)
}

type botService struct {
	mu         sync.Mutex
	strategies map[entity.Difficulty]Strategy
}

// NewBotService - builds the three computer opponents on one seeded random source.
func NewBotService(rng *rand.Rand) BotService {
	strategies := make(map[entity.Difficulty]Strategy, 3)
	for _, difficulty := range []entity.Difficulty{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard} {
		strategy, err := NewStrategy(difficulty, rng)
		if err != nil {
			panic(err)
		}

		strategies[difficulty] = strategy
	}

	return &botService{
		strategies: strategies,
	}
}

// SelectMove - picks the computer's move. The game is not modified; the
// caller applies the move like any other.
func (that *botService) SelectMove(game *entity.Game) (entity.Move, error) {
	if !game.HasComputer() {
		return entity.Move{}, apperror.ErrNoDifficulty
	}

	if game.IsResolved() {
		return entity.Move{}, apperror.ErrGameAlreadyResolved
	}

	if !game.IsComputerTurn() {
		return entity.Move{}, apperror.ErrNotComputerTurn
	}

	strategy, ok := that.strategies[game.Difficulty]
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, game.Difficulty)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return strategy.Select(game), nil
}
