package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

// Strategy picks a move for the side to move. Select never writes to the
// game and panics if the game offers no legal move, which the state machine
// rules out while the game is in progress. Implementations share their
// random source and are not safe for concurrent use.
type Strategy interface {
	Select(game *entity.Game) entity.Move
}

// NewStrategy - returns the computer opponent for difficulty.
func NewStrategy(difficulty entity.Difficulty, rng *rand.Rand) (Strategy, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return &randomStrategy{rng: rng}, nil
	case entity.DifficultyMedium:
		return &mediumStrategy{rng: rng}, nil
	case entity.DifficultyHard:
		return &hardStrategy{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func legalMoves(game *entity.Game) []entity.Move {
	moves := tictactoe.LegalMoves(game)
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal move in game %q (status %s)", game.ID, game.Status))
	}

	return moves
}

func pick(rng *rand.Rand, moves []entity.Move) entity.Move {
	return moves[rng.Intn(len(moves))]
}

type randomStrategy struct {
	rng *rand.Rand
}

func (that *randomStrategy) Select(game *entity.Game) entity.Move {
	return pick(that.rng, legalMoves(game))
}

// mediumStrategy wins a sub-board when it can, blocks one otherwise, and
// falls back to a random move.
type mediumStrategy struct {
	rng *rand.Rand
}

func (that *mediumStrategy) Select(game *entity.Game) entity.Move {
	moves := legalMoves(game)
	me, opponent := game.Turn, game.Turn.Opponent()

	for _, move := range moves {
		if winsBoard(game, move, me) {
			return move
		}
	}

	for _, move := range moves {
		if winsBoard(game, move, opponent) {
			return move
		}
	}

	return pick(that.rng, moves)
}

// hardStrategy walks a fixed priority list; the first tier with candidates
// decides, ties broken at random.
type hardStrategy struct {
	rng *rand.Rand
}

func (that *hardStrategy) Select(game *entity.Game) entity.Move {
	moves := legalMoves(game)
	me, opponent := game.Turn, game.Turn.Opponent()

	tiers := []func(entity.Move) bool{
		func(m entity.Move) bool { return winsGame(game, m, me) },
		func(m entity.Move) bool { return winsGame(game, m, opponent) },
		func(m entity.Move) bool { return winsBoard(game, m, me) },
		func(m entity.Move) bool { return winsBoard(game, m, opponent) },
		func(m entity.Move) bool { return createsTwoInLine(game, m, me) },
		func(m entity.Move) bool { return createsTwoInLine(game, m, opponent) },
	}

	for _, tier := range tiers {
		if candidates := filterMoves(moves, tier); len(candidates) > 0 {
			return pick(that.rng, candidates)
		}
	}

	keepsOpponentForced := filterMoves(moves, func(m entity.Move) bool { return !sendsToResolved(game, m, me) })
	if len(keepsOpponentForced) > 0 {
		moves = keepsOpponentForced
	}

	if central := filterMoves(moves, isCentral); len(central) > 0 {
		return pick(that.rng, central)
	}

	return pick(that.rng, moves)
}
