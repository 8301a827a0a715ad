package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// NewGame - returns a fresh game: every sub-board open, free choice, X to move.
// With a difficulty set and no valid computer side, the computer plays O.
func NewGame(id string, difficulty entity.Difficulty, computer entity.Player, username string) *entity.Game {
	if difficulty == entity.DifficultyNone {
		computer = entity.PlayerNone
	} else if !computer.Valid() {
		computer = entity.PlayerO
	}

	return &entity.Game{
		ID:         id,
		Status:     entity.StatusOpen,
		Turn:       entity.PlayerX,
		Difficulty: difficulty,
		Computer:   computer,
		Username:   username,
	}
}

// Reset - returns a fresh game with the same identity and opponent settings.
// The epoch moves forward so events scheduled against the old state can be dropped.
func Reset(game *entity.Game) *entity.Game {
	fresh := NewGame(game.ID, game.Difficulty, game.Computer, game.Username)
	fresh.Epoch = game.Epoch + 1

	return fresh
}

// Validate - checks if player may make the move right now.
func Validate(game *entity.Game, move entity.Move, player entity.Player) error {
	if !move.InBounds() {
		return apperror.ErrInvalidCell
	}

	if game.Turn != player {
		return apperror.ErrWrongTurn
	}

	if game.IsResolved() {
		return apperror.ErrGameAlreadyResolved
	}

	if game.Forced != nil && *game.Forced != move.Board() {
		return apperror.ErrWrongSubBoard
	}

	board := game.Board(move.Board())
	if board.Status.IsResolved() {
		return apperror.ErrSubBoardResolved
	}

	if !board.Cells[move.CellRow][move.CellCol].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// ApplyMove - places player's mark and advances the game. A rejected move
// leaves the game untouched.
func ApplyMove(game *entity.Game, move entity.Move, player entity.Player, now time.Time) error {
	if err := Validate(game, move, player); err != nil {
		return fmt.Errorf("invalid move %s: %w", move, err)
	}

	if game.StartedAt.IsZero() {
		game.StartedAt = now
	}

	board := game.Board(move.Board())
	board.Cells[move.CellRow][move.CellCol] = entity.Mark(player)
	board.Status = ResolveBoard(board.Cells)
	game.MoveCount++

	updateGameStatus(game, move, now)
	game.Turn = player.Opponent()

	return nil
}

// SkipTurn - hands the turn to the opponent without placing a mark.
func SkipTurn(game *entity.Game, player entity.Player) error {
	if game.Turn != player {
		return apperror.ErrWrongTurn
	}

	if game.IsResolved() {
		return apperror.ErrGameAlreadyResolved
	}

	game.Turn = player.Opponent()

	return nil
}

// LegalMoves - lists every move the side to move may make, in row-major order.
func LegalMoves(game *entity.Game) []entity.Move {
	if game.IsResolved() {
		return nil
	}

	moves := make([]entity.Move, 0, 81)
	for sr := 0; sr < 3; sr++ {
		for sc := 0; sc < 3; sc++ {
			boardCoord := entity.Coord{Row: sr, Col: sc}
			if game.Forced != nil && *game.Forced != boardCoord {
				continue
			}

			board := game.Board(boardCoord)
			if board.Status.IsResolved() {
				continue
			}

			for cr := 0; cr < 3; cr++ {
				for cc := 0; cc < 3; cc++ {
					if board.Cells[cr][cc].IsEmpty() {
						moves = append(moves, entity.Move{SubRow: sr, SubCol: sc, CellRow: cr, CellCol: cc})
					}
				}
			}
		}
	}

	return moves
}

// Outcome - returns the result of a resolved game, false while it is in progress.
func Outcome(game *entity.Game) (entity.Winner, bool) {
	switch game.Status {
	case entity.StatusWonX:
		return entity.WinnerX, true
	case entity.StatusWonO:
		return entity.WinnerO, true
	case entity.StatusDrawn:
		return entity.WinnerDraw, true
	default:
		return 0, false
	}
}

// updateGameStatus - resolves the meta grid and derives the next forced sub-board.
func updateGameStatus(game *entity.Game, move entity.Move, now time.Time) {
	game.Status = ResolveMeta(game.Statuses())

	if game.IsResolved() {
		game.Forced = nil
		game.FinishedAt = now
		return
	}

	target := move.Cell()
	if game.Board(target).Status.IsResolved() {
		game.Forced = nil
		return
	}

	game.Forced = &target
}
