package apperror

import "errors"

// Move rejections. A rejected move never changes the game.
var (
	ErrWrongTurn           = errors.New("it's not your turn")
	ErrGameAlreadyResolved = errors.New("game is already resolved")
	ErrWrongSubBoard       = errors.New("move must be played in the forced sub-board")
	ErrSubBoardResolved    = errors.New("sub-board is already resolved")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrInvalidCell         = errors.New("invalid cell index")
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrNotComputerTurn   = errors.New("it's not the computer's turn")
	ErrNoDifficulty      = errors.New("game has no computer opponent")
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	ErrStaleEvent        = errors.New("event belongs to a previous game state")
)

var reasons = []struct {
	err  error
	code string
}{
	{ErrWrongTurn, "wrong_turn"},
	{ErrGameAlreadyResolved, "game_already_resolved"},
	{ErrWrongSubBoard, "wrong_sub_board"},
	{ErrSubBoardResolved, "sub_board_resolved"},
	{ErrCellOccupied, "cell_occupied"},
	{ErrInvalidCell, "invalid_cell"},
	{ErrGameNotFound, "game_not_found"},
	{ErrNotComputerTurn, "not_computer_turn"},
	{ErrNoDifficulty, "no_difficulty"},
	{ErrInvalidDifficulty, "invalid_difficulty"},
	{ErrStaleEvent, "stale_event"},
}

// Reason - returns a stable code for a known error, "internal" otherwise.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.code
		}
	}

	return "internal"
}

// IsRejection - reports whether err is a refused move rather than a failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrWrongTurn) ||
		errors.Is(err, ErrGameAlreadyResolved) ||
		errors.Is(err, ErrWrongSubBoard) ||
		errors.Is(err, ErrSubBoardResolved) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidCell)
}
