package entity

import (
	"fmt"
	"time"
)

// Difficulty selects the computer opponent. DifficultyNone means two humans.
type Difficulty string

const (
	DifficultyNone   Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (that Difficulty) Valid() bool {
	switch that {
	case DifficultyNone, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Winner is the final result of a resolved game.
type Winner uint8

const (
	WinnerX Winner = iota + 1
	WinnerO
	WinnerDraw
)

func (that Winner) String() string {
	switch that {
	case WinnerX:
		return "X"
	case WinnerO:
		return "O"
	case WinnerDraw:
		return "draw"
	default:
		return ""
	}
}

// Player - returns the winning side, false for a draw.
func (that Winner) Player() (Player, bool) {
	switch that {
	case WinnerX:
		return PlayerX, true
	case WinnerO:
		return PlayerO, true
	default:
		return PlayerNone, false
	}
}

// Move addresses one cell: the sub-board on the meta grid, then the cell inside it.
type Move struct {
	SubRow  int `json:"sub_row"`
	SubCol  int `json:"sub_col"`
	CellRow int `json:"cell_row"`
	CellCol int `json:"cell_col"`
}

func (that Move) Board() Coord {
	return Coord{Row: that.SubRow, Col: that.SubCol}
}

func (that Move) Cell() Coord {
	return Coord{Row: that.CellRow, Col: that.CellCol}
}

func (that Move) InBounds() bool {
	return that.Board().InBounds() && that.Cell().InBounds()
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", that.SubRow, that.SubCol, that.CellRow, that.CellCol)
}

// Game is the full state of one ultimate tic-tac-toe match.
type Game struct {
	ID     string         `json:"id"`
	Boards [3][3]SubBoard `json:"boards"`
	// Status is the meta resolution; StatusDrawn is an overall draw.
	Status BoardStatus `json:"status"`
	// Forced is the sub-board the next mover must play in; nil means free choice.
	// The pointee is never written after assignment.
	Forced     *Coord    `json:"forced,omitempty"`
	Turn       Player    `json:"turn"`
	MoveCount  int       `json:"move_count"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Difficulty Difficulty `json:"difficulty,omitempty"`
	Computer   Player     `json:"computer,omitempty"`
	Username   string     `json:"username,omitempty"`
	Score      int        `json:"score"`
	Epoch      uint64     `json:"epoch"`
}

func (that *Game) Board(c Coord) *SubBoard {
	return &that.Boards[c.Row][c.Col]
}

func (that *Game) IsResolved() bool {
	return that.Status.IsResolved()
}

// HasComputer - reports whether one side is played by the computer.
func (that *Game) HasComputer() bool {
	return that.Difficulty != DifficultyNone && that.Computer.Valid()
}

// IsComputerTurn - reports whether the computer is due to move.
func (that *Game) IsComputerTurn() bool {
	return that.HasComputer() && !that.IsResolved() && that.Turn == that.Computer
}

// Human - returns the side the score is attributed to.
func (that *Game) Human() Player {
	if that.HasComputer() {
		return that.Computer.Opponent()
	}

	return PlayerNone
}

// Statuses - returns the meta grid of sub-board statuses.
func (that *Game) Statuses() [3][3]BoardStatus {
	var grid [3][3]BoardStatus
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			grid[r][c] = that.Boards[r][c].Status
		}
	}

	return grid
}
