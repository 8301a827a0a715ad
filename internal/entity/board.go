package entity

import "fmt"

// BoardStatus is the resolution of a sub-board or of the whole game.
type BoardStatus uint8

const (
	StatusOpen BoardStatus = iota
	StatusWonX
	StatusWonO
	StatusDrawn
)

var statusNames = map[BoardStatus]string{
	StatusOpen:  "open",
	StatusWonX:  "won_x",
	StatusWonO:  "won_o",
	StatusDrawn: "drawn",
}

// WonBy - returns the status of a board won by p.
func WonBy(p Player) BoardStatus {
	switch p {
	case PlayerX:
		return StatusWonX
	case PlayerO:
		return StatusWonO
	default:
		return StatusOpen
	}
}

// Winner - returns the player who won, false for open or drawn boards.
func (that BoardStatus) Winner() (Player, bool) {
	switch that {
	case StatusWonX:
		return PlayerX, true
	case StatusWonO:
		return PlayerO, true
	default:
		return PlayerNone, false
	}
}

func (that BoardStatus) IsResolved() bool {
	return that != StatusOpen
}

func (that BoardStatus) String() string {
	return statusNames[that]
}

func (that BoardStatus) MarshalText() ([]byte, error) {
	name, ok := statusNames[that]
	if !ok {
		return nil, fmt.Errorf("unknown board status %d", that)
	}

	return []byte(name), nil
}

func (that *BoardStatus) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*that = status
			return nil
		}
	}

	return fmt.Errorf("unknown board status %q", text)
}

// Coord addresses a sub-board on the meta grid or a cell inside a sub-board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) InBounds() bool {
	return that.Row >= 0 && that.Row < 3 && that.Col >= 0 && that.Col < 3
}

func (that Coord) IsCenter() bool {
	return that.Row == 1 && that.Col == 1
}

// SubBoard is one of the nine local 3x3 boards.
type SubBoard struct {
	Cells  [3][3]Cell  `json:"cells"`
	Status BoardStatus `json:"status"`
}

// Filled - returns the number of marked cells.
func (that *SubBoard) Filled() int {
	n := 0
	for _, row := range that.Cells {
		for _, cell := range row {
			if !cell.IsEmpty() {
				n++
			}
		}
	}

	return n
}

func (that *SubBoard) IsFull() bool {
	return that.Filled() == 9
}
