package entity

import "fmt"

// Player is one of the two sides. The zero value means "nobody".
type Player uint8

const (
	PlayerNone Player = iota
	PlayerX
	PlayerO
)

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (that Player) Valid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// ParsePlayer - parses "X", "O" or "" into a Player.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	case "":
		return PlayerNone, nil
	default:
		return PlayerNone, fmt.Errorf("unknown player %q", s)
	}
}

// Cell is a single square: empty or marked by a player.
type Cell uint8

const CellEmpty Cell = 0

// Mark - returns the cell holding p's mark.
func Mark(p Player) Cell {
	return Cell(p)
}

// Player - returns the owner of the mark, false for an empty cell.
func (that Cell) Player() (Player, bool) {
	p := Player(that)
	return p, p.Valid()
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

func (that Cell) MarshalText() ([]byte, error) {
	return Player(that).MarshalText()
}

func (that *Cell) UnmarshalText(text []byte) error {
	var p Player
	if err := p.UnmarshalText(text); err != nil {
		return err
	}

	*that = Mark(p)

	return nil
}
