package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// WinCombos lists the eight lines of a 3x3 grid: rows, columns, then the
// main and anti diagonal. The order decides which line is reported first.
var WinCombos = [8][3]entity.Coord{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// CheckLines - returns the symbol filling a complete line of grid. Cells equal
// to empty never match. Draw detection is left to the caller.
func CheckLines[S comparable](grid [3][3]S, empty S) (S, bool) {
	for _, combo := range WinCombos {
		a := grid[combo[0].Row][combo[0].Col]
		b := grid[combo[1].Row][combo[1].Col]
		c := grid[combo[2].Row][combo[2].Col]

		if a != empty && a == b && b == c {
			return a, true
		}
	}

	return empty, false
}

// MetaGrid - projects sub-board statuses onto marks: a won board becomes its
// winner's mark, open and drawn boards stay empty.
func MetaGrid(statuses [3][3]entity.BoardStatus) [3][3]entity.Cell {
	var grid [3][3]entity.Cell
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if winner, ok := statuses[r][c].Winner(); ok {
				grid[r][c] = entity.Mark(winner)
			}
		}
	}

	return grid
}

// ResolveBoard - returns the status of a sub-board with the given cells.
func ResolveBoard(cells [3][3]entity.Cell) entity.BoardStatus {
	if mark, ok := CheckLines(cells, entity.CellEmpty); ok {
		winner, _ := mark.Player()
		return entity.WonBy(winner)
	}

	board := entity.SubBoard{Cells: cells}
	if board.IsFull() {
		return entity.StatusDrawn
	}

	return entity.StatusOpen
}

// ResolveMeta - returns the overall status for the given sub-board statuses.
func ResolveMeta(statuses [3][3]entity.BoardStatus) entity.BoardStatus {
	if mark, ok := CheckLines(MetaGrid(statuses), entity.CellEmpty); ok {
		winner, _ := mark.Player()
		return entity.WonBy(winner)
	}

	for _, row := range statuses {
		for _, status := range row {
			if !status.IsResolved() {
				return entity.StatusOpen
			}
		}
	}

	return entity.StatusDrawn
}
