package service

import (
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

// The helpers below answer "what if p played here" without writing to the
// game: boards and status grids are arrays and are taken by value.

// boardAfter - returns the status the sub-board would have after p marks cell.
func boardAfter(board entity.SubBoard, cell entity.Coord, p entity.Player) entity.BoardStatus {
	if board.Status.IsResolved() || !board.Cells[cell.Row][cell.Col].IsEmpty() {
		return board.Status
	}

	board.Cells[cell.Row][cell.Col] = entity.Mark(p)

	return tictactoe.ResolveBoard(board.Cells)
}

// winsBoard - reports whether the move would win its sub-board for p.
func winsBoard(game *entity.Game, move entity.Move, p entity.Player) bool {
	return boardAfter(*game.Board(move.Board()), move.Cell(), p) == entity.WonBy(p)
}

// winsGame - reports whether the move would win the whole game for p.
func winsGame(game *entity.Game, move entity.Move, p entity.Player) bool {
	if !winsBoard(game, move, p) {
		return false
	}

	statuses := game.Statuses()
	statuses[move.SubRow][move.SubCol] = entity.WonBy(p)

	mark, ok := tictactoe.CheckLines(tictactoe.MetaGrid(statuses), entity.CellEmpty)

	return ok && mark == entity.Mark(p)
}

// createsTwoInLine - reports whether winning the move's sub-board would give p
// a second won board on a meta line that holds exactly one today.
func createsTwoInLine(game *entity.Game, move entity.Move, p entity.Player) bool {
	if !winsBoard(game, move, p) {
		return false
	}

	statuses := game.Statuses()
	target := move.Board()
	for _, combo := range tictactoe.WinCombos {
		if !lineContains(combo, target) {
			continue
		}

		owned := 0
		for _, c := range combo {
			if winner, ok := statuses[c.Row][c.Col].Winner(); ok && winner == p {
				owned++
			}
		}

		if owned == 1 {
			return true
		}
	}

	return false
}

// sendsToResolved - reports whether the opponent would get a free choice
// because the move points at a resolved sub-board.
func sendsToResolved(game *entity.Game, move entity.Move, p entity.Player) bool {
	target := move.Cell()
	if target == move.Board() {
		return boardAfter(*game.Board(target), target, p).IsResolved()
	}

	return game.Board(target).Status.IsResolved()
}

// isCentral - reports whether the move is in the centre sub-board or on the
// centre cell of its sub-board.
func isCentral(move entity.Move) bool {
	return move.Board().IsCenter() || move.Cell().IsCenter()
}

func lineContains(combo [3]entity.Coord, c entity.Coord) bool {
	for _, cell := range combo {
		if cell == c {
			return true
		}
	}

	return false
}

func filterMoves(moves []entity.Move, keep func(entity.Move) bool) []entity.Move {
	var out []entity.Move
	for _, move := range moves {
		if keep(move) {
			out = append(out, move)
		}
	}

	return out
}
