package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridWithLine(combo [3]entity.Coord, symbol string) [3][3]string {
	var grid [3][3]string
	for _, c := range combo {
		grid[c.Row][c.Col] = symbol
	}

	return grid
}

func transpose[S any](grid [3][3]S) [3][3]S {
	var out [3][3]S
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c][r] = grid[r][c]
		}
	}

	return out
}

func TestCheckLines(t *testing.T) {
	t.Run("Detects every winning line", func(t *testing.T) {
		for i, combo := range WinCombos {
			// Given: a grid with only this line filled
			grid := gridWithLine(combo, "X")

			// When: checking the grid
			symbol, ok := CheckLines(grid, "")

			// Then: the line's symbol is reported
			require.True(t, ok, "line %d", i)
			assert.Equal(t, "X", symbol, "line %d", i)
		}
	})

	t.Run("Detects the transposed line", func(t *testing.T) {
		for i, combo := range WinCombos {
			// Given: a winning grid and its transpose
			grid := transpose(gridWithLine(combo, "O"))

			// When: checking the transposed grid
			symbol, ok := CheckLines(grid, "")

			// Then: the transposed line still wins
			require.True(t, ok, "line %d", i)
			assert.Equal(t, "O", symbol)
		}
	})

	t.Run("Returns false when no line is complete", func(t *testing.T) {
		// Given: a full grid without a line
		grid := [3][3]string{
			{"X", "O", "X"},
			{"O", "X", "O"},
			{"O", "X", "O"},
		}

		// When: checking the grid
		symbol, ok := CheckLines(grid, "")

		// Then: nothing is reported
		assert.False(t, ok)
		assert.Empty(t, symbol)
	})

	t.Run("Empty symbols never form a line", func(t *testing.T) {
		var grid [3][3]entity.Cell

		_, ok := CheckLines(grid, entity.CellEmpty)

		assert.False(t, ok)
	})

	t.Run("First line in row order wins", func(t *testing.T) {
		// Given: a grid holding two complete rows
		grid := [3][3]string{
			{"O", "O", "O"},
			{"X", "X", "X"},
			{"", "", ""},
		}

		// When: checking the grid
		symbol, ok := CheckLines(grid, "")

		// Then: the upper row is reported
		require.True(t, ok)
		assert.Equal(t, "O", symbol)
	})
}

func TestResolveBoard(t *testing.T) {
	x, o := entity.Mark(entity.PlayerX), entity.Mark(entity.PlayerO)

	t.Run("Won board", func(t *testing.T) {
		cells := [3][3]entity.Cell{{o, x, 0}, {0, o, x}, {x, 0, o}}

		assert.Equal(t, entity.StatusWonO, ResolveBoard(cells))
	})

	t.Run("Full board without a line is drawn", func(t *testing.T) {
		cells := [3][3]entity.Cell{{x, o, x}, {o, x, o}, {o, x, o}}

		assert.Equal(t, entity.StatusDrawn, ResolveBoard(cells))
	})

	t.Run("Board with empty cells stays open", func(t *testing.T) {
		cells := [3][3]entity.Cell{{x, o, x}, {o, x, o}, {o, x, 0}}

		assert.Equal(t, entity.StatusOpen, ResolveBoard(cells))
	})
}

func TestResolveMeta(t *testing.T) {
	t.Run("Drawn boards do not count toward a line", func(t *testing.T) {
		// Given: a row of two X boards and a drawn board
		statuses := [3][3]entity.BoardStatus{
			{entity.StatusWonX, entity.StatusWonX, entity.StatusDrawn},
		}

		// Then: the game is still open
		assert.Equal(t, entity.StatusOpen, ResolveMeta(statuses))
	})

	t.Run("Column of won boards wins the game", func(t *testing.T) {
		statuses := [3][3]entity.BoardStatus{
			{entity.StatusWonO, entity.StatusOpen, entity.StatusOpen},
			{entity.StatusWonO, entity.StatusWonX, entity.StatusOpen},
			{entity.StatusWonO, entity.StatusOpen, entity.StatusWonX},
		}

		assert.Equal(t, entity.StatusWonO, ResolveMeta(statuses))
	})

	t.Run("All boards resolved without a line is a draw", func(t *testing.T) {
		statuses := [3][3]entity.BoardStatus{
			{entity.StatusWonX, entity.StatusWonO, entity.StatusWonX},
			{entity.StatusWonX, entity.StatusWonO, entity.StatusDrawn},
			{entity.StatusWonO, entity.StatusWonX, entity.StatusWonO},
		}

		assert.Equal(t, entity.StatusDrawn, ResolveMeta(statuses))
	})
}
