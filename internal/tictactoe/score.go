package tictactoe

import (
	"time"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// ScoreRule is the scoring for one difficulty: a base score plus one point
// per whole second left under the time cap.
type ScoreRule struct {
	Base    int
	TimeCap time.Duration
}

// ScoreTable maps each difficulty to its scoring rule.
type ScoreTable map[entity.Difficulty]ScoreRule

// DefaultScoreTable - returns the scoring shipped with the game.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		entity.DifficultyEasy:   {Base: 500, TimeCap: 120 * time.Second},
		entity.DifficultyMedium: {Base: 700, TimeCap: 120 * time.Second},
		entity.DifficultyHard:   {Base: 900, TimeCap: 120 * time.Second},
	}
}

// Score - returns the points earned by scored. Only a win by scored counts.
func (that ScoreTable) Score(winner entity.Winner, scored entity.Player, difficulty entity.Difficulty, elapsed time.Duration) int {
	player, ok := winner.Player()
	if !ok || player != scored {
		return 0
	}

	rule, ok := that[difficulty]
	if !ok {
		return 0
	}

	if elapsed < 0 {
		elapsed = 0
	}

	bonus := int(rule.TimeCap/time.Second) - int(elapsed/time.Second)

	return rule.Base + max(0, bonus)
}

// FinalScore - scores a resolved game for the human side. Unfinished games
// and games without a computer opponent score 0.
func FinalScore(game *entity.Game, table ScoreTable, now time.Time) int {
	winner, ok := Outcome(game)
	if !ok || !game.HasComputer() {
		return 0
	}

	end := game.FinishedAt
	if end.IsZero() {
		end = now
	}

	var elapsed time.Duration
	if !game.StartedAt.IsZero() {
		elapsed = end.Sub(game.StartedAt)
	}

	return table.Score(winner, game.Human(), game.Difficulty, elapsed)
}
