package entity

// ScoreEntry is one row of the leaderboard.
type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
