package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

const leaderboardKey = "leaderboard"

// LeaderboardRepository keeps the best score per username in a sorted set.
type LeaderboardRepository interface {
	Add(ctx context.Context, entry entity.ScoreEntry) error
	Top(ctx context.Context, limit int64) ([]entity.ScoreEntry, error)
	Usernames(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type dbLeaderboard struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
	}
}

// Add - records the entry, keeping the higher of the old and new score.
func (that *dbLeaderboard) Add(ctx context.Context, entry entity.ScoreEntry) error {
	err := that.client.ZAddGT(ctx, leaderboardKey, redis.Z{
		Score:  float64(entry.Score),
		Member: entry.Username,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to add score: %w", err)
	}

	return nil
}

// Top - returns up to limit entries, best score first.
func (that *dbLeaderboard) Top(ctx context.Context, limit int64) ([]entity.ScoreEntry, error) {
	if limit <= 0 {
		return []entity.ScoreEntry{}, nil
	}

	rows, err := that.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]entity.ScoreEntry, 0, len(rows))
	for _, row := range rows {
		username, ok := row.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, entity.ScoreEntry{Username: username, Score: int(row.Score)})
	}

	return entries, nil
}

// Usernames - returns every username that has a score, sorted by name.
func (that *dbLeaderboard) Usernames(ctx context.Context) ([]string, error) {
	names, err := that.client.ZRange(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read usernames: %w", err)
	}

	slices.Sort(names)

	return names, nil
}

func (that *dbLeaderboard) Clear(ctx context.Context) error {
	if err := that.client.Del(ctx, leaderboardKey).Err(); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	return nil
}
