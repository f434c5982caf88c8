package remote

import (
	"context"
	"net/url"
	"strconv"
)

// LeaderboardEntry is one row of the global leaderboard.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
	Level       int    `json:"level"`
}

// CategoryInfo describes one quiz category the backend offers.
type CategoryInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"questionCount"`
}

// Leaderboard fetches the top entries of the global leaderboard.
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Entries []LeaderboardEntry `json:"entries"`
	}
	if err := c.getJSON(ctx, "/minigame/leaderboard", query, &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// Categories fetches the category catalog from the backend.
func (c *Client) Categories(ctx context.Context) ([]CategoryInfo, error) {
	var out struct {
		Categories []CategoryInfo `json:"categories"`
	}
	if err := c.getJSON(ctx, "/minigame/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
