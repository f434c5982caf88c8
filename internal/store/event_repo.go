package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo over the append-only event tables.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendGameEvent(ctx context.Context, data GameEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO game_events
		 (session_id, category, difficulty, score, correct_answers, total_questions, duration_secs, xp_gained, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Category, data.Difficulty,
		data.Score, data.CorrectAnswers, data.TotalQuestions,
		data.DurationSeconds, data.XPGained,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append game event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGameEvents(ctx context.Context, limit int) ([]GameEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, category, difficulty, score, correct_answers, total_questions, duration_secs, xp_gained, played_at
		 FROM game_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}
	defer rows.Close()

	var events []GameEvent
	for rows.Next() {
		var ev GameEvent
		var playedAt string
		if err := rows.Scan(
			&ev.ID, &ev.SessionID, &ev.Category, &ev.Difficulty,
			&ev.Score, &ev.CorrectAnswers, &ev.TotalQuestions,
			&ev.DurationSeconds, &ev.XPGained, &playedAt,
		); err != nil {
			return nil, fmt.Errorf("scan game event: %w", err)
		}
		if t, terr := time.Parse(time.RFC3339, playedAt); terr == nil {
			ev.PlayedAt = t
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}
