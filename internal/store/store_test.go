package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil sql.DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"ledger_state", "game_events", "llm_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestLedgerSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	// No ledger yet.
	data, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil ledger when none exists")
	}

	err = repo.Save(ctx, &LedgerData{
		Version: 1,
		Stats: GameStatsData{
			TotalGamesPlayed: 3,
			BestScore:        120,
			ExperiencePoints: 90,
		},
		CategoryStats: map[string]*CategoryStatsData{
			"general": {GamesPlayed: 2, BestScore: 120},
		},
		Achievements: []AchievementData{
			{ID: "first_game", UnlockedAt: "2026-08-31T10:00:00Z"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data == nil {
		t.Fatal("expected non-nil ledger")
	}
	if data.Stats.TotalGamesPlayed != 3 {
		t.Errorf("totalGamesPlayed = %d, want 3", data.Stats.TotalGamesPlayed)
	}
	if cs := data.CategoryStats["general"]; cs == nil || cs.BestScore != 120 {
		t.Errorf("categoryStats[general] = %+v, want bestScore 120", cs)
	}
	if len(data.Achievements) != 1 || data.Achievements[0].ID != "first_game" {
		t.Errorf("achievements = %+v, want [first_game]", data.Achievements)
	}
}

func TestLedgerSaveReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	repo := s.LedgerRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Save(ctx, &LedgerData{
			Version: 1,
			Stats:   GameStatsData{TotalGamesPlayed: i},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	data, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Stats.TotalGamesPlayed != 3 {
		t.Errorf("totalGamesPlayed = %d, want 3 (last write wins)", data.Stats.TotalGamesPlayed)
	}

	// Single row only.
	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM ledger_state").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("ledger_state rows = %d, want 1", count)
	}
}

func TestGameEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendGameEvent(ctx, GameEventData{
			SessionID:       "s",
			Category:        "general",
			Difficulty:      "easy",
			Score:           10 * (i + 1),
			CorrectAnswers:  i,
			TotalQuestions:  5,
			DurationSeconds: 32.5,
			XPGained:        20,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentGameEvents(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Score != 50 {
		t.Errorf("events[0].Score = %d, want 50", events[0].Score)
	}
	if events[0].PlayedAt.IsZero() {
		t.Error("expected non-zero PlayedAt")
	}
}

func TestLLMRequestAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "question_generation",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM llm_events").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm_events rows = %d, want 1", count)
	}
}
