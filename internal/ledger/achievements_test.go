package ledger

import "testing"

func unlockedBy(t *testing.T, id string, p Progress) bool {
	t.Helper()
	def := DefByID(id)
	if def == nil {
		t.Fatalf("unknown achievement %q", id)
	}
	return def.Unlocked(p)
}

func TestAchievement_FirstGame(t *testing.T) {
	if unlockedBy(t, "first_game", Progress{}) {
		t.Error("unlocked with zero games")
	}
	if !unlockedBy(t, "first_game", Progress{Stats: Stats{TotalGamesPlayed: 1}}) {
		t.Error("not unlocked after first game")
	}
}

func TestAchievement_PerfectScore_ChecksLatestGameOnly(t *testing.T) {
	perfect := &GameRecord{CorrectAnswers: 5, TotalQuestions: 5}
	imperfect := &GameRecord{CorrectAnswers: 4, TotalQuestions: 5}

	if !unlockedBy(t, "perfect_score", Progress{Latest: perfect}) {
		t.Error("not unlocked on a perfect latest game")
	}
	if unlockedBy(t, "perfect_score", Progress{Latest: imperfect}) {
		t.Error("unlocked on an imperfect latest game")
	}
	if unlockedBy(t, "perfect_score", Progress{Latest: nil}) {
		t.Error("unlocked with no games")
	}
	if unlockedBy(t, "perfect_score", Progress{Latest: &GameRecord{}}) {
		t.Error("unlocked on an empty 0/0 game")
	}
}

func TestAchievement_SpeedDemon(t *testing.T) {
	if !unlockedBy(t, "speed_demon", Progress{Latest: &GameRecord{CorrectAnswers: 5, TimeTakenSeconds: 30}}) {
		t.Error("not unlocked at exactly 30s")
	}
	if unlockedBy(t, "speed_demon", Progress{Latest: &GameRecord{CorrectAnswers: 5, TimeTakenSeconds: 30.1}}) {
		t.Error("unlocked above 30s")
	}
	if unlockedBy(t, "speed_demon", Progress{Latest: &GameRecord{CorrectAnswers: 4, TimeTakenSeconds: 10}}) {
		t.Error("unlocked with fewer than 5 correct")
	}
}

func TestAchievement_Streaks(t *testing.T) {
	if unlockedBy(t, "streak_5", Progress{Stats: Stats{LongestStreak: 4}}) {
		t.Error("streak_5 unlocked at 4")
	}
	if !unlockedBy(t, "streak_5", Progress{Stats: Stats{LongestStreak: 5}}) {
		t.Error("streak_5 not unlocked at 5")
	}
	if !unlockedBy(t, "streak_10", Progress{Stats: Stats{LongestStreak: 10}}) {
		t.Error("streak_10 not unlocked at 10")
	}
}

func TestAchievement_Levels(t *testing.T) {
	if unlockedBy(t, "level_5", Progress{Stats: Stats{Level: 4}}) {
		t.Error("level_5 unlocked at level 4")
	}
	if !unlockedBy(t, "level_5", Progress{Stats: Stats{Level: 5}}) {
		t.Error("level_5 not unlocked at level 5")
	}
	if !unlockedBy(t, "level_10", Progress{Stats: Stats{Level: 12}}) {
		t.Error("level_10 not unlocked at level 12")
	}
}

func TestAchievement_GameCountsAndHighScore(t *testing.T) {
	if !unlockedBy(t, "games_10", Progress{Stats: Stats{TotalGamesPlayed: 10}}) {
		t.Error("games_10 not unlocked at 10")
	}
	if !unlockedBy(t, "games_50", Progress{Stats: Stats{TotalGamesPlayed: 50}}) {
		t.Error("games_50 not unlocked at 50")
	}
	if unlockedBy(t, "high_score_500", Progress{Stats: Stats{BestScore: 499}}) {
		t.Error("high_score_500 unlocked at 499")
	}
	if !unlockedBy(t, "high_score_500", Progress{Stats: Stats{BestScore: 500}}) {
		t.Error("high_score_500 not unlocked at 500")
	}
}

func TestDefByID_Unknown(t *testing.T) {
	if DefByID("nope") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestRegistryHasTenAchievements(t *testing.T) {
	if len(Achievements) != 10 {
		t.Errorf("len = %d, want 10", len(Achievements))
	}
	seen := make(map[string]bool)
	for _, def := range Achievements {
		if seen[def.ID] {
			t.Errorf("duplicate id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Unlocked == nil {
			t.Errorf("%s has no predicate", def.ID)
		}
	}
}
