package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/session"
	"github.com/afuentes/quizcoach/internal/store"
)

// memRepo is an in-memory LedgerRepo for tests. saveErr, when set,
// makes Save fail while still recording the attempted payload.
type memRepo struct {
	data    *store.LedgerData
	saveErr error
	saves   int
}

func (r *memRepo) Save(_ context.Context, data *store.LedgerData) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.data = data
	return nil
}

func (r *memRepo) Load(_ context.Context) (*store.LedgerData, error) {
	return r.data, nil
}

func newTestService(t *testing.T, repo *memRepo) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), repo, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func perfectSummary(id string, diff quiz.Difficulty) session.Summary {
	return session.Summary{
		SessionID:       id,
		Score:           45,
		CorrectAnswers:  3,
		TotalQuestions:  3,
		DurationSeconds: 12,
		Category:        quiz.CategoryGeneral,
		Difficulty:      diff,
	}
}

func TestApplyGameResult_FirstImperfectGame(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)

	view, err := svc.ApplyGameResult(context.Background(), session.Summary{
		SessionID:       "s1",
		Score:           15,
		CorrectAnswers:  1,
		TotalQuestions:  2,
		DurationSeconds: 8,
		Category:        quiz.CategoryGeneral,
		Difficulty:      quiz.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("ApplyGameResult: %v", err)
	}

	if view.Stats.TotalGamesPlayed != 1 {
		t.Errorf("TotalGamesPlayed = %d, want 1", view.Stats.TotalGamesPlayed)
	}
	if view.Stats.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0 (imperfect game)", view.Stats.CurrentStreak)
	}
	if view.Stats.ExperiencePoints != 10 {
		t.Errorf("ExperiencePoints = %d, want 10 (1 correct, easy, no bonus)", view.Stats.ExperiencePoints)
	}
	if view.Stats.BestScore != 15 {
		t.Errorf("BestScore = %d, want 15", view.Stats.BestScore)
	}
	if view.Stats.TotalPoints != 15 {
		t.Errorf("TotalPoints = %d, want 15", view.Stats.TotalPoints)
	}
	if view.Stats.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", view.Stats.Accuracy)
	}
	if view.Stats.Level != 1 {
		t.Errorf("Level = %d, want 1", view.Stats.Level)
	}
	if !view.HasAchievement("first_game") {
		t.Error("first_game not unlocked")
	}
	if view.HasAchievement("perfect_score") {
		t.Error("perfect_score unlocked on an imperfect game")
	}
	if len(view.RecentGames) != 1 || view.RecentGames[0].ID != "s1" {
		t.Errorf("RecentGames = %+v, want single record s1", view.RecentGames)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
}

func TestApplyGameResult_XP(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		total   int
		diff    quiz.Difficulty
		wantXP  int
	}{
		{"imperfect easy", 1, 2, quiz.DifficultyEasy, 10},
		{"perfect easy", 2, 2, quiz.DifficultyEasy, 70},      // 20 + 50 bonus
		{"imperfect medium", 3, 5, quiz.DifficultyMedium, 45}, // 30 * 1.5
		{"perfect medium", 5, 5, quiz.DifficultyMedium, 150},  // (50 + 50) * 1.5
		{"perfect hard", 5, 5, quiz.DifficultyHard, 200},      // (50 + 50) * 2
		{"odd medium floor", 1, 3, quiz.DifficultyMedium, 15}, // 10 * 1.5
	}
	for _, c := range cases {
		got := xpForSummary(session.Summary{
			CorrectAnswers: c.correct,
			TotalQuestions: c.total,
			Difficulty:     c.diff,
		})
		if got != c.wantXP {
			t.Errorf("%s: xp = %d, want %d", c.name, got, c.wantXP)
		}
	}
}

func TestApplyGameResult_StreakTracksPerfectGames(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ApplyGameResult(ctx, perfectSummary(fmt.Sprintf("p%d", i), quiz.DifficultyEasy)); err != nil {
			t.Fatalf("perfect game %d: %v", i, err)
		}
	}
	view := svc.View()
	if view.Stats.CurrentStreak != 3 || view.Stats.LongestStreak != 3 {
		t.Fatalf("after 3 perfect: current=%d longest=%d, want 3/3",
			view.Stats.CurrentStreak, view.Stats.LongestStreak)
	}

	if _, err := svc.ApplyGameResult(ctx, session.Summary{
		SessionID:      "miss",
		CorrectAnswers: 1,
		TotalQuestions: 3,
		Category:       quiz.CategoryGeneral,
		Difficulty:     quiz.DifficultyEasy,
	}); err != nil {
		t.Fatalf("imperfect game: %v", err)
	}
	view = svc.View()
	if view.Stats.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0 after imperfect game", view.Stats.CurrentStreak)
	}
	if view.Stats.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3 preserved", view.Stats.LongestStreak)
	}
}

func TestApplyGameResult_NewBestConsumedOnce(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	sum := perfectSummary("b1", quiz.DifficultyEasy)
	sum.Score = 100
	if _, err := svc.ApplyGameResult(ctx, sum); err != nil {
		t.Fatal(err)
	}
	if !svc.ConsumeNewBest() {
		t.Error("first game should set a new best")
	}
	if svc.ConsumeNewBest() {
		t.Error("flag should clear after being read")
	}

	// Equal score is not a new best.
	sum.SessionID = "b2"
	if _, err := svc.ApplyGameResult(ctx, sum); err != nil {
		t.Fatal(err)
	}
	if svc.ConsumeNewBest() {
		t.Error("equal score should not set a new best")
	}

	sum.SessionID = "b3"
	sum.Score = 101
	if _, err := svc.ApplyGameResult(ctx, sum); err != nil {
		t.Fatal(err)
	}
	if !svc.ConsumeNewBest() {
		t.Error("higher score should set a new best")
	}
}

func TestApplyGameResult_AchievementsIdempotent(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.ApplyGameResult(ctx, perfectSummary("g1", quiz.DifficultyEasy)); err != nil {
		t.Fatal(err)
	}
	first := svc.View()
	if !first.HasAchievement("first_game") || !first.HasAchievement("perfect_score") {
		t.Fatalf("expected first_game and perfect_score unlocked, got %+v", first.Achievements)
	}
	var firstUnlockedAt = first.Achievements[0].UnlockedAt

	if _, err := svc.ApplyGameResult(ctx, perfectSummary("g2", quiz.DifficultyEasy)); err != nil {
		t.Fatal(err)
	}
	second := svc.View()

	count := 0
	for _, a := range second.Achievements {
		if a.ID == "first_game" {
			count++
			if !a.UnlockedAt.Equal(firstUnlockedAt) {
				t.Errorf("first_game UnlockedAt changed: %v -> %v", firstUnlockedAt, a.UnlockedAt)
			}
		}
	}
	if count != 1 {
		t.Errorf("first_game appears %d times, want 1", count)
	}
}

func TestApplyGameResult_RecentGamesCapped(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	for i := 0; i < MaxRecentGames+5; i++ {
		if _, err := svc.ApplyGameResult(ctx, perfectSummary(fmt.Sprintf("g%02d", i), quiz.DifficultyEasy)); err != nil {
			t.Fatal(err)
		}
	}
	view := svc.View()
	if len(view.RecentGames) != MaxRecentGames {
		t.Fatalf("len(RecentGames) = %d, want %d", len(view.RecentGames), MaxRecentGames)
	}
	if view.RecentGames[0].ID != fmt.Sprintf("g%02d", MaxRecentGames+4) {
		t.Errorf("head = %s, want the newest game", view.RecentGames[0].ID)
	}
	if view.RecentGames[MaxRecentGames-1].ID != "g05" {
		t.Errorf("tail = %s, want g05 (oldest surviving)", view.RecentGames[MaxRecentGames-1].ID)
	}
}

func TestApplyGameResult_CategoryStatsLazy(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if len(svc.View().CategoryStats) != 0 {
		t.Fatal("expected no category stats before any game")
	}

	sum := perfectSummary("c1", quiz.DifficultyMedium)
	sum.Category = quiz.CategoryCoaching
	if _, err := svc.ApplyGameResult(ctx, sum); err != nil {
		t.Fatal(err)
	}
	view := svc.View()
	if len(view.CategoryStats) != 1 {
		t.Fatalf("len(CategoryStats) = %d, want 1", len(view.CategoryStats))
	}
	cs, ok := view.CategoryStats[quiz.CategoryCoaching]
	if !ok {
		t.Fatal("coaching stats missing")
	}
	if cs.GamesPlayed != 1 || cs.BestScore != sum.Score || cs.Accuracy != 100 {
		t.Errorf("coaching stats = %+v", cs)
	}
}

func TestApplyGameResult_SaveFailureKeepsUpdate(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("disk full")}
	svc := newTestService(t, repo)

	view, err := svc.ApplyGameResult(context.Background(), perfectSummary("f1", quiz.DifficultyEasy))
	if err == nil {
		t.Fatal("expected persist error")
	}
	if view.Stats.TotalGamesPlayed != 1 {
		t.Errorf("returned view not updated: games = %d", view.Stats.TotalGamesPlayed)
	}
	// The in-memory state survives the failed save.
	if svc.View().Stats.TotalGamesPlayed != 1 {
		t.Error("in-memory state rolled back on save failure")
	}
}

func TestServiceRestoresFromRepo(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	sum := perfectSummary("r1", quiz.DifficultyHard)
	sum.Score = 120
	if _, err := svc.ApplyGameResult(ctx, sum); err != nil {
		t.Fatal(err)
	}
	settings := svc.View().Settings
	settings.SoundEnabled = false
	if err := svc.UpdateSettings(ctx, settings); err != nil {
		t.Fatal(err)
	}

	reloaded := newTestService(t, repo)
	view := reloaded.View()
	if view.Stats.TotalGamesPlayed != 1 || view.Stats.BestScore != 120 {
		t.Errorf("stats not restored: %+v", view.Stats)
	}
	if view.Stats.ExperiencePoints != 160 {
		t.Errorf("ExperiencePoints = %d, want 160 ((30+50)*2)", view.Stats.ExperiencePoints)
	}
	if !view.HasAchievement("first_game") {
		t.Error("achievements not restored")
	}
	if len(view.RecentGames) != 1 || view.RecentGames[0].ID != "r1" {
		t.Errorf("recent games not restored: %+v", view.RecentGames)
	}
	if view.RecentGames[0].PlayedAt.IsZero() {
		t.Error("PlayedAt not restored")
	}
	if view.Settings.SoundEnabled {
		t.Error("settings not restored")
	}
	if _, ok := view.CategoryStats[quiz.CategoryGeneral]; !ok {
		t.Error("category stats not restored")
	}
}

func TestServiceStartsEmptyWithoutSavedState(t *testing.T) {
	svc := newTestService(t, &memRepo{})
	view := svc.View()
	if view.Stats.TotalGamesPlayed != 0 || len(view.Achievements) != 0 {
		t.Errorf("expected empty ledger, got %+v", view.Stats)
	}
	if view.Settings != DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", view.Settings)
	}
	if view.Stats.Level != 1 || view.Stats.XPToNextLevel != 100 {
		t.Errorf("level = %d toNext = %d, want 1/100", view.Stats.Level, view.Stats.XPToNextLevel)
	}
}

func TestReset(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.ApplyGameResult(ctx, perfectSummary("x1", quiz.DifficultyEasy)); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	view := svc.View()
	if view.Stats.TotalGamesPlayed != 0 || len(view.Achievements) != 0 || len(view.RecentGames) != 0 {
		t.Errorf("ledger not cleared: %+v", view)
	}

	// The wipe persists: a reload starts empty too.
	reloaded := newTestService(t, repo)
	if reloaded.View().Stats.TotalGamesPlayed != 0 {
		t.Error("reset state not persisted")
	}
}

func TestViewIsolation(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if _, err := svc.ApplyGameResult(ctx, perfectSummary("i1", quiz.DifficultyEasy)); err != nil {
		t.Fatal(err)
	}
	view := svc.View()
	view.RecentGames[0].Score = 9999
	view.Achievements[0].ID = "tampered"

	fresh := svc.View()
	if fresh.RecentGames[0].Score == 9999 {
		t.Error("mutating a view leaked into the service")
	}
	if fresh.Achievements[0].ID == "tampered" {
		t.Error("mutating view achievements leaked into the service")
	}
}
