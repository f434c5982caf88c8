package ledger

import (
	"context"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/session"
	"github.com/afuentes/quizcoach/internal/store"
)

// MaxRecentGames caps the recent-games history; the oldest entry is
// evicted when a new game pushes past the cap.
const MaxRecentGames = 20

// perfectBonusXP is awarded on top of per-answer XP for a perfect round.
const perfectBonusXP = 50

// Service owns the durable cross-session progress state. All mutation
// goes through its methods; callers only ever see View snapshots.
//
// Persistence runs before ApplyGameResult returns. On a write failure
// the error is surfaced but the in-memory update is kept: the running
// app keeps the result, only the persisted copy lags until the next
// successful save.
type Service struct {
	mu     sync.Mutex
	repo   store.LedgerRepo
	events store.EventRepo

	stats         Stats // counters only; derived fields filled per snapshot
	categoryStats map[quiz.Category]*CategoryStats
	achievements  []Achievement
	recentGames   []GameRecord
	settings      Settings
	newBest       bool
}

// NewService loads the ledger from storage, or starts empty when none
// has been persisted yet.
func NewService(ctx context.Context, repo store.LedgerRepo, events store.EventRepo) (*Service, error) {
	s := &Service{
		repo:          repo,
		events:        events,
		categoryStats: make(map[quiz.Category]*CategoryStats),
		settings:      DefaultSettings(),
	}

	data, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if data != nil {
		s.restore(data)
	}
	return s, nil
}

// ApplyGameResult folds one finished session into the ledger, evaluates
// achievements against the updated state, persists, and returns the new
// snapshot. Persistence failure is returned alongside the (still
// updated) view.
func (s *Service) ApplyGameResult(ctx context.Context, sum session.Summary) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalGamesPlayed++
	s.stats.TotalPoints += sum.Score
	s.stats.TotalCorrectAnswers += sum.CorrectAnswers
	s.stats.TotalQuestionsAnswered += sum.TotalQuestions

	if sum.Score > s.stats.BestScore {
		s.stats.BestScore = sum.Score
		s.newBest = true
	}

	// The streak counts perfect sessions, not per-question runs.
	if sum.Perfect() {
		s.stats.CurrentStreak++
		if s.stats.CurrentStreak > s.stats.LongestStreak {
			s.stats.LongestStreak = s.stats.CurrentStreak
		}
	} else {
		s.stats.CurrentStreak = 0
	}

	xpGained := xpForSummary(sum)
	s.stats.ExperiencePoints += xpGained

	cat := s.categoryStats[sum.Category]
	if cat == nil {
		cat = &CategoryStats{}
		s.categoryStats[sum.Category] = cat
	}
	cat.GamesPlayed++
	cat.TotalScore += sum.Score
	cat.CorrectAnswers += sum.CorrectAnswers
	cat.TotalQuestions += sum.TotalQuestions
	if sum.Score > cat.BestScore {
		cat.BestScore = sum.Score
	}

	record := GameRecord{
		ID:               sum.SessionID,
		Score:            sum.Score,
		CorrectAnswers:   sum.CorrectAnswers,
		TotalQuestions:   sum.TotalQuestions,
		Category:         sum.Category,
		Difficulty:       sum.Difficulty,
		TimeTakenSeconds: sum.DurationSeconds,
		XPGained:         xpGained,
		PlayedAt:         time.Now().UTC(),
	}
	s.recentGames = append([]GameRecord{record}, s.recentGames...)
	if len(s.recentGames) > MaxRecentGames {
		s.recentGames = s.recentGames[:MaxRecentGames]
	}

	s.evaluateAchievements(record.PlayedAt)

	// Audit trail; failure never blocks the ledger update.
	if s.events != nil {
		if err := s.events.AppendGameEvent(ctx, store.GameEventData{
			SessionID:       sum.SessionID,
			Category:        string(sum.Category),
			Difficulty:      string(sum.Difficulty),
			Score:           sum.Score,
			CorrectAnswers:  sum.CorrectAnswers,
			TotalQuestions:  sum.TotalQuestions,
			DurationSeconds: sum.DurationSeconds,
			XPGained:        xpGained,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record game event: %v\n", err)
		}
	}

	view := s.viewLocked()

	if err := s.repo.Save(ctx, s.exportLocked()); err != nil {
		return view, fmt.Errorf("persist ledger: %w", err)
	}
	return view, nil
}

// ConsumeNewBest reports whether the last applied result set a new best
// score, clearing the flag. Reads once, celebrates once.
func (s *Service) ConsumeNewBest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.newBest
	s.newBest = false
	return was
}

// View returns the current ledger snapshot.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// UpdateSettings replaces the game settings and persists immediately.
func (s *Service) UpdateSettings(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	if err := s.repo.Save(ctx, s.exportLocked()); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// Reset wipes all progress and persists the empty ledger.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{}
	s.categoryStats = make(map[quiz.Category]*CategoryStats)
	s.achievements = nil
	s.recentGames = nil
	s.settings = DefaultSettings()
	s.newBest = false
	if err := s.repo.Save(ctx, s.exportLocked()); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// xpForSummary computes the XP for one session: 10 per correct answer,
// +50 for a perfect round, scaled by the difficulty multiplier and
// floored.
func xpForSummary(sum session.Summary) int {
	xp := float64(sum.CorrectAnswers * 10)
	if sum.Perfect() {
		xp += perfectBonusXP
	}
	return int(math.Floor(xp * quiz.XPMultiplier(sum.Difficulty)))
}

// evaluateAchievements runs every predicate against the updated state.
// Already-unlocked achievements are skipped, so unlocking is idempotent
// and timestamps never change.
func (s *Service) evaluateAchievements(now time.Time) {
	unlocked := make(map[string]bool, len(s.achievements))
	for _, a := range s.achievements {
		unlocked[a.ID] = true
	}

	progress := Progress{Stats: s.derivedStatsLocked()}
	if len(s.recentGames) > 0 {
		progress.Latest = &s.recentGames[0]
	}

	for _, def := range Achievements {
		if unlocked[def.ID] {
			continue
		}
		if def.Unlocked(progress) {
			s.achievements = append(s.achievements, Achievement{
				ID:         def.ID,
				UnlockedAt: now,
			})
		}
	}
}

// derivedStatsLocked returns the counters with all derived fields filled.
func (s *Service) derivedStatsLocked() Stats {
	stats := s.stats

	if stats.TotalQuestionsAnswered > 0 {
		stats.Accuracy = float64(stats.TotalCorrectAnswers) / float64(stats.TotalQuestionsAnswered) * 100
	}
	if stats.TotalGamesPlayed > 0 {
		stats.AverageScore = float64(stats.TotalPoints) / float64(stats.TotalGamesPlayed)
	}

	level, into, span := LevelForXP(stats.ExperiencePoints)
	stats.Level = level
	stats.XPIntoLevel = into
	stats.XPToNextLevel = span - into

	return stats
}

func (s *Service) viewLocked() View {
	view := View{
		Stats:         s.derivedStatsLocked(),
		CategoryStats: make(map[quiz.Category]CategoryStats, len(s.categoryStats)),
		Achievements:  make([]Achievement, len(s.achievements)),
		RecentGames:   make([]GameRecord, len(s.recentGames)),
		Settings:      s.settings,
	}

	for cat, cs := range s.categoryStats {
		out := *cs
		if out.TotalQuestions > 0 {
			out.Accuracy = float64(out.CorrectAnswers) / float64(out.TotalQuestions) * 100
		}
		view.CategoryStats[cat] = out
	}
	copy(view.Achievements, s.achievements)
	copy(view.RecentGames, s.recentGames)

	return view
}
