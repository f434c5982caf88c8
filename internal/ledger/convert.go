package ledger

import (
	"fmt"
	"os"
	"time"

	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/store"
)

// ledgerVersion is the serialization format version.
const ledgerVersion = 1

// exportLocked converts the in-memory state to its serialized form.
// Only raw counters travel; derived values are recomputed on load.
func (s *Service) exportLocked() *store.LedgerData {
	data := &store.LedgerData{
		Version: ledgerVersion,
		Stats: store.GameStatsData{
			TotalGamesPlayed:       s.stats.TotalGamesPlayed,
			BestScore:              s.stats.BestScore,
			CurrentStreak:          s.stats.CurrentStreak,
			LongestStreak:          s.stats.LongestStreak,
			TotalPoints:            s.stats.TotalPoints,
			TotalCorrectAnswers:    s.stats.TotalCorrectAnswers,
			TotalQuestionsAnswered: s.stats.TotalQuestionsAnswered,
			ExperiencePoints:       s.stats.ExperiencePoints,
		},
		Settings: store.GameSettingsData{
			SoundEnabled:       s.settings.SoundEnabled,
			HapticEnabled:      s.settings.HapticEnabled,
			AnimationsEnabled:  s.settings.AnimationsEnabled,
			Difficulty:         string(s.settings.Difficulty),
			TimePerQuestionSec: s.settings.TimePerQuestionSeconds,
		},
	}

	if len(s.categoryStats) > 0 {
		data.CategoryStats = make(map[string]*store.CategoryStatsData, len(s.categoryStats))
		for cat, cs := range s.categoryStats {
			data.CategoryStats[string(cat)] = &store.CategoryStatsData{
				GamesPlayed:    cs.GamesPlayed,
				TotalScore:     cs.TotalScore,
				BestScore:      cs.BestScore,
				CorrectAnswers: cs.CorrectAnswers,
				TotalQuestions: cs.TotalQuestions,
			}
		}
	}

	for _, a := range s.achievements {
		data.Achievements = append(data.Achievements, store.AchievementData{
			ID:         a.ID,
			UnlockedAt: a.UnlockedAt.UTC().Format(time.RFC3339),
		})
	}

	for _, g := range s.recentGames {
		data.RecentGames = append(data.RecentGames, store.GameRecordData{
			ID:               g.ID,
			Score:            g.Score,
			CorrectAnswers:   g.CorrectAnswers,
			TotalQuestions:   g.TotalQuestions,
			Category:         string(g.Category),
			Difficulty:       string(g.Difficulty),
			TimeTakenSeconds: g.TimeTakenSeconds,
			XPGained:         g.XPGained,
			PlayedAt:         g.PlayedAt.UTC().Format(time.RFC3339),
		})
	}

	return data
}

// restore rebuilds the in-memory state from its serialized form.
// Timestamps that fail to parse are kept as zero values rather than
// rejecting the whole ledger.
func (s *Service) restore(data *store.LedgerData) {
	s.stats = Stats{
		TotalGamesPlayed:       data.Stats.TotalGamesPlayed,
		BestScore:              data.Stats.BestScore,
		CurrentStreak:          data.Stats.CurrentStreak,
		LongestStreak:          data.Stats.LongestStreak,
		TotalPoints:            data.Stats.TotalPoints,
		TotalCorrectAnswers:    data.Stats.TotalCorrectAnswers,
		TotalQuestionsAnswered: data.Stats.TotalQuestionsAnswered,
		ExperiencePoints:       data.Stats.ExperiencePoints,
	}

	for cat, cs := range data.CategoryStats {
		s.categoryStats[quiz.Category(cat)] = &CategoryStats{
			GamesPlayed:    cs.GamesPlayed,
			TotalScore:     cs.TotalScore,
			BestScore:      cs.BestScore,
			CorrectAnswers: cs.CorrectAnswers,
			TotalQuestions: cs.TotalQuestions,
		}
	}

	for _, a := range data.Achievements {
		s.achievements = append(s.achievements, Achievement{
			ID:         a.ID,
			UnlockedAt: parseTime(a.UnlockedAt),
		})
	}

	for _, g := range data.RecentGames {
		s.recentGames = append(s.recentGames, GameRecord{
			ID:               g.ID,
			Score:            g.Score,
			CorrectAnswers:   g.CorrectAnswers,
			TotalQuestions:   g.TotalQuestions,
			Category:         quiz.Category(g.Category),
			Difficulty:       quiz.Difficulty(g.Difficulty),
			TimeTakenSeconds: g.TimeTakenSeconds,
			XPGained:         g.XPGained,
			PlayedAt:         parseTime(g.PlayedAt),
		})
	}

	if data.Settings.TimePerQuestionSec > 0 {
		s.settings = Settings{
			SoundEnabled:           data.Settings.SoundEnabled,
			HapticEnabled:          data.Settings.HapticEnabled,
			AnimationsEnabled:      data.Settings.AnimationsEnabled,
			Difficulty:             quiz.Difficulty(data.Settings.Difficulty),
			TimePerQuestionSeconds: data.Settings.TimePerQuestionSec,
		}
	}
}

func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: unparseable ledger timestamp %q\n", v)
		return time.Time{}
	}
	return t
}
