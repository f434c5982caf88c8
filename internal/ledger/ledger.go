package ledger

import (
	"time"

	"github.com/afuentes/quizcoach/internal/quiz"
)

// Stats is the global accumulated scoreboard. The derived fields
// (Accuracy, AverageScore, Level, XPToNextLevel) are recomputed from
// the counters on every snapshot, never stored.
type Stats struct {
	TotalGamesPlayed       int
	BestScore              int
	CurrentStreak          int
	LongestStreak          int
	TotalPoints            int
	TotalCorrectAnswers    int
	TotalQuestionsAnswered int
	ExperiencePoints       int

	Accuracy      float64
	AverageScore  float64
	Level         int
	XPIntoLevel   int
	XPToNextLevel int
}

// CategoryStats mirrors the global counters scoped to one category.
// Entries are created lazily on the first game in that category.
type CategoryStats struct {
	GamesPlayed    int
	TotalScore     int
	BestScore      int
	CorrectAnswers int
	TotalQuestions int
	Accuracy       float64
}

// Achievement is one unlocked achievement. Once unlocked it is never
// removed and its timestamp never changes.
type Achievement struct {
	ID         string
	UnlockedAt time.Time
}

// GameRecord is one entry of the recent-games history, newest first.
type GameRecord struct {
	ID               string
	Score            int
	CorrectAnswers   int
	TotalQuestions   int
	Category         quiz.Category
	Difficulty       quiz.Difficulty
	TimeTakenSeconds float64
	XPGained         int
	PlayedAt         time.Time
}

// Settings holds user-adjustable game preferences.
type Settings struct {
	SoundEnabled           bool
	HapticEnabled          bool
	AnimationsEnabled      bool
	Difficulty             quiz.Difficulty
	TimePerQuestionSeconds int
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:           true,
		HapticEnabled:          true,
		AnimationsEnabled:      true,
		Difficulty:             quiz.DifficultyMedium,
		TimePerQuestionSeconds: quiz.DefaultTimeLimitSeconds,
	}
}

// View is a read-only snapshot of the whole ledger, handed to callers
// after every mutation.
type View struct {
	Stats         Stats
	CategoryStats map[quiz.Category]CategoryStats
	Achievements  []Achievement
	RecentGames   []GameRecord
	Settings      Settings
}

// HasAchievement reports whether the given achievement is unlocked.
func (v View) HasAchievement(id string) bool {
	for _, a := range v.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
