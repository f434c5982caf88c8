package store

import (
	"context"
	"time"
)

// LedgerData is the serialized form of the progress ledger. Domain
// code converts between this and its in-memory types; the store only
// moves the blob.
type LedgerData struct {
	Version       int                           `json:"version"`
	Stats         GameStatsData                 `json:"stats"`
	CategoryStats map[string]*CategoryStatsData `json:"categoryStats,omitempty"`
	Achievements  []AchievementData             `json:"achievements,omitempty"`
	RecentGames   []GameRecordData              `json:"recentGames,omitempty"`
	Settings      GameSettingsData              `json:"settings"`
}

// GameStatsData holds the global accumulated counters. Derived values
// (accuracy, average score, level) are recomputed on load, never stored.
type GameStatsData struct {
	TotalGamesPlayed       int `json:"totalGamesPlayed"`
	BestScore              int `json:"bestScore"`
	CurrentStreak          int `json:"currentStreak"`
	LongestStreak          int `json:"longestStreak"`
	TotalPoints            int `json:"totalPoints"`
	TotalCorrectAnswers    int `json:"totalCorrectAnswers"`
	TotalQuestionsAnswered int `json:"totalQuestionsAnswered"`
	ExperiencePoints       int `json:"experiencePoints"`
}

// CategoryStatsData mirrors GameStatsData scoped to one category.
type CategoryStatsData struct {
	GamesPlayed    int `json:"gamesPlayed"`
	TotalScore     int `json:"totalScore"`
	BestScore      int `json:"bestScore"`
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
}

// AchievementData records one unlocked achievement.
type AchievementData struct {
	ID         string `json:"id"`
	UnlockedAt string `json:"unlockedAt"` // RFC3339
}

// GameRecordData is one entry of the recent-games history.
type GameRecordData struct {
	ID               string  `json:"id"`
	Score            int     `json:"score"`
	CorrectAnswers   int     `json:"correctAnswers"`
	TotalQuestions   int     `json:"totalQuestions"`
	Category         string  `json:"category"`
	Difficulty       string  `json:"difficulty"`
	TimeTakenSeconds float64 `json:"timeTaken"`
	XPGained         int     `json:"xpGained"`
	PlayedAt         string  `json:"playedAt"` // RFC3339
}

// GameSettingsData holds user-adjustable game preferences.
type GameSettingsData struct {
	SoundEnabled       bool   `json:"soundEnabled"`
	HapticEnabled      bool   `json:"hapticEnabled"`
	AnimationsEnabled  bool   `json:"animationsEnabled"`
	Difficulty         string `json:"difficulty"`
	TimePerQuestionSec int    `json:"timePerQuestion"`
}

// LedgerRepo persists the ledger blob.
type LedgerRepo interface {
	// Save writes the full ledger state, replacing any previous one.
	Save(ctx context.Context, data *LedgerData) error

	// Load returns the stored ledger, or nil if none exists yet.
	Load(ctx context.Context) (*LedgerData, error)
}

// GameEventData captures one finished playthrough for the audit log.
type GameEventData struct {
	SessionID       string
	Category        string
	Difficulty      string
	Score           int
	CorrectAnswers  int
	TotalQuestions  int
	DurationSeconds float64
	XPGained        int
}

// GameEvent is a stored game event row.
type GameEvent struct {
	ID       int64
	PlayedAt time.Time
	GameEventData
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the event tables.
type EventRepo interface {
	// AppendGameEvent records a finished session.
	AppendGameEvent(ctx context.Context, data GameEventData) error

	// RecentGameEvents returns the most recent game events, newest first.
	RecentGameEvents(ctx context.Context, limit int) ([]GameEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
