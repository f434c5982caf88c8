package session

import (
	"time"

	"github.com/afuentes/quizcoach/internal/quiz"
)

// State is the lifecycle phase of a session. Transitions are linear:
// NotStarted → AwaitingAnswer → Finished, with AwaitingAnswer recurring
// once per question under an advancing index.
type State int

const (
	StateNotStarted State = iota
	StateAwaitingAnswer
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Config fixes the shape of a session at creation. A positive
// TimeLimitSeconds overrides every question's own countdown, which is
// how the time-per-question setting takes effect.
type Config struct {
	Category         quiz.Category
	Difficulty       quiz.Difficulty
	QuestionCount    int
	TimeLimitSeconds int
}

// AnswerRecord is the outcome of one answered (or timed-out) question.
// Created exactly once per question; immutable after creation.
type AnswerRecord struct {
	QuestionID          string
	SelectedIndex       *int // nil means the question timed out
	IsCorrect           bool
	PointsAwarded       int
	TimeToAnswerSeconds float64
	AnsweredAt          time.Time
}

// Snapshot is a read-only copy of the engine state handed to the
// presentation layer after every mutation.
type Snapshot struct {
	SessionID       string
	State           State
	Config          Config
	CurrentIndex    int
	CurrentQuestion *quiz.Question // nil unless AwaitingAnswer
	TotalQuestions  int
	Score           int
	AnswerLog       []AnswerRecord
	StartedAt       time.Time
	EndedAt         time.Time // zero until Finished
	QuestionShownAt time.Time // when the current question was presented
}

// TimeRemaining reports how long is left on the current question's
// countdown at the given instant, clamped at zero.
func (s Snapshot) TimeRemaining(now time.Time) time.Duration {
	if s.State != StateAwaitingAnswer || s.CurrentQuestion == nil {
		return 0
	}
	deadline := s.QuestionShownAt.Add(time.Duration(s.CurrentQuestion.TimeLimitSeconds) * time.Second)
	if remaining := deadline.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}
