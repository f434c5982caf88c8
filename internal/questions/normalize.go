package questions

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/afuentes/quizcoach/internal/quiz"
)

// Payload is the loose wire shape of a question as delivered by the
// backend or the bundled bank. Field names vary by source (question vs
// text, options vs answers, correctAnswer vs correct), so every variant
// is captured here and resolved during normalization.
type Payload struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	Answers       []string `json:"answers"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Correct       *int     `json:"correct"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
	TimeLimit     int      `json:"timeLimit"`
	Points        int      `json:"points"`
}

// Normalize converts a wire payload into a canonical Question, filling
// missing fields with defaults so downstream code never branches on
// which source a question came from.
func Normalize(p Payload, fallbackCategory quiz.Category, fallbackDifficulty quiz.Difficulty) (quiz.Question, error) {
	q := quiz.Question{
		ID:          p.ID,
		Prompt:      p.Question,
		Options:     p.Options,
		Category:    quiz.Category(p.Category),
		Difficulty:  quiz.Difficulty(p.Difficulty),
		Explanation: p.Explanation,
	}

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Prompt == "" {
		q.Prompt = p.Text
	}
	if len(q.Options) == 0 {
		q.Options = p.Answers
	}

	switch {
	case p.CorrectAnswer != nil:
		q.CorrectIndex = *p.CorrectAnswer
	case p.Correct != nil:
		q.CorrectIndex = *p.Correct
	default:
		return quiz.Question{}, fmt.Errorf("question %s: no correct answer field", q.ID)
	}

	if q.Category == "" {
		q.Category = fallbackCategory
	}
	if q.Difficulty == "" {
		q.Difficulty = fallbackDifficulty
	}

	q.TimeLimitSeconds = p.TimeLimit
	if q.TimeLimitSeconds <= 0 {
		q.TimeLimitSeconds = quiz.DefaultTimeLimitSeconds
	}

	q.BasePoints = p.Points
	if q.BasePoints <= 0 {
		q.BasePoints = quiz.BasePoints(q.Difficulty)
	}

	if err := q.Validate(); err != nil {
		return quiz.Question{}, fmt.Errorf("question %s: %w", q.ID, err)
	}
	return q, nil
}
