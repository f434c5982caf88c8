package session

import "github.com/afuentes/quizcoach/internal/quiz"

// Summary is the fixed-shape result of one finished session, consumed
// by the progress ledger.
type Summary struct {
	SessionID       string
	Score           int
	CorrectAnswers  int
	TotalQuestions  int
	DurationSeconds float64
	Category        quiz.Category
	Difficulty      quiz.Difficulty
	AnswerLog       []AnswerRecord
}

// Perfect reports whether every question was answered correctly.
func (s Summary) Perfect() bool {
	return s.TotalQuestions > 0 && s.CorrectAnswers == s.TotalQuestions
}
