package questions

import (
	"context"

	"github.com/afuentes/quizcoach/internal/quiz"
)

// Request describes what kind of questions a caller wants.
type Request struct {
	Category   quiz.Category
	Difficulty quiz.Difficulty
	Count      int
}

// Source resolves quiz questions for a request. Implementations may
// return fewer questions than requested; callers must handle short
// results. A zero-length result with a nil error is valid.
type Source interface {
	Fetch(ctx context.Context, req Request) ([]quiz.Question, error)
}
