package quiz

import "fmt"

// Category identifies a question topic. The set is open-ended: the
// backend may serve categories beyond the built-in three, and the
// ledger tracks per-category stats keyed by this value.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryCoaching Category = "coaching"
	CategoryWellness Category = "wellness"
)

// Difficulty is the question difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultTimeLimitSeconds is applied when a question carries no limit.
const DefaultTimeLimitSeconds = 15

// BasePoints returns the points a correct answer is worth at the given
// difficulty. Unknown difficulties score as medium.
func BasePoints(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 20
	default:
		return 15
	}
}

// XPMultiplier returns the experience multiplier for a difficulty.
// Applied to a whole session's XP gain, floored after multiplication.
func XPMultiplier(d Difficulty) float64 {
	switch d {
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2
	default:
		return 1
	}
}

// Question is the canonical quiz item every source normalizes into.
// Downstream code (session engine, evaluator, screens) never sees the
// wire shapes the backend or the LLM produce.
type Question struct {
	ID               string
	Prompt           string
	Options          []string
	CorrectIndex     int
	Category         Category
	Difficulty       Difficulty
	Explanation      string
	TimeLimitSeconds int
	BasePoints       int
}

// Validate checks the structural invariants: at least two options and
// a correct index pointing into them.
func (q *Question) Validate() error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: need at least 2 options, got %d", q.ID, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %s: correct index %d out of range [0,%d)", q.ID, q.CorrectIndex, len(q.Options))
	}
	if q.TimeLimitSeconds <= 0 {
		return fmt.Errorf("question %s: non-positive time limit %d", q.ID, q.TimeLimitSeconds)
	}
	return nil
}
