package quiz

import "math"

// speedBonusWindow is the strict upper bound for the speed bonus.
// Answering in exactly 5.0s does not qualify.
const speedBonusWindow = 5.0

const speedBonusFactor = 1.5

// Evaluation is the outcome of scoring one answer.
type Evaluation struct {
	IsCorrect        bool
	PointsAwarded    int
	CorrectIndex     int
	Explanation      string
	TimeBonusApplied bool
}

// Evaluate scores a selected option against a question. A nil selected
// index means the question timed out and is always incorrect. Correct
// answers earn the question's base points, multiplied by 1.5 and
// floored when answered in under five seconds.
//
// Pure function: no clock, no I/O.
func Evaluate(q *Question, selected *int, timeToAnswerSeconds float64) Evaluation {
	ev := Evaluation{
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
	}

	if selected == nil || *selected != q.CorrectIndex {
		return ev
	}

	ev.IsCorrect = true
	ev.PointsAwarded = q.BasePoints
	if timeToAnswerSeconds < speedBonusWindow {
		ev.PointsAwarded = int(math.Floor(float64(ev.PointsAwarded) * speedBonusFactor))
		ev.TimeBonusApplied = true
	}
	return ev
}
