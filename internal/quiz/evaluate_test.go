package quiz

import "testing"

func testQuestion() *Question {
	return &Question{
		ID:               "q1",
		Prompt:           "What is the capital of France?",
		Options:          []string{"London", "Berlin", "Paris", "Madrid"},
		CorrectIndex:     2,
		Category:         CategoryGeneral,
		Difficulty:       DifficultyEasy,
		Explanation:      "Paris is the capital of France.",
		TimeLimitSeconds: DefaultTimeLimitSeconds,
		BasePoints:       10,
	}
}

func TestEvaluate_Correct(t *testing.T) {
	q := testQuestion()
	sel := 2
	ev := Evaluate(q, &sel, 10)
	if !ev.IsCorrect {
		t.Error("expected correct")
	}
	if ev.PointsAwarded != 10 {
		t.Errorf("PointsAwarded = %d, want 10", ev.PointsAwarded)
	}
	if ev.TimeBonusApplied {
		t.Error("bonus applied at 10s")
	}
}

func TestEvaluate_Incorrect(t *testing.T) {
	q := testQuestion()
	sel := 0
	ev := Evaluate(q, &sel, 1)
	if ev.IsCorrect {
		t.Error("expected incorrect")
	}
	if ev.PointsAwarded != 0 {
		t.Errorf("PointsAwarded = %d, want 0", ev.PointsAwarded)
	}
	if ev.CorrectIndex != 2 {
		t.Errorf("CorrectIndex = %d, want 2", ev.CorrectIndex)
	}
}

func TestEvaluate_Timeout(t *testing.T) {
	q := testQuestion()
	ev := Evaluate(q, nil, float64(q.TimeLimitSeconds))
	if ev.IsCorrect {
		t.Error("timeout must be incorrect")
	}
	if ev.PointsAwarded != 0 {
		t.Errorf("PointsAwarded = %d, want 0", ev.PointsAwarded)
	}
}

func TestEvaluate_SpeedBonusBoundary(t *testing.T) {
	q := testQuestion()
	sel := 2

	ev := Evaluate(q, &sel, 4.999)
	if !ev.TimeBonusApplied {
		t.Error("bonus not applied at 4.999s")
	}
	if ev.PointsAwarded != 15 {
		t.Errorf("PointsAwarded = %d, want 15 (floor(10*1.5))", ev.PointsAwarded)
	}

	ev = Evaluate(q, &sel, 5.0)
	if ev.TimeBonusApplied {
		t.Error("bonus applied at exactly 5.0s")
	}
	if ev.PointsAwarded != 10 {
		t.Errorf("PointsAwarded = %d, want 10", ev.PointsAwarded)
	}
}

func TestEvaluate_BonusFloorsOddPoints(t *testing.T) {
	q := testQuestion()
	q.BasePoints = 15 // medium
	sel := 2
	ev := Evaluate(q, &sel, 2)
	if ev.PointsAwarded != 22 {
		t.Errorf("PointsAwarded = %d, want 22 (floor(15*1.5))", ev.PointsAwarded)
	}
}

func TestBasePoints(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 10},
		{DifficultyMedium, 15},
		{DifficultyHard, 20},
		{Difficulty("unknown"), 15},
	}
	for _, c := range cases {
		if got := BasePoints(c.d); got != c.want {
			t.Errorf("BasePoints(%s) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestQuestionValidate(t *testing.T) {
	q := testQuestion()
	if err := q.Validate(); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	bad := testQuestion()
	bad.Options = []string{"only one"}
	if err := bad.Validate(); err == nil {
		t.Error("single-option question accepted")
	}

	bad = testQuestion()
	bad.CorrectIndex = 4
	if err := bad.Validate(); err == nil {
		t.Error("out-of-range correct index accepted")
	}
}
