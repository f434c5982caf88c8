package questions

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/afuentes/quizcoach/internal/quiz"
)

func seededBank(t *testing.T, seed uint64) *LocalBank {
	t.Helper()
	bank, err := NewLocalBank(rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return bank
}

func TestLocalBank_Loads(t *testing.T) {
	bank := seededBank(t, 1)
	if bank.Size() == 0 {
		t.Fatal("expected non-empty bank")
	}
}

func TestLocalBank_FiltersCategoryAndDifficulty(t *testing.T) {
	bank := seededBank(t, 1)
	qs, err := bank.Fetch(context.Background(), Request{
		Category:   quiz.CategoryGeneral,
		Difficulty: quiz.DifficultyEasy,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	for _, q := range qs {
		if q.Category != quiz.CategoryGeneral {
			t.Errorf("question %s: category = %s", q.ID, q.Category)
		}
		if q.Difficulty != quiz.DifficultyEasy {
			t.Errorf("question %s: difficulty = %s", q.ID, q.Difficulty)
		}
	}
}

func TestLocalBank_RelaxesDifficultyWhenShort(t *testing.T) {
	bank := seededBank(t, 1)

	// Ask for more hard questions than the bank has in any category;
	// the result should draw from the whole category instead.
	qs, err := bank.Fetch(context.Background(), Request{
		Category:   quiz.CategoryWellness,
		Difficulty: quiz.DifficultyHard,
		Count:      5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("len = %d, want 5 after relaxation", len(qs))
	}
	sawOtherDifficulty := false
	for _, q := range qs {
		if q.Category != quiz.CategoryWellness {
			t.Errorf("question %s: category = %s", q.ID, q.Category)
		}
		if q.Difficulty != quiz.DifficultyHard {
			sawOtherDifficulty = true
		}
	}
	if !sawOtherDifficulty {
		t.Error("expected relaxed result to include other difficulties")
	}
}

func TestLocalBank_ShortResultWithoutError(t *testing.T) {
	bank := seededBank(t, 1)
	qs, err := bank.Fetch(context.Background(), Request{
		Category:   quiz.CategoryWellness,
		Difficulty: quiz.DifficultyHard,
		Count:      100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) == 0 || len(qs) >= 100 {
		t.Fatalf("len = %d, want all available wellness questions", len(qs))
	}
}

func TestLocalBank_EmptyCategoryDrawsFromWholeBank(t *testing.T) {
	bank := seededBank(t, 1)
	qs, err := bank.Fetch(context.Background(), Request{Count: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("len = %d, want 10 from the unfiltered bank", len(qs))
	}
	categories := map[quiz.Category]bool{}
	for _, q := range qs {
		categories[q.Category] = true
	}
	if len(categories) < 2 {
		t.Errorf("expected a mix of categories, got %v", categories)
	}
}

func TestLocalBank_UnknownCategoryYieldsEmpty(t *testing.T) {
	bank := seededBank(t, 1)
	qs, err := bank.Fetch(context.Background(), Request{
		Category: quiz.Category("trivia"),
		Count:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("len = %d, want 0", len(qs))
	}
}

func TestLocalBank_ShuffleIsSeedable(t *testing.T) {
	req := Request{Category: quiz.CategoryGeneral, Count: 5}

	first, err := seededBank(t, 7).Fetch(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := seededBank(t, 7).Fetch(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different order at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
