package questions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/afuentes/quizcoach/internal/llm"
	"github.com/afuentes/quizcoach/internal/quiz"
)

func TestLLMSource_ParsesBatch(t *testing.T) {
	batch := `{"questions":[
		{"question":"q1","options":["a","b","c","d"],"correctAnswer":2,"explanation":"e1"},
		{"question":"q2","options":["a","b","c","d"],"correctAnswer":0,"explanation":"e2"}
	]}`
	mock := llm.NewMockProvider().Reply(batch)
	src := NewLLMSource(mock)

	qs, err := src.Fetch(context.Background(), Request{
		Category:   quiz.CategoryCoaching,
		Difficulty: quiz.DifficultyMedium,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	if qs[0].Prompt != "q1" || qs[0].CorrectIndex != 2 {
		t.Errorf("q0 = %+v", qs[0])
	}
	if qs[0].Category != quiz.CategoryCoaching || qs[0].Difficulty != quiz.DifficultyMedium {
		t.Errorf("category/difficulty not filled: %s/%s", qs[0].Category, qs[0].Difficulty)
	}
	if qs[0].BasePoints != 15 {
		t.Errorf("basePoints = %d, want 15", qs[0].BasePoints)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMSource_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider().Reply(`{"questions":[]}`)
	src := NewLLMSource(mock)

	if _, err := src.Fetch(context.Background(), Request{Category: quiz.CategoryGeneral, Count: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Requests) != 1 {
		t.Fatalf("requests = %d", len(mock.Requests))
	}
	sent := mock.Requests[0]
	if sent.Schema != BatchSchema {
		t.Error("expected the batch schema on the request")
	}
	if sent.System == "" {
		t.Error("expected a system prompt")
	}
	if !strings.Contains(sent.Prompt, string(quiz.CategoryGeneral)) {
		t.Errorf("prompt does not carry the category: %q", sent.Prompt)
	}
}

func TestLLMSource_SkipsInvalidItems(t *testing.T) {
	batch := `{"questions":[
		{"question":"good","options":["a","b"],"correctAnswer":1,"explanation":"e"},
		{"question":"bad","options":["a","b"],"correctAnswer":5,"explanation":"e"}
	]}`
	mock := llm.NewMockProvider().Reply(batch)
	src := NewLLMSource(mock)

	qs, err := src.Fetch(context.Background(), Request{Category: quiz.CategoryGeneral, Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 || qs[0].Prompt != "good" {
		t.Errorf("qs = %+v, want only the valid question", qs)
	}
}

func TestLLMSource_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider().Fail(&llm.UnavailableError{Err: errors.New("down")})
	src := NewLLMSource(mock)

	if _, err := src.Fetch(context.Background(), Request{Count: 1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestLLMSource_TruncatesToCount(t *testing.T) {
	batch := `{"questions":[
		{"question":"q1","options":["a","b"],"correctAnswer":0,"explanation":"e"},
		{"question":"q2","options":["a","b"],"correctAnswer":0,"explanation":"e"},
		{"question":"q3","options":["a","b"],"correctAnswer":0,"explanation":"e"}
	]}`
	mock := llm.NewMockProvider().Reply(batch)
	src := NewLLMSource(mock)

	qs, err := src.Fetch(context.Background(), Request{Category: quiz.CategoryGeneral, Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
}
