package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_DefaultBatchIsWellFormed(t *testing.T) {
	mock := NewMockProvider()

	resp, err := mock.Generate(context.Background(), Request{Prompt: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var batch struct {
		Questions []struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer int      `json:"correctAnswer"`
			Explanation   string   `json:"explanation"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		t.Fatalf("default batch is not valid JSON: %v", err)
	}
	if len(batch.Questions) == 0 {
		t.Fatal("default batch is empty")
	}
	for i, q := range batch.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d: %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			t.Errorf("question %d: correctAnswer = %d", i, q.CorrectAnswer)
		}
		if q.Question == "" || q.Explanation == "" {
			t.Errorf("question %d: missing text", i)
		}
	}
}

func TestMockProvider_ScriptConsumedInOrder(t *testing.T) {
	wantErr := &UnavailableError{Err: errors.New("scripted outage")}
	mock := NewMockProvider().
		Reply(`{"first":true}`).
		Fail(wantErr)

	resp, err := mock.Generate(context.Background(), Request{Prompt: "one"})
	if err != nil || string(resp.Content) != `{"first":true}` {
		t.Fatalf("first turn = %s, %v", resp.Content, err)
	}

	if _, err := mock.Generate(context.Background(), Request{Prompt: "two"}); !errors.Is(err, wantErr) {
		t.Fatalf("second turn err = %v, want scripted failure", err)
	}

	// Script exhausted: back to the default batch.
	resp, err = mock.Generate(context.Background(), Request{Prompt: "three"})
	if err != nil || len(resp.Content) == 0 {
		t.Fatalf("third turn = %s, %v", resp.Content, err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
	if mock.Requests[1].Prompt != "two" {
		t.Errorf("recorded prompt = %q", mock.Requests[1].Prompt)
	}
}
