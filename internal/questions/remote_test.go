package questions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/remote"
)

func TestValidateWireItem_AcceptsFieldVariants(t *testing.T) {
	valid := []string{
		`{"question":"Q?","options":["a","b"],"correctAnswer":0}`,
		`{"text":"Q?","answers":["a","b"],"correct":1}`,
		`{"question":"Q?","answers":["a","b"],"correctAnswer":0}`,
	}
	for _, body := range valid {
		assert.NoError(t, validateWireItem(json.RawMessage(body)), body)
	}

	invalid := []string{
		`{"options":["a","b"],"correctAnswer":0}`,
		`{"question":"Q?","correctAnswer":0}`,
		`{"question":"Q?","options":["a","b"]}`,
		`"just a string"`,
	}
	for _, body := range invalid {
		assert.Error(t, validateWireItem(json.RawMessage(body)), body)
	}
}

func TestRemoteSourceSkipsMalformedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"questions":[
			{"question":"Good one?","options":["a","b","c"],"correctAnswer":2,"difficulty":"easy"},
			{"options":["a","b"],"correctAnswer":0},
			{"text":"Alt fields?","answers":["x","y"],"correct":1}
		]}`))
	}))
	defer srv.Close()

	src := NewRemoteSource(remote.NewClient(srv.URL, 0))
	qs, err := src.Fetch(context.Background(), Request{
		Category:   quiz.CategoryGeneral,
		Difficulty: quiz.DifficultyMedium,
		Count:      5,
	})
	require.NoError(t, err)
	require.Len(t, qs, 2, "malformed item should be skipped")

	assert.Equal(t, "Good one?", qs[0].Prompt)
	assert.Equal(t, 2, qs[0].CorrectIndex)
	assert.Equal(t, quiz.DifficultyEasy, qs[0].Difficulty)

	assert.Equal(t, "Alt fields?", qs[1].Prompt)
	assert.Equal(t, 1, qs[1].CorrectIndex)
	assert.Equal(t, quiz.CategoryGeneral, qs[1].Category, "fallback category applied")
	assert.Equal(t, quiz.DifficultyMedium, qs[1].Difficulty, "fallback difficulty applied")
}

func TestRemoteSourceTruncatesToCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"question":"1?","options":["a","b"],"correctAnswer":0},
			{"question":"2?","options":["a","b"],"correctAnswer":0},
			{"question":"3?","options":["a","b"],"correctAnswer":0}
		]`))
	}))
	defer srv.Close()

	src := NewRemoteSource(remote.NewClient(srv.URL, 0))
	qs, err := src.Fetch(context.Background(), Request{Count: 2})
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}
