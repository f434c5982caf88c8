package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/afuentes/quizcoach/internal/llm"
	"github.com/afuentes/quizcoach/internal/quiz"
)

const generationSystemPrompt = `You are a quiz writer for a coaching and wellness app.

Rules:
- Generate multiple choice questions for the given category and difficulty.
- Each question has exactly 4 options and exactly one correct answer.
- Distractors should be plausible, not obviously wrong.
- Questions must be self-contained: no references to images, previous questions or external material.
- Keep prompts under 140 characters and options under 60 characters.
- The explanation briefly states why the correct answer is right.
- Do not repeat questions within the batch.`

// LLMSource generates questions with an LLM provider. It is used as
// the primary source when an API key is configured and no backend URL
// is set.
type LLMSource struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewLLMSource creates an LLMSource with generation defaults.
func NewLLMSource(provider llm.Provider) *LLMSource {
	return &LLMSource{
		provider:    provider,
		maxTokens:   2048,
		temperature: 0.7,
	}
}

func (s *LLMSource) Fetch(ctx context.Context, req Request) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionBatch)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generationSystemPrompt,
		Prompt:      buildGenerationPrompt(req),
		Schema:      BatchSchema,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var batch struct {
		Questions []Payload `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	qs := make([]quiz.Question, 0, len(batch.Questions))
	for _, p := range batch.Questions {
		q, err := Normalize(p, req.Category, req.Difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping invalid generated question: %v\n", err)
			continue
		}
		qs = append(qs, q)
	}

	if len(qs) > req.Count {
		qs = qs[:req.Count]
	}
	return qs, nil
}

// buildGenerationPrompt constructs the user prompt for a batch request.
func buildGenerationPrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", req.Category)
	fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", req.Count)
	return b.String()
}
