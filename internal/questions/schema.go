package questions

import "github.com/afuentes/quizcoach/internal/llm"

// BatchSchema defines the JSON schema for LLM question generation
// responses: an object holding a list of multiple-choice questions.
var BatchSchema = &llm.Schema{
	Name:        "quiz-batch",
	Description: "A batch of multiple choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the player",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the correct answer",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
