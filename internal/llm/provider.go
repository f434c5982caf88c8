package llm

import (
	"context"
	"encoding/json"
)

// Provider generates quiz content from a prompt. Implementations talk
// to one model; cross-cutting behavior (retries, event logging) is
// layered on by decorators, so callers always hold a plain Provider.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema
	// the provider asks the model for structured output and validates
	// what comes back, so Content is schema-conformant JSON on success.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model, for the event log.
	ModelID() string
}

// Request is a single-turn generation. Question batches carry no
// conversation state, so there is no message history: just the system
// role and the user prompt.
type Request struct {
	// System sets the model's role and the generation rules.
	System string

	// Prompt is the user turn, typically the batch parameters.
	Prompt string

	// Schema the output must conform to, or nil for free text.
	Schema *Schema

	// MaxTokens caps the output length.
	MaxTokens int

	// Temperature in [0, 1]; zero means the provider default.
	Temperature float64
}

// Response is a completed generation.
type Response struct {
	// Content is the model output, schema-validated when the request
	// asked for structured output.
	Content json.RawMessage

	// Model that actually served the request, which may be more
	// specific than the configured alias.
	Model string

	Usage Usage
}

// Usage is the token count for one generation.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// modelFor resolves a friendly alias to a provider model ID. Unknown
// names pass through so a full model ID works in config directly.
func modelFor(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
