package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// questionsEnvelope tolerates both {"questions":[...]} and a bare
// array as the response body.
type questionsEnvelope struct {
	Questions []json.RawMessage `json:"questions"`
}

// FetchQuestions retrieves raw question objects from the backend.
// Items are returned undecoded; the caller normalizes the varying
// field shapes into the canonical question form.
func (c *Client) FetchQuestions(ctx context.Context, category, difficulty string, count int) ([]json.RawMessage, error) {
	query := url.Values{}
	query.Set("category", category)
	query.Set("difficulty", difficulty)
	query.Set("count", strconv.Itoa(count))

	var raw json.RawMessage
	if err := c.getJSON(ctx, "/minigame/questions", query, &raw); err != nil {
		return nil, err
	}

	// Bare array response.
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	// Enveloped response.
	var env questionsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("questions response: unexpected shape: %w", err)
	}
	return env.Questions, nil
}
