package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/remote"
)

// RemoteSource fetches questions from the backend API and normalizes
// the heterogeneous wire shapes into canonical questions. Items that
// fail normalization are skipped with a warning rather than failing
// the whole batch.
type RemoteSource struct {
	client *remote.Client
}

// NewRemoteSource creates a RemoteSource backed by the given client.
func NewRemoteSource(client *remote.Client) *RemoteSource {
	return &RemoteSource{client: client}
}

func (s *RemoteSource) Fetch(ctx context.Context, req Request) ([]quiz.Question, error) {
	items, err := s.client.FetchQuestions(ctx, string(req.Category), string(req.Difficulty), req.Count)
	if err != nil {
		return nil, err
	}

	qs := make([]quiz.Question, 0, len(items))
	for _, item := range items {
		if err := validateWireItem(item); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping malformed remote question: %v\n", err)
			continue
		}
		var p Payload
		if err := json.Unmarshal(item, &p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping malformed remote question: %v\n", err)
			continue
		}
		q, err := Normalize(p, req.Category, req.Difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping invalid remote question: %v\n", err)
			continue
		}
		qs = append(qs, q)
	}

	if len(qs) > req.Count {
		qs = qs[:req.Count]
	}
	return qs, nil
}
