package questions

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/afuentes/quizcoach/internal/quiz"
)

//go:embed bank.json
var bankJSON []byte

// LocalBank serves questions from the bundled bank. It never fails a
// fetch: when too few questions match the requested difficulty, the
// difficulty filter is relaxed to the whole category, and a short (or
// empty) result is returned rather than an error.
type LocalBank struct {
	mu        sync.Mutex
	questions []quiz.Question
	rng       *rand.Rand
}

// NewLocalBank loads the embedded question bank. The random source is
// used for shuffling; pass nil to use an unseeded source.
func NewLocalBank(rng *rand.Rand) (*LocalBank, error) {
	var payloads []Payload
	if err := json.Unmarshal(bankJSON, &payloads); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	qs := make([]quiz.Question, 0, len(payloads))
	for _, p := range payloads {
		q, err := Normalize(p, quiz.CategoryGeneral, quiz.DifficultyMedium)
		if err != nil {
			return nil, fmt.Errorf("question bank: %w", err)
		}
		qs = append(qs, q)
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &LocalBank{questions: qs, rng: rng}, nil
}

// Fetch returns up to req.Count questions matching the request,
// uniformly shuffled.
func (b *LocalBank) Fetch(_ context.Context, req Request) ([]quiz.Question, error) {
	matches := b.filter(req.Category, req.Difficulty)

	// Relax the difficulty filter when the strict match is too small.
	if len(matches) < req.Count {
		matches = b.filter(req.Category, "")
	}

	b.mu.Lock()
	b.rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})
	b.mu.Unlock()

	if len(matches) > req.Count {
		matches = matches[:req.Count]
	}
	return matches, nil
}

// filter returns a fresh slice of bank questions matching the category
// and difficulty. An empty category or difficulty matches everything.
func (b *LocalBank) filter(category quiz.Category, difficulty quiz.Difficulty) []quiz.Question {
	var out []quiz.Question
	for _, q := range b.questions {
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Size returns the number of questions in the bank.
func (b *LocalBank) Size() int {
	return len(b.questions)
}
