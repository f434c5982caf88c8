package questions

import (
	"context"
	"fmt"
	"os"

	"github.com/afuentes/quizcoach/internal/quiz"
)

// FallbackSource tries a primary source and degrades to a fallback on
// any failure or empty result. The primary's error is logged, never
// surfaced: question delivery staying up matters more than why the
// backend was unreachable.
type FallbackSource struct {
	primary  Source
	fallback Source
}

// NewFallback wraps primary with fallback. A nil primary means the
// fallback serves every request.
func NewFallback(primary, fallback Source) *FallbackSource {
	return &FallbackSource{primary: primary, fallback: fallback}
}

func (f *FallbackSource) Fetch(ctx context.Context, req Request) ([]quiz.Question, error) {
	if f.primary != nil {
		qs, err := f.primary.Fetch(ctx, req)
		if err == nil && len(qs) > 0 {
			return qs, nil
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: question fetch failed, using local bank: %v\n", err)
		}
	}
	return f.fallback.Fetch(ctx, req)
}
