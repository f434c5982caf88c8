package llm

import "context"

// Purpose labels what a generation was for in the event log.
type Purpose string

const (
	// PurposeQuestionBatch marks generations that produce a quiz
	// question batch for a session.
	PurposeQuestionBatch Purpose = "question_batch"
)

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose attaches a purpose label for the logging decorator.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, p)
}

// PurposeFrom reads the purpose label, "unspecified" when absent.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey).(Purpose); ok {
		return p
	}
	return "unspecified"
}
