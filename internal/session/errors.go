package session

import "errors"

var (
	// ErrNoQuestions is returned by Start when the question source
	// yields zero questions. The session stays in NotStarted so the
	// caller can retry with a fresh Start.
	ErrNoQuestions = errors.New("no questions available")

	// ErrInvalidTransition reports an operation called in the wrong
	// state. This is an integration bug in the caller and is never
	// swallowed.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrAlreadyAnswered reports a submission for a question that has
	// already been scored, e.g. a late tap racing a timeout.
	ErrAlreadyAnswered = errors.New("question already answered")
)
