package game

import (
	"time"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/session"
)

// startedMsg is sent when the engine finished fetching questions.
type startedMsg struct {
	Snapshot session.Snapshot
	Err      error
}

// tickMsg is sent every 250ms to redraw the countdown.
type tickMsg time.Time

// timeoutMsg wraps an engine auto-submission event. ok is false when
// the engine's timeout channel closed.
type timeoutMsg struct {
	Event session.TimeoutEvent
	ok    bool
}

// feedbackDoneMsg dismisses the answer feedback overlay. seq ties the
// auto-dismiss timer to the feedback it was armed for, so a stale timer
// can't cut a later overlay short.
type feedbackDoneMsg struct {
	seq int
}

// finishedMsg carries the result of the end-of-game ledger fold.
type finishedMsg struct {
	Summary       session.Summary
	View          ledger.View
	XPGained      int
	NewBest       bool
	NewlyUnlocked []ledger.Achievement
	Err           error
}
