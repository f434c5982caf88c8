package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afuentes/quizcoach/internal/questions"
	"github.com/afuentes/quizcoach/internal/quiz"
)

// TimeoutEvent signals that a question's countdown expired and the
// engine auto-submitted it as incorrect. The snapshot reflects the
// state after the auto-submission.
type TimeoutEvent struct {
	QuestionIndex int
	Snapshot      Snapshot
}

// Engine drives one quiz playthrough. It owns the mutable session
// state; all mutation goes through Start, Submit and the internal
// timeout path, serialized by a mutex. Each question's countdown is an
// engine-owned cancellable timer: answering (or timing out) a question
// invalidates its timer before the next one is armed.
type Engine struct {
	source questions.Source
	now    func() time.Time

	mu        sync.Mutex
	id        string
	state     State
	config    Config
	questions []quiz.Question
	current   int
	score     int
	answerLog []AnswerRecord
	startedAt time.Time
	endedAt   time.Time
	shownAt   time.Time
	timer     *time.Timer
	closed    bool

	timeouts chan TimeoutEvent
}

// NewEngine creates an engine for a single playthrough. One engine
// serves exactly one session; start a new engine for the next game.
func NewEngine(source questions.Source) *Engine {
	return &Engine{
		source:   source,
		now:      time.Now,
		id:       uuid.NewString(),
		state:    StateNotStarted,
		timeouts: make(chan TimeoutEvent, 8),
	}
}

// Timeouts exposes auto-submission events for the presentation layer
// to select on.
func (e *Engine) Timeouts() <-chan TimeoutEvent {
	return e.timeouts
}

// Start fetches questions and moves the session to AwaitingAnswer at
// index 0. Valid only from NotStarted; a failed Start leaves the
// session in NotStarted so the caller can retry.
func (e *Engine) Start(ctx context.Context, cfg Config) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateNotStarted {
		return Snapshot{}, fmt.Errorf("start from %s: %w", e.state, ErrInvalidTransition)
	}

	qs, err := e.source.Fetch(ctx, questions.Request{
		Category:   cfg.Category,
		Difficulty: cfg.Difficulty,
		Count:      cfg.QuestionCount,
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch questions: %w", err)
	}
	if len(qs) == 0 {
		return Snapshot{}, ErrNoQuestions
	}

	if cfg.TimeLimitSeconds > 0 {
		for i := range qs {
			qs[i].TimeLimitSeconds = cfg.TimeLimitSeconds
		}
	}

	e.config = cfg
	e.questions = qs
	e.current = 0
	e.score = 0
	e.answerLog = make([]AnswerRecord, 0, len(qs))
	e.startedAt = e.now()
	e.shownAt = e.startedAt
	e.state = StateAwaitingAnswer
	e.armTimerLocked()

	return e.snapshotLocked(), nil
}

// Submit scores an answer for the question at questionIndex. A nil
// selected index means the caller reports a timeout. Valid only from
// AwaitingAnswer; a questionIndex that was already scored (late tap
// racing a timeout) is rejected with ErrAlreadyAnswered. That holds
// even when the race was on the last question and the timeout moved
// the session to Finished.
func (e *Engine) Submit(questionIndex int, selected *int, timeToAnswerSeconds float64) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if questionIndex >= 0 && questionIndex < len(e.answerLog) {
		return Snapshot{}, fmt.Errorf("question %d already scored: %w",
			questionIndex, ErrAlreadyAnswered)
	}
	if e.state != StateAwaitingAnswer {
		return Snapshot{}, fmt.Errorf("submit from %s: %w", e.state, ErrInvalidTransition)
	}
	if questionIndex != e.current {
		return Snapshot{}, fmt.Errorf("submit for question %d, current is %d: %w",
			questionIndex, e.current, ErrAlreadyAnswered)
	}

	e.applyAnswerLocked(selected, timeToAnswerSeconds)
	return e.snapshotLocked(), nil
}

// Summary returns the session result. Valid only from Finished.
func (e *Engine) Summary() (Summary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateFinished {
		return Summary{}, fmt.Errorf("summary from %s: %w", e.state, ErrInvalidTransition)
	}

	correct := 0
	for _, rec := range e.answerLog {
		if rec.IsCorrect {
			correct++
		}
	}

	log := make([]AnswerRecord, len(e.answerLog))
	copy(log, e.answerLog)

	return Summary{
		SessionID:       e.id,
		Score:           e.score,
		CorrectAnswers:  correct,
		TotalQuestions:  len(e.questions),
		DurationSeconds: e.endedAt.Sub(e.startedAt).Seconds(),
		Category:        e.config.Category,
		Difficulty:      e.config.Difficulty,
		AnswerLog:       log,
	}, nil
}

// Snapshot returns a read-only copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Stop cancels any pending countdown and closes the timeout channel so
// listeners unblock. Call when the session is finished or abandoned;
// no timeout events are published after Stop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if !e.closed {
		e.closed = true
		close(e.timeouts)
	}
}

// applyAnswerLocked scores the current question, appends the record and
// advances the session. Append and advance are one atomic step, which
// keeps the answer-log length equal to the current index while the
// session is live.
func (e *Engine) applyAnswerLocked(selected *int, timeToAnswerSeconds float64) {
	q := &e.questions[e.current]
	ev := quiz.Evaluate(q, selected, timeToAnswerSeconds)

	e.answerLog = append(e.answerLog, AnswerRecord{
		QuestionID:          q.ID,
		SelectedIndex:       selected,
		IsCorrect:           ev.IsCorrect,
		PointsAwarded:       ev.PointsAwarded,
		TimeToAnswerSeconds: timeToAnswerSeconds,
		AnsweredAt:          e.now(),
	})
	e.score += ev.PointsAwarded

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	if e.current == len(e.questions)-1 {
		e.state = StateFinished
		e.endedAt = e.now()
		return
	}

	e.current++
	e.shownAt = e.now()
	e.armTimerLocked()
}

// armTimerLocked schedules the auto-submit for the current question.
// The callback re-checks the question index under the lock, so a timer
// that fires after its question was answered does nothing.
func (e *Engine) armTimerLocked() {
	index := e.current
	limit := time.Duration(e.questions[index].TimeLimitSeconds) * time.Second
	e.timer = time.AfterFunc(limit, func() {
		e.fireTimeout(index)
	})
}

// fireTimeout auto-submits the question at index as incorrect, exactly
// once: a stale fire (question already answered or session finished)
// is discarded.
func (e *Engine) fireTimeout(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateAwaitingAnswer || e.current != index {
		return
	}

	limit := float64(e.questions[index].TimeLimitSeconds)
	e.applyAnswerLocked(nil, limit)

	if e.closed {
		return
	}
	// Non-blocking: the channel is a wake-up signal, the snapshot is
	// always retrievable from the engine.
	select {
	case e.timeouts <- TimeoutEvent{QuestionIndex: index, Snapshot: e.snapshotLocked()}:
	default:
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:       e.id,
		State:           e.state,
		Config:          e.config,
		CurrentIndex:    e.current,
		TotalQuestions:  len(e.questions),
		Score:           e.score,
		StartedAt:       e.startedAt,
		EndedAt:         e.endedAt,
		QuestionShownAt: e.shownAt,
	}

	snap.AnswerLog = make([]AnswerRecord, len(e.answerLog))
	copy(snap.AnswerLog, e.answerLog)

	if e.state == StateAwaitingAnswer {
		q := e.questions[e.current]
		snap.CurrentQuestion = &q
	}
	return snap
}
