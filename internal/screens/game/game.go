package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/questions"
	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/remote"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/screens/results"
	"github.com/afuentes/quizcoach/internal/session"
	"github.com/afuentes/quizcoach/internal/ui/components"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseQuitConfirm
	phaseFinishing
	phaseError
)

// feedback captures what to show after one question resolves.
type feedback struct {
	question *quiz.Question
	correct  bool
	timedOut bool
	points   int
}

// GameScreen drives one playthrough. It owns a session engine, renders
// its snapshots and forwards key presses as submissions; scoring and
// advancement stay inside the engine.
type GameScreen struct {
	engine      *session.Engine
	ledgerSvc   *ledger.Service
	statsClient *remote.Client
	cfg         session.Config

	snap   session.Snapshot
	choice components.MultiChoice
	spin   spinner.Model
	phase  phase
	fb     feedback
	fbSeq  int
	errMsg string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates a game screen for one playthrough. statsClient may be
// nil; results then stay local.
func New(source questions.Source, ledgerSvc *ledger.Service, statsClient *remote.Client, cfg session.Config) *GameScreen {
	return &GameScreen{
		engine:      session.NewEngine(source),
		ledgerSvc:   ledgerSvc,
		statsClient: statsClient,
		cfg:         cfg,
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (g *GameScreen) Init() tea.Cmd {
	return tea.Batch(
		g.startGame(),
		g.spin.Tick,
		waitForTimeout(g.engine.Timeouts()),
	)
}

func (g *GameScreen) Title() string {
	return "Quiz"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch g.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep playing"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return nil
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return g.handleStarted(msg)

	case tickMsg:
		if g.phase == phaseQuestion || g.phase == phaseQuitConfirm {
			return g, tickCmd()
		}
		return g, nil

	case spinner.TickMsg:
		if g.phase == phaseLoading || g.phase == phaseFinishing {
			var cmd tea.Cmd
			g.spin, cmd = g.spin.Update(msg)
			return g, cmd
		}
		return g, nil

	case timeoutMsg:
		return g.handleTimeout(msg)

	case feedbackDoneMsg:
		if msg.seq != g.fbSeq {
			return g, nil
		}
		return g.handleFeedbackDone()

	case finishedMsg:
		return g.handleFinished(msg)

	case tea.KeyMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

// startGame fetches questions off the UI goroutine.
func (g *GameScreen) startGame() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		snap, err := g.engine.Start(ctx, g.cfg)
		return startedMsg{Snapshot: snap, Err: err}
	}
}

func (g *GameScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, session.ErrNoQuestions) {
			g.errMsg = "no questions available for this category"
		} else {
			g.errMsg = msg.Err.Error()
		}
		g.phase = phaseError
		return g, nil
	}

	g.snap = msg.Snapshot
	g.phase = phaseQuestion
	g.rebuildChoice()
	return g, tickCmd()
}

func (g *GameScreen) handleTimeout(msg timeoutMsg) (screen.Screen, tea.Cmd) {
	if !msg.ok {
		// Engine stopped; nothing left to listen for.
		return g, nil
	}

	rearm := waitForTimeout(g.engine.Timeouts())

	if g.phase != phaseQuestion && g.phase != phaseQuitConfirm {
		return g, rearm
	}
	if msg.Event.QuestionIndex != g.snap.CurrentIndex {
		return g, rearm
	}

	expired := g.snap.CurrentQuestion
	g.snap = msg.Event.Snapshot

	if g.phase == phaseQuitConfirm {
		// Keep the dialog up; just track the advanced state underneath.
		g.rebuildChoice()
		return g, rearm
	}

	g.choice.Reveal(-1)
	g.fb = feedback{question: expired, timedOut: true}
	g.phase = phaseFeedback
	g.fbSeq++
	return g, tea.Batch(rearm, feedbackDismissCmd(g.fbSeq))
}

func (g *GameScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if g.phase != phaseFeedback {
		return g, nil
	}

	if g.snap.State == session.StateFinished {
		g.phase = phaseFinishing
		return g, tea.Batch(g.finishGame(), g.spin.Tick)
	}

	g.phase = phaseQuestion
	g.rebuildChoice()
	return g, tickCmd()
}

func (g *GameScreen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress not saved: %v\n", msg.Err)
	}
	rs := results.New(msg.Summary, msg.View, msg.XPGained, msg.NewBest, msg.NewlyUnlocked)
	return g, func() tea.Msg { return router.ReplaceScreenMsg{Screen: rs} }
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch g.phase {
	case phaseError:
		return g, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			g.engine.Stop()
			return g, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			g.phase = phaseQuestion
			return g, tickCmd()
		}
		return g, nil

	case phaseFeedback:
		return g.handleFeedbackDone()

	case phaseQuestion:
		switch key {
		case "esc":
			g.phase = phaseQuitConfirm
			return g, nil
		case "enter":
			return g, g.submit(g.choice.Selected)
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if g.snap.CurrentQuestion != nil && idx < len(g.snap.CurrentQuestion.Options) {
				g.choice.Selected = idx
				return g, g.submit(idx)
			}
			return g, nil
		}
		var cmd tea.Cmd
		g.choice, cmd = g.choice.Update(msg)
		return g, cmd
	}

	return g, nil
}

// submit scores the highlighted option. A submission that loses the
// race against the countdown is dropped silently; the timeout event
// carries the authoritative outcome.
func (g *GameScreen) submit(selected int) tea.Cmd {
	q := g.snap.CurrentQuestion
	if q == nil {
		return nil
	}

	elapsed := time.Since(g.snap.QuestionShownAt).Seconds()
	answered := *q
	index := g.snap.CurrentIndex

	snap, err := g.engine.Submit(index, &selected, elapsed)
	if err != nil {
		if errors.Is(err, session.ErrAlreadyAnswered) {
			return nil
		}
		g.errMsg = err.Error()
		g.phase = phaseError
		return nil
	}

	rec := snap.AnswerLog[index]
	g.snap = snap
	g.choice.Reveal(selected)
	g.fb = feedback{
		question: &answered,
		correct:  rec.IsCorrect,
		points:   rec.PointsAwarded,
	}
	g.phase = phaseFeedback
	g.fbSeq++
	return feedbackDismissCmd(g.fbSeq)
}

// finishGame folds the summary into the ledger and pushes the result
// to the backend when one is configured. Runs off the UI goroutine.
func (g *GameScreen) finishGame() tea.Cmd {
	return func() tea.Msg {
		g.engine.Stop()

		sum, err := g.engine.Summary()
		if err != nil {
			return finishedMsg{Err: err}
		}

		before := make(map[string]bool)
		for _, a := range g.ledgerSvc.View().Achievements {
			before[a.ID] = true
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		view, applyErr := g.ledgerSvc.ApplyGameResult(ctx, sum)

		var newly []ledger.Achievement
		for _, a := range view.Achievements {
			if !before[a.ID] {
				newly = append(newly, a)
			}
		}

		xpGained := 0
		if len(view.RecentGames) > 0 && view.RecentGames[0].ID == sum.SessionID {
			xpGained = view.RecentGames[0].XPGained
		}

		if g.statsClient != nil {
			if err := g.statsClient.SubmitStats(ctx, remote.StatsSubmission{
				Score:            sum.Score,
				CorrectAnswers:   sum.CorrectAnswers,
				TotalQuestions:   sum.TotalQuestions,
				Category:         string(sum.Category),
				Difficulty:       string(sum.Difficulty),
				TimeTakenSeconds: sum.DurationSeconds,
				XPGained:         xpGained,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "warning: stats submission failed: %v\n", err)
			}
		}

		return finishedMsg{
			Summary:       sum,
			View:          view,
			XPGained:      xpGained,
			NewBest:       g.ledgerSvc.ConsumeNewBest(),
			NewlyUnlocked: newly,
			Err:           applyErr,
		}
	}
}

func (g *GameScreen) rebuildChoice() {
	if q := g.snap.CurrentQuestion; q != nil {
		g.choice = components.NewMultiChoice(q.Options, q.CorrectIndex)
	}
}

// waitForTimeout blocks on the engine's timeout channel.
func waitForTimeout(ch <-chan session.TimeoutEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		return timeoutMsg{Event: ev, ok: ok}
	}
}

// tickCmd drives the countdown redraw.
func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// feedbackDismissCmd auto-advances past the feedback overlay; any key
// skips ahead sooner.
func feedbackDismissCmd(seq int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}
