package game

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ui/components"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	switch g.phase {
	case phaseError:
		return renderError(width, g.errMsg)
	case phaseLoading:
		return g.renderWaiting(width, "Fetching questions...")
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseFeedback:
		return g.renderFeedback(width)
	case phaseFinishing:
		return g.renderWaiting(width, "Saving your progress...")
	default:
		return g.renderQuestion(width)
	}
}

func (g *GameScreen) renderQuestion(width int) string {
	q := g.snap.CurrentQuestion
	if q == nil {
		return g.renderWaiting(width, "Fetching questions...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", g.snap.Config.Category, g.snap.Config.Difficulty))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   Score %d",
			g.snap.CurrentIndex+1, g.snap.TotalQuestions, g.snap.Score))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Countdown.
	remaining := g.snap.TimeRemaining(time.Now())
	limit := time.Duration(q.TimeLimitSeconds) * time.Second
	frac := 0.0
	if limit > 0 {
		frac = float64(remaining) / float64(limit)
	}
	timerLabel := fmt.Sprintf("%2.0fs", remaining.Seconds())
	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if remaining <= 5*time.Second {
		timerStyle = theme.TimerWarning
	}
	bar := components.NewProgressBar("", frac, false, min(width-16, 40)).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		timerStyle.Render(timerLabel)+"  "+bar))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.choice.View()))

	return b.String()
}

func (g *GameScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case g.fb.timedOut:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Time's up!"))
	case g.fb.correct:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct!  +%d pts", g.fb.points)))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	q := g.fb.question
	if q != nil && !g.fb.correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Options[q.CorrectIndex])))
		b.WriteString("\n\n")
	}

	if q != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.choice.View()))
		b.WriteString("\n")
	}

	if q != nil && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this game?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This game won't be recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))

	return b.String()
}

func (g *GameScreen) renderWaiting(width int, label string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + g.spin.View() + " " + label)
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
