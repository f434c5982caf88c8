package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/session"
	"github.com/afuentes/quizcoach/internal/ui/components"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

// ResultsScreen shows the outcome of one finished game: score, XP,
// level progress and any achievements the game unlocked.
type ResultsScreen struct {
	summary  session.Summary
	view     ledger.View
	xpGained int
	newBest  bool
	unlocked []ledger.Achievement
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen.
func New(summary session.Summary, view ledger.View, xpGained int, newBest bool, unlocked []ledger.Achievement) *ResultsScreen {
	return &ResultsScreen{
		summary:  summary,
		view:     view,
		xpGained: xpGained,
		newBest:  newBest,
		unlocked: unlocked,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder
	b.WriteString("\n")

	title := "Game complete!"
	if sum.Perfect() {
		title = "Perfect round! 🎉"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d", sum.Score)
	if s.newBest {
		scoreLine += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("   ★ NEW BEST")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	mins := int(sum.DurationSeconds) / 60
	secs := int(sum.DurationSeconds) % 60
	accuracy := 0.0
	if sum.TotalQuestions > 0 {
		accuracy = float64(sum.CorrectAnswers) / float64(sum.TotalQuestions) * 100
	}
	statsLine := fmt.Sprintf("Correct: %d/%d        Accuracy: %.0f%%        Time: %d:%02d",
		sum.CorrectAnswers, sum.TotalQuestions, accuracy, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// XP and level progress.
	stats := s.view.Stats
	xpLine := fmt.Sprintf("+%d XP        Level %d", s.xpGained, stats.Level)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(xpLine))
	b.WriteString("\n")

	span := stats.XPIntoLevel + stats.XPToNextLevel
	frac := 0.0
	if span > 0 {
		frac = float64(stats.XPIntoLevel) / float64(span)
	}
	bar := components.NewProgressBar("", frac, false, min(width-20, 40)).View()
	levelHint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d XP to level %d", stats.XPToNextLevel, stats.Level+1))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar+levelHint))
	b.WriteString("\n")

	if len(s.unlocked) > 0 {
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements unlocked")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range s.unlocked {
			def := ledger.DefByID(a.ID)
			if def == nil {
				continue
			}
			line := fmt.Sprintf("  %s %s — %s", def.Icon, def.Name, def.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
