package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/ui/components"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

// StatsScreen shows the accumulated scoreboard and per-category
// breakdown.
type StatsScreen struct {
	ledgerSvc *ledger.Service
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen.
func New(ledgerSvc *ledger.Service) *StatsScreen {
	return &StatsScreen{ledgerSvc: ledgerSvc}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	view := s.ledgerSvc.View()
	st := view.Stats

	var b strings.Builder
	b.WriteString("\n")

	if st.TotalGamesPlayed == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Play one!")
	}

	// Level block.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Level %d", st.Level)))
	b.WriteString("\n")

	span := st.XPIntoLevel + st.XPToNextLevel
	frac := 0.0
	if span > 0 {
		frac = float64(st.XPIntoLevel) / float64(span)
	}
	bar := components.NewProgressBar("", frac, false, min(width-30, 40)).View()
	xpHint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d XP", st.XPIntoLevel, span))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar+xpHint))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Games played", fmt.Sprintf("%d", st.TotalGamesPlayed)},
		{"Best score", fmt.Sprintf("%d", st.BestScore)},
		{"Total points", fmt.Sprintf("%d", st.TotalPoints)},
		{"Average score", fmt.Sprintf("%.1f", st.AverageScore)},
		{"Accuracy", fmt.Sprintf("%.0f%% (%d/%d)", st.Accuracy, st.TotalCorrectAnswers, st.TotalQuestionsAnswered)},
		{"Current streak", fmt.Sprintf("%d perfect games", st.CurrentStreak)},
		{"Longest streak", fmt.Sprintf("%d", st.LongestStreak)},
		{"Experience", fmt.Sprintf("%d XP", st.ExperiencePoints)},
	}
	for _, r := range rows {
		line := fmt.Sprintf("%-16s %s",
			r.label, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}

	if len(view.CategoryStats) > 0 {
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Categories")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		// Stable order: known categories first.
		order := []quiz.Category{quiz.CategoryGeneral, quiz.CategoryCoaching, quiz.CategoryWellness}
		seen := make(map[quiz.Category]bool)
		for _, cat := range order {
			seen[cat] = true
		}
		for cat := range view.CategoryStats {
			if !seen[cat] {
				order = append(order, cat)
			}
		}

		for _, cat := range order {
			cs, ok := view.CategoryStats[cat]
			if !ok {
				continue
			}
			line := fmt.Sprintf("  %-10s %d games   best %d   %.0f%% accuracy",
				cat, cs.GamesPlayed, cs.BestScore, cs.Accuracy)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
