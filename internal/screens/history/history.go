package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/store"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

type historyLoadedMsg struct {
	Games []store.GameEvent
	Err   error
}

// HistoryScreen lists past games from the append-only event log, which
// reaches further back than the ledger's capped recent-games list.
type HistoryScreen struct {
	events   store.EventRepo
	games    []store.GameEvent
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		games, err := s.events.RecentGameEvents(context.Background(), 50)
		return historyLoadedMsg{Games: games, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.games = msg.Games
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.games) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Play one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.games {
		dateStr := g.PlayedAt.Format("Jan 02, 2006")
		mins := int(g.DurationSeconds) / 60
		secs := int(g.DurationSeconds) % 60

		var accuracy float64
		if g.TotalQuestions > 0 {
			accuracy = float64(g.CorrectAnswers) / float64(g.TotalQuestions) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-8s %-6s  %d pts  %d/%d (%.0f%%)  %d:%02d  +%d XP",
			prefix, dateStr, g.Category, g.Difficulty,
			g.Score, g.CorrectAnswers, g.TotalQuestions, accuracy,
			mins, secs, g.XPGained)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
