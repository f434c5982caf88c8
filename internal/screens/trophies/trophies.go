package trophies

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

// TrophiesScreen lists every achievement, unlocked or not.
type TrophiesScreen struct {
	ledgerSvc *ledger.Service
}

var _ screen.Screen = (*TrophiesScreen)(nil)
var _ screen.KeyHintProvider = (*TrophiesScreen)(nil)

// New creates a trophies screen.
func New(ledgerSvc *ledger.Service) *TrophiesScreen {
	return &TrophiesScreen{ledgerSvc: ledgerSvc}
}

func (s *TrophiesScreen) Init() tea.Cmd {
	return nil
}

func (s *TrophiesScreen) Title() string {
	return "Trophies"
}

func (s *TrophiesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrophiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TrophiesScreen) View(width, height int) string {
	view := s.ledgerSvc.View()

	unlockedAt := make(map[string]string, len(view.Achievements))
	for _, a := range view.Achievements {
		unlockedAt[a.ID] = a.UnlockedAt.Format("Jan 02, 2006")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d unlocked", len(view.Achievements), len(ledger.Achievements))))
	b.WriteString("\n\n")

	for _, def := range ledger.Achievements {
		if date, ok := unlockedAt[def.ID]; ok {
			line := fmt.Sprintf("  %s %-14s %s", def.Icon, def.Name, def.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)+
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+date)))
		} else {
			line := fmt.Sprintf("  🔒 %-14s %s", def.Name, def.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
