package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/questions"
	"github.com/afuentes/quizcoach/internal/remote"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/screens/history"
	"github.com/afuentes/quizcoach/internal/screens/newgame"
	"github.com/afuentes/quizcoach/internal/screens/settings"
	"github.com/afuentes/quizcoach/internal/screens/stats"
	"github.com/afuentes/quizcoach/internal/screens/trophies"
	"github.com/afuentes/quizcoach/internal/store"
	"github.com/afuentes/quizcoach/internal/ui/components"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	ledgerSvc *ledger.Service
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and wires the menu to the other screens.
func New(source questions.Source, ledgerSvc *ledger.Service, statsClient *remote.Client, events store.EventRepo, catalog []questions.CategoryInfo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: newgame.New(source, ledgerSvc, statsClient, catalog),
				}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(ledgerSvc)}
			}
		}},
		{Label: "TROPHIES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trophies.New(ledgerSvc)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(ledgerSvc)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ledgerSvc: ledgerSvc,
		menu:      components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	view := h.ledgerSvc.View()
	s := view.Stats

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Q U I Z   T I M E"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Test your coaching knowledge"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Games %d   Best %d   Accuracy %.0f%%   XP %d",
		s.TotalGamesPlayed, s.BestScore, s.Accuracy, s.ExperiencePoints)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(statsLine)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
