package newgame

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/questions"
	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/remote"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/screens/game"
	"github.com/afuentes/quizcoach/internal/session"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

type step int

const (
	stepCategory step = iota
	stepDifficulty
	stepCount
)

var difficulties = []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyMedium, quiz.DifficultyHard}
var counts = []int{5, 10, 15}

// NewGameScreen walks the player through category, difficulty and
// round length, then starts the game.
type NewGameScreen struct {
	source      questions.Source
	ledgerSvc   *ledger.Service
	statsClient *remote.Client
	catalog     []questions.CategoryInfo

	step       step
	category   int
	difficulty int
	count      int
}

var _ screen.Screen = (*NewGameScreen)(nil)
var _ screen.KeyHintProvider = (*NewGameScreen)(nil)

// New creates the game setup screen. The default difficulty comes from
// the player's saved settings.
func New(source questions.Source, ledgerSvc *ledger.Service, statsClient *remote.Client, catalog []questions.CategoryInfo) *NewGameScreen {
	s := &NewGameScreen{
		source:      source,
		ledgerSvc:   ledgerSvc,
		statsClient: statsClient,
		catalog:     catalog,
		count:       1, // default 10 questions
	}
	pref := ledgerSvc.View().Settings.Difficulty
	for i, d := range difficulties {
		if d == pref {
			s.difficulty = i
		}
	}
	return s
}

func (s *NewGameScreen) Init() tea.Cmd {
	return nil
}

func (s *NewGameScreen) Title() string {
	return "New Game"
}

func (s *NewGameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NewGameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		if s.step > stepCategory {
			s.step--
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)

	case "enter":
		if s.step < stepCount {
			s.step++
			return s, nil
		}
		return s, s.startGame()
	}
	return s, nil
}

func (s *NewGameScreen) move(delta int) {
	clamp := func(v, n int) int {
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}
	switch s.step {
	case stepCategory:
		s.category = clamp(s.category+delta, len(s.catalog))
	case stepDifficulty:
		s.difficulty = clamp(s.difficulty+delta, len(difficulties))
	case stepCount:
		s.count = clamp(s.count+delta, len(counts))
	}
}

func (s *NewGameScreen) startGame() tea.Cmd {
	settings := s.ledgerSvc.View().Settings
	cfg := session.Config{
		Category:         s.catalog[s.category].ID,
		Difficulty:       difficulties[s.difficulty],
		QuestionCount:    counts[s.count],
		TimeLimitSeconds: settings.TimePerQuestionSeconds,
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: game.New(s.source, s.ledgerSvc, s.statsClient, cfg),
		}
	}
}

func (s *NewGameScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	var prompt string
	var options []string
	var selected int

	switch s.step {
	case stepCategory:
		prompt = "Pick a category"
		for _, c := range s.catalog {
			options = append(options, fmt.Sprintf("%s  %s", c.Icon, c.Name))
		}
		selected = s.category
	case stepDifficulty:
		prompt = "Pick a difficulty"
		for _, d := range difficulties {
			options = append(options, titleCase(string(d)))
		}
		selected = s.difficulty
	case stepCount:
		prompt = "How many questions?"
		for _, n := range counts {
			options = append(options, fmt.Sprintf("%d questions", n))
		}
		selected = s.count
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(prompt))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, opt := range options {
		if i == selected {
			list.WriteString(theme.Selected.Render("  ▸ " + opt))
		} else {
			list.WriteString(theme.Unselected.Render("    " + opt))
		}
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of 3", int(s.step)+1)))

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
