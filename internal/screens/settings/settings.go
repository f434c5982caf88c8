package settings

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/ui/layout"
	"github.com/afuentes/quizcoach/internal/ui/theme"
)

const (
	itemSound = iota
	itemHaptic
	itemAnimations
	itemDifficulty
	itemTimeLimit
	itemCount
)

var difficultyCycle = []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyMedium, quiz.DifficultyHard}

// SettingsScreen edits the persisted game preferences. Every change is
// saved immediately.
type SettingsScreen struct {
	ledgerSvc *ledger.Service
	current   ledger.Settings
	selected  int
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a settings screen seeded with the saved preferences.
func New(ledgerSvc *ledger.Service) *SettingsScreen {
	return &SettingsScreen{
		ledgerSvc: ledgerSvc,
		current:   ledgerSvc.View().Settings,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→/Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < itemCount-1 {
			s.selected++
		}
	case "enter", "right", "l", " ":
		s.change(1)
	case "left", "h":
		s.change(-1)
	}
	return s, nil
}

func (s *SettingsScreen) change(delta int) {
	switch s.selected {
	case itemSound:
		s.current.SoundEnabled = !s.current.SoundEnabled
	case itemHaptic:
		s.current.HapticEnabled = !s.current.HapticEnabled
	case itemAnimations:
		s.current.AnimationsEnabled = !s.current.AnimationsEnabled
	case itemDifficulty:
		idx := 0
		for i, d := range difficultyCycle {
			if d == s.current.Difficulty {
				idx = i
			}
		}
		idx = (idx + delta + len(difficultyCycle)) % len(difficultyCycle)
		s.current.Difficulty = difficultyCycle[idx]
	case itemTimeLimit:
		next := s.current.TimePerQuestionSeconds + 5*delta
		if next < 5 {
			next = 5
		}
		if next > 60 {
			next = 60
		}
		s.current.TimePerQuestionSeconds = next
	}

	if err := s.ledgerSvc.UpdateSettings(context.Background(), s.current); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save settings: %v\n", err)
	}
}

func (s *SettingsScreen) View(width, height int) string {
	onOff := func(v bool) string {
		if v {
			return lipgloss.NewStyle().Foreground(theme.Success).Render("on")
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("off")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Sound", onOff(s.current.SoundEnabled)},
		{"Haptics", onOff(s.current.HapticEnabled)},
		{"Animations", onOff(s.current.AnimationsEnabled)},
		{"Default difficulty", string(s.current.Difficulty)},
		{"Time per question", fmt.Sprintf("%ds", s.current.TimePerQuestionSeconds)},
	}

	var b strings.Builder
	b.WriteString("\n\n")
	for i, r := range rows {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			style = theme.Selected
		}
		line := fmt.Sprintf("%s%-20s %s", prefix, r.label, r.value)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
