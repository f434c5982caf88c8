package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice renders one quiz question's options. While open it is a
// selector; after Reveal it colors the correct option green and a wrong
// pick red. A timed-out question reveals with no pick at all.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int // -1 until revealed, and on timeout
}

// NewMultiChoice creates a selector for the given options.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Selection keys are ignored once
// the answer is revealed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Reveal locks the component and records the player's pick. Pass a
// negative index for a timeout.
func (m *MultiChoice) Reveal(chosen int) {
	m.Revealed = true
	if chosen >= 0 && chosen < len(m.Options) {
		m.ChosenIndex = chosen
	} else {
		m.ChosenIndex = -1
	}
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Revealed {
			switch {
			case i == m.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == m.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}
	return s
}

// IsCorrect reports whether the revealed pick was the correct option.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex == m.CorrectIndex
}
