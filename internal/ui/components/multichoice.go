package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It only picks an option;
// grading happens elsewhere and is shown with Mark.
type MultiChoice struct {
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
	markIndex   int
	markCorrect bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:     options,
		Selected:    0,
		ChosenIndex: -1,
		markIndex:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys 1-N pick an
// option directly; Enter picks the highlighted one.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.Options) {
				m.Selected = idx
				m.Submitted = true
				m.ChosenIndex = idx
			}
		}
	}

	return m, nil
}

// Chosen returns the submitted option and clears the submitted flag so the
// same pick is not consumed twice.
func (m *MultiChoice) Chosen() (string, bool) {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return "", false
	}
	m.Submitted = false
	return m.Options[m.ChosenIndex], true
}

// Mark records the grading of the option at idx for display.
func (m *MultiChoice) Mark(idx int, correct bool) {
	m.markIndex = idx
	m.markCorrect = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == m.markIndex && m.markCorrect:
			style = style.Foreground(theme.Success).Bold(true)
		case i == m.markIndex:
			style = style.Foreground(theme.Error).Bold(true)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
