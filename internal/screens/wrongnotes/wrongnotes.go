package wrongnotes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/layout"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

// clearedMsg is sent after the wrong notes were emptied.
type clearedMsg struct{}

// WrongNotesScreen lists the incorrect answers of the session.
type WrongNotesScreen struct {
	state    *session.State
	clear    components.Button
	selected int
	cleared  bool
}

var _ screen.Screen = (*WrongNotesScreen)(nil)
var _ screen.KeyHintProvider = (*WrongNotesScreen)(nil)

// New creates a WrongNotesScreen over the shared session state.
func New(state *session.State) *WrongNotesScreen {
	s := &WrongNotesScreen{state: state}
	s.clear = components.NewButton("오답 지우기", "c", true, func() tea.Cmd {
		s.state.ClearWrongNotes()
		s.selected = 0
		return func() tea.Msg { return clearedMsg{} }
	})
	return s
}

func (s *WrongNotesScreen) Init() tea.Cmd {
	s.cleared = false
	s.clamp()
	return nil
}

func (s *WrongNotesScreen) Title() string {
	return "오답노트"
}

func (s *WrongNotesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if len(s.state.WrongNotes) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "↑/↓", Description: "이동"},
			layout.KeyHint{Key: "c", Description: "오답 지우기"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "홈"})
}

func (s *WrongNotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearedMsg:
		s.cleared = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.state.WrongNotes)-1 {
				s.selected++
			}
			return s, nil
		case "c":
			// Enter is not bound here; only the hotkey clears.
			var cmd tea.Cmd
			s.clear.Active = len(s.state.WrongNotes) > 0
			s.clear, cmd = s.clear.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *WrongNotesScreen) clamp() {
	if s.selected >= len(s.state.WrongNotes) {
		s.selected = len(s.state.WrongNotes) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *WrongNotesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  ❗ 오답노트"))
	b.WriteString("\n\n")

	notes := s.state.WrongNotes
	if len(notes) == 0 {
		msg := "아직 오답이 없습니다. 테스트 탭에서 문제를 풀어 보세요!"
		if s.cleared {
			msg = "오답노트를 비웠습니다."
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  " + msg))
		return b.String()
	}

	visible := height - 10
	if visible < 3 {
		visible = 3
	}
	start, end := components.Window(len(notes), s.selected, visible)

	rows := make([][]string, 0, end-start)
	for i, n := range notes[start:end] {
		rows = append(rows, []string{
			fmt.Sprintf("%d", start+i+1),
			n.Prompt,
			n.Correct,
			n.Given,
		})
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
		components.Table([]string{"#", "문제", "정답", "내 답"}, rows, s.selected-start, 0),
	))
	b.WriteString("\n\n  ")
	btn := s.clear
	btn.Active = true
	b.WriteString(btn.View())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   총 %d개", len(notes))))

	return b.String()
}
