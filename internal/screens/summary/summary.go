package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/router"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/ui/layout"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

// reviewLimit caps the wrong notes listed for review.
const reviewLimit = 5

// SummaryScreen displays the session summary before the program exits.
type SummaryScreen struct {
	summary session.Summary
	review  []session.WrongNote
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. The last few notes are listed for review.
func New(summary session.Summary, notes []session.WrongNote) *SummaryScreen {
	if len(notes) > reviewLimit {
		notes = notes[len(notes)-reviewLimit:]
	}
	return &SummaryScreen{summary: summary, review: notes}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "세션 요약"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "종료"},
		{Key: "Esc", Description: "계속하기"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, tea.Quit
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("수고했어요!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("학습 시간: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("푼 문제: %d      정답: %d      정답률: %.0f%%      최고 연속: %d",
		sum.Total, sum.Score, sum.Rate*100, sum.BestStreak)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	if len(s.review) == 0 {
		msg := "오답 없이 마쳤습니다!"
		if sum.Total == 0 {
			msg = "아직 푼 문제가 없습니다."
		}
		b.WriteString(center.Foreground(theme.Success).Render(msg))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("다시 볼 문제 (오답 %d개 중 최근 %d개)", sum.WrongNotes, len(s.review)))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, n := range s.review {
		line := fmt.Sprintf("  %s  →  %s", n.Prompt,
			lipgloss.NewStyle().Foreground(theme.Success).Render(n.Correct))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
