package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/quiz"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

func (s *ExamScreen) View(width, height int) string {
	q := s.state.Current
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  문제를 준비하는 중...")
	}

	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt()))
	b.WriteString("\n\n")

	if structure := renderStructure(q); structure != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, structure))
		b.WriteString("\n\n")
	}

	if s.state.Mode == quiz.ModeChoice && len(s.choices.Options) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("번호(1-4) 또는 화살표 + Enter로 선택"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("정답: " + s.input.View()))
	}
	b.WriteString("\n\n")

	if fb := s.renderFeedback(width); fb != "" {
		b.WriteString(fb)
		b.WriteString("\n")
	}

	return b.String()
}

// renderInfoLine shows the active theme and mode on the left and the
// running metrics on the right.
func (s *ExamScreen) renderInfoLine(width int) string {
	st := s.state
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", st.Theme.Label(), st.Mode.Label()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d  정답률 %d%%  %s %d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✔"),
			st.Score, st.Total,
			int(st.Rate()*100),
			lipgloss.NewStyle().Foreground(theme.Accent).Render("★"),
			st.Streak,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderStructure returns the diagram of a structure question, or its
// description when no diagram exists. Other kinds render nothing.
func renderStructure(q quiz.Question) string {
	image, desc, ok := quiz.Structure(q)
	if !ok {
		return ""
	}
	if image != nil {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.ArcadeCyan).
			Padding(0, 2).
			Render(image.Render())
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("그림 준비되지 않은 분자입니다. 구조 특징: " + desc)
}

func (s *ExamScreen) renderFeedback(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("오류: " + s.errMsg)
	}
	if s.last == nil {
		return ""
	}

	var b strings.Builder
	if s.last.Correct {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("✅ 정답!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("❌ 오답. 정답: %s", s.last.Expected)))
	}

	if s.explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}
	return b.String()
}
