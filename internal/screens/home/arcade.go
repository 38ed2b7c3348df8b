package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Banner(cw, compact, style))
}

// renderCaption explains what the app covers and how structure answers are
// entered.
func renderCaption(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("이름 ↔ 시성식, 구조식 → 이름/시성식 + 개념 문제\n그림 문제의 정답은 한글 이름 또는 시성식으로 입력!")
}

// renderStatsBar renders the running session figures.
func renderStatsBar(st *session.State, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	wrongStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	wrong := len(st.WrongNotes)
	var stats []string
	if compact {
		stats = []string{
			scoreStyle.Render(fmt.Sprintf("✔%d/%d", st.Score, st.Total)),
			streakStyle.Render(fmt.Sprintf("★%d", st.Streak)),
			wrongText(wrong, fmt.Sprintf("✎%d", wrong), wrongStyle, dimStyle),
		}
	} else {
		stats = []string{
			scoreStyle.Render(fmt.Sprintf("✔ %d/%d 정답", st.Score, st.Total)),
			streakStyle.Render(fmt.Sprintf("★ %d연속", st.Streak)),
			wrongText(wrong, fmt.Sprintf("✎ 오답 %d", wrong), wrongStyle, dimStyle),
		}
	}
	return components.StatsBar(stats, cw)
}

func wrongText(n int, text string, active, dim lipgloss.Style) string {
	if n == 0 {
		return dim.Render(text)
	}
	return active.Render(text)
}

// renderRate shows the accuracy as a progress bar.
func renderRate(st *session.State, cw int) string {
	bar := components.NewProgressBar("정답률", st.Rate(), true, cw-4)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(bar.View())
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, disabled[i], buttonWidth)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
