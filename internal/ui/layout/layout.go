// Package layout renders the frame shared by every screen: a header with the
// running score, the active screen, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below this width the header drops the brand.
	compactWidth = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Metrics are the running session figures shown in the header.
type Metrics struct {
	Score  int
	Total  int
	Streak int
}

// Rate returns Score/Total, or 0 before anything was graded.
func (m Metrics) Rate() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Score) / float64(m.Total)
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"터미널이 너무 작습니다!\n\n최소 %d x %d 크기로\n늘려 주세요\n\n현재: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader renders the brand, the screen title centered, and the score
// on the right.
func RenderHeader(title string, m Metrics, width int) string {
	brand := ""
	if width >= compactWidth {
		brand = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ⚗ Chemiz")
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title)

	score := fmt.Sprintf("✔ %d/%d", m.Score, m.Total)
	if m.Total > 0 {
		score += fmt.Sprintf(" (%.0f%%)", m.Rate()*100)
	}
	right := lipgloss.NewStyle().Foreground(theme.Success).Render(score) + "   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d연속", m.Streak)) + "  "

	inner := max(width-4, 0)
	bw, cw, rw := lipgloss.Width(brand), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-bw, 1)
	rightGap := max(inner-bw-leftGap-cw-rw, 1)

	return bar.Width(width).Render(brand + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
