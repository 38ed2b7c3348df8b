package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/ui/theme"
)

const (
	gaugeFull  = "█"
	gaugeEmpty = "░"

	// minGauge keeps the bar visible next to a long label.
	minGauge = 4
)

// ProgressBar is a one-line gauge: label, bar and optional percentage, all
// fitting in Width cells.
type ProgressBar struct {
	Label       string
	Percent     float64 // clamped to [0, 1] when rendered
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + " "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %3.0f%%", pct*100))
	}

	cells := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), minGauge)
	filled := int(float64(cells)*pct + 0.5)

	return label +
		theme.GaugeFilled.Render(strings.Repeat(gaugeFull, filled)) +
		theme.GaugeEmpty.Render(strings.Repeat(gaugeEmpty, cells-filled)) +
		suffix
}
