// Package theme holds the Chemiz palette and the shared lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: dark lab bench with bright reagent accents.
var (
	Primary   = lipgloss.Color("#8B5CF6") // potassium permanganate
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // methyl orange
	Success   = lipgloss.Color("#22C55E") // copper flame
	Error     = lipgloss.Color("#F43F5E") // litmus red
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15") // sodium flame
	ArcadeCyan   = lipgloss.Color("#22D3EE") // copper sulfate
)

// Formula renders chemical formulas wherever they appear inline.
var Formula = lipgloss.NewStyle().Foreground(ArcadeCyan).Bold(true)

// Selected marks the focused row or option.
var Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)

// Gauge cells for the progress bar.
var (
	GaugeFilled = lipgloss.NewStyle().Foreground(Secondary)
	GaugeEmpty  = lipgloss.NewStyle().Foreground(Border)
)

// Buttons.
var (
	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Foreground(TextDim).Padding(0, 2).
			Border(lipgloss.RoundedBorder()).BorderForeground(Border)
)

// Table cells.
var (
	TableHeader       = lipgloss.NewStyle().Foreground(ArcadeYellow).Bold(true).Padding(0, 1)
	TableCell         = lipgloss.NewStyle().Foreground(Text).Padding(0, 1)
	TableCellSelected = TableCell.Foreground(Primary).Bold(true)
)
