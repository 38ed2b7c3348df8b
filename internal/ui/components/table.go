package components

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/chemiz/chemiz/internal/ui/theme"
)

// Table renders rows under headers with the Chemiz table styles. selected
// highlights one data row; pass -1 for none. width 0 lets the table size
// itself.
func Table(headers []string, rows [][]string, selected, width int) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.TableHeader
			case row == selected:
				return theme.TableCellSelected
			default:
				return theme.TableCell
			}
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}

// Window returns the [start, end) range of at most size rows around
// selected, for scrolling long tables.
func Window(total, selected, size int) (start, end int) {
	if size <= 0 || total <= size {
		return 0, total
	}
	start = selected - size/2
	if start < 0 {
		start = 0
	}
	end = start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}
