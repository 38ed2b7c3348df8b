package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

const defaultMessage = "╌╌ 준비 중 ╌╌\n\n이 기능은 아직 사용할 수 없습니다."

// PlaceholderScreen stands in for a tab whose backing feature is off.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen. An empty message shows a generic
// notice.
func New(title, message string) *PlaceholderScreen {
	if message == "" {
		message = defaultMessage
	}
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.message)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
