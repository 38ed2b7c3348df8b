package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/chemiz/chemiz/internal/router"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/screens/home"
	"github.com/chemiz/chemiz/internal/screens/welcome"
	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Home home.Deps

	// Splash shows the welcome animation before the home screen.
	Splash bool

	// Logger receives lifecycle events (nil = no-op).
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *session.State
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen, behind the
// splash when requested.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(opts.Home) }

	var first screen.Screen
	if opts.Splash {
		first = welcome.New(homeFactory)
	} else {
		first = homeFactory()
	}

	return AppModel{
		router: router.New(first),
		state:  opts.Home.State,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.metrics(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) metrics() layout.Metrics {
	if m.state == nil {
		return layout.Metrics{}
	}
	return layout.Metrics{
		Score:  m.state.Score,
		Total:  m.state.Total,
		Streak: m.state.Streak,
	}
}

// footerHints uses the active screen's hints when it provides them.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "뒤로"}}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "이동"},
			{Key: "Enter", Description: "선택"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "종료"})
}

// Run starts the Bubble Tea program and blocks until it exits. The session
// is finished (and its end journaled) however the program stops.
func Run(ctx context.Context, opts Options) (session.Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	st := opts.Home.State
	logger.Info("tui started", zap.String("session_id", st.ID))

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()

	sum := st.Finish()
	logger.Info("tui stopped",
		zap.String("session_id", st.ID),
		zap.Int("score", sum.Score),
		zap.Int("total", sum.Total),
		zap.Duration("duration", sum.Duration),
	)

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return sum, err
	}
	return sum, nil
}
