package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/router"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const flaskArt = `     ┌───┐
     │   │
     │ ° │
    ╱  ∘  ╲
   ╱ ◉   ◉ ╲
  ╱    ▽    ╲
 ╱ H₂O · CO₂ ╲
└─────────────┘`

// bubble frames rise out of the flask neck
var bubbleFrames = []string{"∘", "°", "o"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(flaskArt)

	// Phase 2+: bubbles rising beside the neck
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(bubbleFrames)
		b1 := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(bubbleFrames[frame])
		b2 := lipgloss.NewStyle().Foreground(theme.Accent).Render(bubbleFrames[(frame+1)%len(bubbleFrames)])

		lines := strings.Split(rendered, "\n")
		if len(lines) > 4 {
			lines[0] = b1 + "  " + lines[0] + "  " + b2
			lines[2] = b2 + "  " + lines[2] + "  " + b1
			lines[4] = b1 + "  " + lines[4] + "  " + b2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			components.Banner(width, false, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("화학식, 이제 재미있게 외워요!"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("아무 키나 눌러 시작"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
