package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/quiz"
	"github.com/chemiz/chemiz/internal/router"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/store"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/layout"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

const (
	sessionLimit = 50
	missedLimit  = 5
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Stats    store.Stats
	Missed   []store.MissedPrompt
	Err      error
}

// HistoryScreen displays past sessions from the journal with overall
// accuracy and the most missed prompts.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	stats     store.Stats
	missed    []store.MissedPrompt
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := repo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Missing rankings only hide the table.
		missed, _ := repo.MostMissed(ctx, missedLimit)

		return historyLoadedMsg{Sessions: sessions, Stats: stats, Missed: missed}
	}
}

func (s *HistoryScreen) Title() string {
	return "학습 기록"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "자세히"},
		{Key: "↑↓", Description: "이동"},
		{Key: "Esc", Description: "홈"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
			s.missed = msg.Missed
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n오류: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  기록을 불러오는 중...")
	}
	if len(s.sessions) == 0 && s.stats.Attempts == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  아직 기록이 없습니다. 테스트를 시작해 보세요!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTotals()))
	b.WriteString("\n\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Local().Format("2006-01-02 15:04")
		durationStr := fmt.Sprintf("%d:%02d", sess.DurationSecs/60, sess.DurationSecs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s  %d문제  정답률 %.0f%%",
			prefix, dateStr, durationStr, sess.QuestionsAnswered, sess.Accuracy()*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s · %s   정답 %d   최고 연속 %d",
				themeLabel(sess.Theme), modeLabel(sess.Mode), sess.CorrectAnswers, sess.BestStreak)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	if len(s.missed) > 0 {
		rows := make([][]string, len(s.missed))
		for i, m := range s.missed {
			rows[i] = []string{m.Prompt, m.Expected, fmt.Sprintf("%d", m.Misses)}
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("자주 틀린 문제")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.Table([]string{"문제", "정답", "오답 수"}, rows, -1, 0)))
	}

	return b.String()
}

func (s *HistoryScreen) renderTotals() string {
	st := s.stats
	return components.StatsBar([]string{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("세션 %d", st.Sessions)),
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).
			Render(fmt.Sprintf("문제 %d", st.Attempts)),
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("정답률 %.0f%%", st.Accuracy()*100)),
	}, 44)
}

func themeLabel(s string) string {
	t, err := quiz.ParseTheme(s)
	if err != nil {
		return s
	}
	return t.Label()
}

func modeLabel(s string) string {
	m, err := quiz.ParseMode(s)
	if err != nil {
		return s
	}
	return m.Label()
}
