package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/chemiz/chemiz/internal/illustration"
	"github.com/chemiz/chemiz/internal/router"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/screens/exam"
	"github.com/chemiz/chemiz/internal/screens/history"
	"github.com/chemiz/chemiz/internal/screens/memorize"
	"github.com/chemiz/chemiz/internal/screens/placeholder"
	"github.com/chemiz/chemiz/internal/screens/summary"
	"github.com/chemiz/chemiz/internal/screens/wrongnotes"
	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/store"
	"github.com/chemiz/chemiz/internal/substance"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/layout"
)

// Deps are the shared objects the tabs operate on.
type Deps struct {
	State   *session.State
	Dataset *substance.Dataset
	Art     illustration.Provider

	// Journal is nil when the journal is disabled.
	Journal store.EventRepo
}

const journalOffMessage = "╌╌ 기록 꺼짐 ╌╌\n\n학습 기록이 비활성화되어 있습니다.\n--db 플래그나 CHEMIZ_STORE_DB 로 켜 주세요."

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "암기", Hotkey: "1", Action: push(func() screen.Screen {
			return memorize.New(deps.Dataset, deps.Art)
		})},
		{Label: "테스트", Hotkey: "2", Action: push(func() screen.Screen {
			return exam.New(deps.State)
		})},
		{Label: "오답노트", Hotkey: "3", Action: push(func() screen.Screen {
			return wrongnotes.New(deps.State)
		})},
		{Label: "학습 기록", Hotkey: "4", Action: push(func() screen.Screen {
			if deps.Journal == nil {
				return placeholder.New("학습 기록", journalOffMessage)
			}
			return history.New(deps.Journal)
		})},
		{Label: "종료", Hotkey: "q", Action: push(func() screen.Screen {
			return summary.New(session.BuildSummary(deps.State), deps.State.WrongNotes)
		})},
	}

	menu := components.NewMenu(items)
	return &HomeScreen{
		deps:       deps,
		menu:       menu,
		menuLabels: menu.Labels(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100
	tiny := termHeight < 28

	cw := components.ContentWidth(width)
	st := h.deps.State

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(VariantFor(st), cw))
		sections = append(sections, renderCaption(cw))
	}

	sections = append(sections, renderStatsBar(st, cw, compact))

	if !tiny {
		sections = append(sections, renderRate(st, cw))
	}

	if tiny {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, h.menu.Disabled()))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, h.menu.Disabled()))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "홈"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "선택"},
		{Key: "1-4", Description: "바로가기"},
		{Key: "q", Description: "종료"},
	}
}
