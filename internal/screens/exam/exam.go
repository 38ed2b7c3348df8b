package exam

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/chemiz/chemiz/internal/quiz"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/layout"
)

const inputWidth = 30

// ExamScreen implements screen.Screen for the test tab: one question at a
// time, graded on Enter.
type ExamScreen struct {
	state   *session.State
	input   components.TextInput
	choices components.MultiChoice

	// last grading shown under the question; nil before the first one
	last        *session.Outcome
	explanation string
	errMsg      string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an ExamScreen over the shared session state.
func New(state *session.State) *ExamScreen {
	return &ExamScreen{
		state: state,
		input: components.NewTextInput("정답 입력", inputWidth),
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	s.state.Ensure()
	s.reload()
	return s.input.Init()
}

func (s *ExamScreen) Title() string {
	return "테스트"
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "채점"},
	}
	if s.state.Mode == quiz.ModeChoice {
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "선택"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "테마"},
		layout.KeyHint{Key: "Ctrl+T", Description: "유형"},
		layout.KeyHint{Key: "Ctrl+N", Description: "새 문제"},
		layout.KeyHint{Key: "Esc", Description: "홈"},
	)
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		// Cursor blink and friends.
		if s.state.Mode == quiz.ModeShort {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		s.state.SetTheme(toggleTheme(s.state.Theme))
		return s.fresh()
	case "ctrl+t":
		s.state.SetMode(toggleMode(s.state.Mode))
		return s.fresh()
	case "ctrl+n":
		s.state.NewQuestion()
		return s.fresh()
	}

	if s.state.Mode == quiz.ModeChoice {
		s.choices, _ = s.choices.Update(kmsg)
		if picked, ok := s.choices.Chosen(); ok {
			s.submit(picked)
		}
		return s, nil
	}

	if kmsg.String() == "enter" {
		if strings.TrimSpace(s.input.Value()) == "" {
			return s, nil
		}
		s.submit(s.input.Value())
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

// submit grades given and updates the feedback and widgets.
func (s *ExamScreen) submit(given string) {
	out, err := s.state.Submit(given)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.last = &out

	// Concept questions always explain; basic ones only after a miss.
	s.explanation = ""
	if isConcept(out.Question) || !out.Correct {
		s.explanation = out.Question.Explanation()
	}

	if out.Advanced {
		s.reload()
		return
	}

	if s.state.Mode == quiz.ModeChoice {
		for i, opt := range s.choices.Options {
			if opt == given {
				s.choices.Mark(i, out.Correct)
				break
			}
		}
		return
	}
	s.input.Submit(out.Correct)
}

// fresh clears the feedback after the question was replaced by a toggle
// or Ctrl+N.
func (s *ExamScreen) fresh() (screen.Screen, tea.Cmd) {
	s.last = nil
	s.explanation = ""
	s.errMsg = ""
	s.reload()
	return s, s.input.Init()
}

// reload rebuilds the answer widgets for the current question.
func (s *ExamScreen) reload() {
	s.input.Reset()
	var opts []string
	if q := s.state.Current; q != nil {
		opts = q.Choices()
	}
	s.choices = components.NewMultiChoice(opts)
}

func isConcept(q quiz.Question) bool {
	_, ok := q.(quiz.Concept)
	return ok
}

func toggleTheme(t quiz.Theme) quiz.Theme {
	if t == quiz.ThemeBasic {
		return quiz.ThemeConcept
	}
	return quiz.ThemeBasic
}

func toggleMode(m quiz.Mode) quiz.Mode {
	if m == quiz.ModeShort {
		return quiz.ModeChoice
	}
	return quiz.ModeShort
}
