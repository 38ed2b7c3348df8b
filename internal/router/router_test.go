package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemiz/chemiz/internal/screen"
)

type initMsg struct{ title string }

// stubScreen records Init calls and the messages it receives.
type stubScreen struct {
	title string
	inits int
	seen  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return func() tea.Msg { return initMsg{s.title} }
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *stubScreen) View(w, h int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushInitsNewScreen(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	tab := &stubScreen{title: "tab"}
	cmd := r.Update(PushScreenMsg{Screen: tab})

	require.NotNil(t, cmd)
	assert.Equal(t, initMsg{"tab"}, cmd())
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, tab, r.Active())
	assert.Equal(t, 0, home.inits)
}

func TestPopKeepsUncoveredState(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Update("before")
	r.Push(&stubScreen{title: "tab"})

	assert.Nil(t, r.Update(PopScreenMsg{}))
	assert.Same(t, home, r.Active())
	assert.Equal(t, 0, home.inits, "pop must not re-init")
	assert.Equal(t, []tea.Msg{"before"}, home.seen)
}

func TestPopNeverRemovesRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestPopToRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "a"})
	r.Push(&stubScreen{title: "b"})

	r.Update(PopToRootMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.View(80, 24))
}

func TestReplaceSwapsTop(t *testing.T) {
	r := New(&stubScreen{title: "splash"})
	next := &stubScreen{title: "home"}

	cmd := r.Update(ReplaceScreenMsg{Screen: next})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, next, r.Active())
	assert.Equal(t, 1, next.inits)
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	home := &stubScreen{title: "home"}
	tab := &stubScreen{title: "tab"}
	r := New(home)
	r.Push(tab)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Len(t, tab.seen, 1)
	assert.Empty(t, home.seen)
}
