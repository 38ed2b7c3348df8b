package home

import (
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/session"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default teal flask
	MascotCelebrating                      // Gold, star eyes: on a streak
	MascotWorried                          // Orange, bubbling over: last answer was wrong
)

// celebrateStreak is the streak at which the mascot starts celebrating.
const celebrateStreak = 5

const mascotIdle = `  ┌─┐
  │ │
 ╱◉ ◉╲
╱  ▽  ╲
└─────┘`

const mascotCelebrating = `  ┌─┐ ✦
  │ │
 ╱★ ★╲
╱  ▿  ╲
└─────┘`

const mascotWorried = ` °┌─┐°
  │ │ !
 ╱◉ ◉╲
╱  ︵  ╲
└─────┘`

// VariantFor picks the mascot mood from the session state.
func VariantFor(st *session.State) MascotVariant {
	switch {
	case st == nil:
		return MascotIdle
	case st.Streak >= celebrateStreak:
		return MascotCelebrating
	case st.Total > 0 && st.Streak == 0:
		return MascotWorried
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Secondary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotWorried:
		art = mascotWorried
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
