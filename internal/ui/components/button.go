package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chemiz/chemiz/internal/ui/theme"
)

// Button is a hotkey-driven action. It fires OnPress only when active and
// only on its hotkey, so Enter stays free for the owning screen.
type Button struct {
	Label   string
	Hotkey  string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label, hotkey string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Hotkey: hotkey, Active: active, OnPress: onPress}
}

// Update fires OnPress on the hotkey.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Active || b.OnPress == nil || b.Hotkey == "" {
		return b, nil
	}
	if kmsg.String() == b.Hotkey {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button with its hotkey; inactive buttons are dimmed.
func (b Button) View() string {
	label := b.Label
	if b.Hotkey != "" {
		label = "[" + b.Hotkey + "] " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
