package tui

import "github.com/charmbracelet/bubbles/key"

// appKeyMap defines key bindings for the signup screen
type appKeyMap struct {
	SwitchTab key.Binding
	Next      key.Binding
	Prev      key.Binding
	Toggle    key.Binding
	Choice    key.Binding
	Enter     key.Binding
	Submit    key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Next, k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchTab, k.Next, k.Prev},
		{k.Toggle, k.Choice, k.Enter, k.Submit},
		{k.Dismiss, k.Help, k.Quit},
	}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		SwitchTab: key.NewBinding(
			key.WithKeys("ctrl+t", "shift+tab"),
			key.WithHelp("ctrl+t", "switch form"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Choice: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "choose"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/submit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss message"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
