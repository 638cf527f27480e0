package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Quit       key.Binding
	Help       key.Binding
	CallFamily key.Binding
	Swim       key.Binding
	Gym        key.Binding
	Water      key.Binding
	NightShift key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.CallFamily, k.Swim, k.Gym, k.Water, k.NightShift},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		CallFamily: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "called family"),
		),
		Swim: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "swam"),
		),
		Gym: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gym"),
		),
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "+1 water"),
		),
		NightShift: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "night shift"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}
