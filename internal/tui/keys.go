package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Speak   key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "día anterior"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "día siguiente"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hoy"),
		),
		Speak: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "narrar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Speak, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevDay, k.NextDay, k.Today}, {k.Speak, k.Quit}}
}
