package linkui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Quit       key.Binding
	Fullscreen key.Binding
	Help       key.Binding
	Physics    key.Binding
	Grid       key.Binding
	Panel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11", "f"),
			key.WithHelp("f/f11", "fullscreen"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Physics: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "physics"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid"),
		),
		Panel: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inspector"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Physics, k.Fullscreen, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Physics, k.Grid, k.Panel},
		{k.Fullscreen, k.Help, k.Quit},
	}
}
