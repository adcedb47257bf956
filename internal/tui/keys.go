package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// browsing
	Up, Down, Toggle, Insert, Edit, Delete, Quit key.Binding
	// capturing
	Commit, Abort key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "up")),
		Down:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		Insert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save and exit")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Abort:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "back")),
	}
}

var navHelp = key.NewBinding(key.WithKeys("w", "s"), key.WithHelp("w/s", "move"))

// helpFor lists the bindings shown in the bottom bar for a mode.
func (k keyMap) helpFor(mode Mode) []key.Binding {
	switch mode {
	case Inserting:
		return []key.Binding{withHelp(k.Commit, "insert todo"), k.Abort}
	case Editing:
		return []key.Binding{withHelp(k.Commit, "save edit"), k.Abort}
	default:
		return []key.Binding{k.Insert, k.Delete, k.Edit, navHelp, k.Toggle, k.Quit}
	}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
