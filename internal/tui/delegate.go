package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todotxt/internal/model"
	"github.com/idilsaglam/todotxt/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderRow(it.Item, index == m.Index(), m.Width()))
}

// renderRow draws "> [x] title", truncating the title to fit width cells.
func renderRow(it model.Item, selected bool, width int) string {
	t := ui.Current()
	prefix := "  "
	if selected {
		prefix = "> "
	}
	box := t.Box(it.Done)
	room := width - lipgloss.Width(prefix) - lipgloss.Width(box) - 1
	if room < 1 {
		room = 1
	}
	title := ansi.Truncate(it.Title, room, "…")

	if selected {
		return t.Selected.Render(prefix + box + " " + title)
	}
	if it.Done {
		return prefix + t.Success.Render(box) + " " + t.Done.Render(title)
	}
	return prefix + t.Muted.Render(box) + " " + title
}

func header(todos *model.List) string {
	t := ui.Current()
	d, p := todos.Stats()
	return fmt.Sprintf("Todos   %s %d  %s %d  %s %d",
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), todos.Len(),
	)
}
