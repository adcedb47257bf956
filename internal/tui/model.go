package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todotxt/internal/model"
	"github.com/idilsaglam/todotxt/internal/ui"
)

// Mode is the interaction state. Inserting and Editing always lead back to
// Browsing; only the quit key ends the program.
type Mode int

const (
	Browsing Mode = iota
	Inserting
	Editing
)

func (m Mode) String() string {
	switch m {
	case Inserting:
		return "inserting"
	case Editing:
		return "editing"
	default:
		return "browsing"
	}
}

type Options struct {
	Width, Height int
	Logger        *log.Logger
}

// Model is the bubbletea model. It shares the *model.List with the caller,
// which reads the final state after the program exits.
type Model struct {
	todos *model.List

	list  list.Model
	input textinput.Model // shared by insert & edit
	help  help.Model
	keys  keyMap

	mode          Mode
	width, height int
	saved         bool

	logger *log.Logger
}

func New(todos *model.List, opt Options) Model {
	t := ui.Current()

	l := list.New([]list.Item{}, itemDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.Title = t.Title
	l.Styles.NoItems = t.Muted
	l.Styles.PaginationStyle = t.Help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0

	h := help.New()
	h.Styles.ShortKey = t.Accent
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Help

	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		todos:  todos,
		list:   l,
		input:  ti,
		help:   h,
		keys:   newKeyMap(),
		logger: logger,
	}
	m.resize(opt.Width, opt.Height)
	m.sync()
	return m
}

func (m Model) Mode() Mode { return m.mode }

// Saved reports whether the program ended through the save-and-quit key.
func (m Model) Saved() bool { return m.saved }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.mode == Browsing {
			return m.updateBrowsing(msg)
		}
		return m.updateCapturing(msg)
	}
	// cursor blink while capturing
	if m.mode != Browsing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.todos.Up()
	case key.Matches(msg, m.keys.Down):
		m.todos.Down()
	case key.Matches(msg, m.keys.Toggle):
		if m.todos.Toggle() {
			it, _ := m.todos.Selected()
			m.logger.Debug("toggled", "index", m.todos.Cursor(), "done", it.Done)
		}
	case key.Matches(msg, m.keys.Delete):
		i := m.todos.Cursor()
		if m.todos.Delete() {
			m.logger.Debug("deleted", "index", i, "cursor", m.todos.Cursor())
		}
	case key.Matches(msg, m.keys.Insert):
		return m, m.capture(Inserting, "")
	case key.Matches(msg, m.keys.Edit):
		it, ok := m.todos.Selected()
		if !ok {
			return m, nil
		}
		return m, m.capture(Editing, it.Title)
	case key.Matches(msg, m.keys.Quit):
		m.saved = true
		return m, tea.Quit
	default:
		return m, nil
	}
	m.sync()
	return m, nil
}

func (m Model) updateCapturing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		text := m.input.Value()
		if m.mode == Inserting {
			m.todos.Insert(text)
			m.logger.Debug("inserted", "index", m.todos.Len()-1)
		} else if m.todos.Edit(text) {
			m.logger.Debug("edited", "index", m.todos.Cursor())
		}
		m.endCapture()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Abort):
		m.endCapture()
		return m, nil
	}

	// Only appending and backspace reach the editor; the cursor stays at the end.
	if msg.Alt {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) capture(mode Mode, text string) tea.Cmd {
	m.mode = mode
	m.input.SetValue(text)
	m.input.CursorEnd()
	if mode == Inserting {
		m.input.Placeholder = "New todo..."
	} else {
		m.input.Placeholder = ""
	}
	m.resize(m.width, m.height)
	return m.input.Focus()
}

func (m *Model) endCapture() {
	m.mode = Browsing
	m.input.SetValue("")
	m.input.Blur()
	m.resize(m.width, m.height)
}

// sync pushes list store state into the list widget.
func (m *Model) sync() {
	items := m.todos.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}
	m.list.SetItems(li)
	m.list.Select(m.todos.Cursor())
	m.list.Title = header(m.todos)
}

const (
	frameW   = 4 // border + padding
	frameH   = 2
	helpH    = 1
	captureH = 4 // bordered two-line bar
)

func (m *Model) resize(w, h int) {
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	m.width, m.height = w, h

	listH := h - frameH - helpH
	if m.mode != Browsing {
		listH -= captureH
	}
	m.list.SetSize(max(w-frameW, 1), max(listH, 1))
	m.help.Width = max(w-frameW, 1)
	m.input.Width = max(w-frameW-4-lipgloss.Width(m.input.Prompt), 1)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	if m.mode != Browsing {
		b.WriteString("\n")
		b.WriteString(m.captureView())
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.helpFor(m.mode)))
	return ui.Frame().Render(b.String())
}

func (m Model) captureView() string {
	t := ui.Current()
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	title := "New todo"
	if m.mode == Editing {
		title = "Edit todo"
	}
	return bar.Render(t.Title.Render(title) + "\n" + m.input.View())
}
