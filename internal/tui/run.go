package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/idilsaglam/todotxt/internal/model"
)

// Run drives the interactive loop over todos until it exits. It reports
// whether the user asked to save; a killed or interrupted program did not.
// opts follow tea.WithAltScreen and may replace the terminal input/output.
func Run(todos *model.List, logger *log.Logger, opts ...tea.ProgramOption) (bool, error) {
	w, h := widthHeight()
	m := New(todos, Options{Width: w, Height: h, Logger: logger})

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return fm.Saved(), nil
}

// initial size; tea.WindowSizeMsg takes over once the program starts
func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 && th > 0 {
		w, h = tw, th
	}
	return w, h
}
