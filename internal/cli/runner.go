package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todotxt/internal/config"
	"github.com/idilsaglam/todotxt/internal/logging"
	"github.com/idilsaglam/todotxt/internal/model"
	"github.com/idilsaglam/todotxt/internal/store/txtstore"
	"github.com/idilsaglam/todotxt/internal/tui"
	"github.com/idilsaglam/todotxt/internal/ui"
)

// Options wire the runner to its environment.
type Options struct {
	DataFile    string // list file, todo.txt in the working directory
	ConfigFile  string // optional preferences; "" skips loading
	Interactive bool   // stdin and stdout are terminals

	// ProgramOptions are appended to the TUI's tea.Program options.
	ProgramOptions []tea.ProgramOption

	Stdout, Stderr io.Writer
}

// Run loads the list, hands it to the TUI (or prints it when not attached
// to a terminal) and saves it on the way out. Exit codes: 0 ok, 1 error.
func Run(opt Options) int {
	cfg, err := config.Load(opt.ConfigFile)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error()+" (using defaults)")
	}
	theme := cfg.Theme
	if termenv.EnvNoColor() {
		theme = "mono"
	}
	ui.SetTheme(theme)

	logger, closer, err := logging.New(cfg)
	if errors.Is(err, log.ErrInvalidLevel) {
		ui.Fail(opt.Stderr, "log: "+err.Error()+" (using defaults)")
		cfg.LogLevel = ""
		logger, closer, err = logging.New(cfg)
	}
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error()+" (logging disabled)")
		logger, closer = logging.Discard()
	}
	defer closer.Close()

	st := txtstore.Store{Path: opt.DataFile, Logger: logger}
	items, err := st.Load()
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		return 1
	}

	if !opt.Interactive {
		fmt.Fprintln(opt.Stdout, listPanel(items))
		return 0
	}

	todos := model.NewList(items)
	saveRequested, err := tui.Run(todos, logger, opt.ProgramOptions...)
	if err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	if !saveRequested {
		logger.Warn("exited without save", "items", todos.Len())
		return 0
	}
	if err := st.Save(todos.Items()); err != nil {
		logger.Error("save failed", "err", err)
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Stdout, "saved")
	return 0
}

// -------------- rendering helpers --------------

func listPanel(items []model.Item) string {
	t := ui.Current()
	d, p := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	lines = append(lines, flatLines(items)...)
	return ui.Panel(lines)
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("No todos.")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.Box(false))
		title := it.Title
		if it.Done {
			box, title = t.Success.Render(t.Box(true)), t.Done.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, title))
	}
	return out
}
