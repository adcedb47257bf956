package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todotxt/internal/ui"
)

func nonInteractive(t *testing.T, dir string) (Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return Options{
		DataFile:   filepath.Join(dir, "todo.txt"),
		ConfigFile: filepath.Join(dir, "config.toml"),
		Stdout:     &out,
		Stderr:     &errOut,
	}, &out, &errOut
}

func writeMonoConfig(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = \"mono\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ui.SetTheme("classic") })
}

func TestRunPrintsListWhenNotInteractive(t *testing.T) {
	dir := t.TempDir()
	writeMonoConfig(t, dir)
	opt, out, errOut := nonInteractive(t, dir)
	if err := os.WriteFile(opt.DataFile, []byte("buy milk;true\nbroken line\ncall mom;false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Run(opt); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, errOut.String())
	}
	got := out.String()
	for _, want := range []string{" 1. [x] buy milk", " 2. [ ] call mom", "Total 2", "50%"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "broken line") {
		t.Fatalf("malformed line leaked into output:\n%s", got)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestRunNonInteractiveDoesNotCreateDataFile(t *testing.T) {
	dir := t.TempDir()
	writeMonoConfig(t, dir)
	opt, out, _ := nonInteractive(t, dir)
	if code := Run(opt); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "No todos.") {
		t.Fatalf("expected empty message:\n%s", out.String())
	}
	if _, err := os.Stat(opt.DataFile); !os.IsNotExist(err) {
		t.Fatalf("data file should not be written, stat err = %v", err)
	}
}

func TestRunBrokenConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { ui.SetTheme("classic") })
	opt, _, errOut := nonInteractive(t, dir)
	if err := os.WriteFile(opt.ConfigFile, []byte("theme = = \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := Run(opt); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(errOut.String(), "using defaults") {
		t.Fatalf("expected config warning, got %q", errOut.String())
	}
}

func TestRunUnreadableDataPathFails(t *testing.T) {
	dir := t.TempDir()
	writeMonoConfig(t, dir)
	opt, _, errOut := nonInteractive(t, dir)
	// a directory cannot be read as the list file
	if err := os.Mkdir(opt.DataFile, 0o755); err != nil {
		t.Fatal(err)
	}
	if code := Run(opt); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "load:") {
		t.Fatalf("expected load failure, got %q", errOut.String())
	}
}

func TestRunBadLogLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { ui.SetTheme("classic") })
	opt, out, errOut := nonInteractive(t, dir)
	logFile := filepath.Join(dir, "logs", "todo.log")
	cfg := "theme = \"mono\"\nlog_file = " + strconv.Quote(logFile) + "\nlog_level = \"verbose\"\n"
	if err := os.WriteFile(opt.ConfigFile, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(opt.DataFile, []byte("buy milk;false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Run(opt); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, errOut.String())
	}
	if !strings.Contains(errOut.String(), "using defaults") {
		t.Fatalf("expected log level warning, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), " 1. [ ] buy milk") {
		t.Fatalf("list not printed:\n%s", out.String())
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("log file should still be opened at the default level: %v", err)
	}
}

func TestRunNoColorSelectsMono(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { ui.SetTheme("classic") })
	t.Setenv("NO_COLOR", "1")
	opt, out, _ := nonInteractive(t, dir)
	if err := os.WriteFile(opt.DataFile, []byte("buy milk;true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := Run(opt); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if got := out.String(); !strings.Contains(got, "x 1") || strings.Contains(got, "✔") {
		t.Fatalf("expected mono glyphs:\n%s", got)
	}
}

// byteReader hands the TUI one byte per read so every key arrives as its own
// message instead of being merged with the runes around it.
type byteReader struct{ data []byte }

func (r *byteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func interactive(t *testing.T, dir, keys string, timeout time.Duration) (Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	writeMonoConfig(t, dir)
	opt, out, errOut := nonInteractive(t, dir)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	opt.Interactive = true
	opt.ProgramOptions = []tea.ProgramOption{
		tea.WithInput(&byteReader{data: []byte(keys)}),
		tea.WithOutput(io.Discard),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	}
	return opt, out, errOut
}

func TestRunQuitKeySavesList(t *testing.T) {
	dir := t.TempDir()
	// insert "buy milk", toggle it, then save and exit
	opt, out, errOut := interactive(t, dir, "ibuy milk\r\rq", 10*time.Second)

	if code := Run(opt); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, errOut.String())
	}
	data, err := os.ReadFile(opt.DataFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "buy milk;true\n" {
		t.Fatalf("unexpected file contents %q", data)
	}
	if !strings.Contains(out.String(), "saved") {
		t.Fatalf("expected saved status, got %q", out.String())
	}
}

func TestRunWithoutQuitKeyLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	opt, out, _ := interactive(t, dir, "ixyz\r", 300*time.Millisecond)
	const before = "call mom;false\n"
	if err := os.WriteFile(opt.DataFile, []byte(before), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := Run(opt); code == 0 {
		t.Fatalf("expected a killed program to exit non-zero")
	}
	data, err := os.ReadFile(opt.DataFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != before {
		t.Fatalf("file changed without save: %q", data)
	}
	if strings.Contains(out.String(), "saved") {
		t.Fatalf("unexpected saved status %q", out.String())
	}
}
