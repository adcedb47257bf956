package txtstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todotxt/internal/model"
)

// Line-oriented storage. One record per line: <title>;<true|false>
// No locking and no atomic rename; the last writer wins.
// A title containing ';' does not survive a round trip.

const DataFileName = "todo.txt"

const sep = ";"

// Store reads and writes the list at Path. Logger may be nil.
type Store struct {
	Path   string
	Logger *log.Logger
}

func (s Store) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Load returns an empty list when the file does not exist.
// Malformed lines are dropped without an error.
func (s Store) Load() ([]model.Item, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger().Info("no data file, starting empty", "path", s.Path)
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	items, dropped, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	for _, n := range dropped {
		s.logger().Debug("dropped malformed record", "path", s.Path, "line", n)
	}
	s.logger().Info("loaded", "path", s.Path, "items", len(items))
	return items, nil
}

// Save overwrites the file with items in list order.
func (s Store) Save(items []model.Item) error {
	var buf bytes.Buffer
	if err := Encode(&buf, items); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.logger().Info("saved", "path", s.Path, "items", len(items))
	return nil
}

// Decode parses records from r. It returns the 1-based numbers of lines it
// dropped because they were not exactly "<title>;true" or "<title>;false".
func Decode(r io.Reader) ([]model.Item, []int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	items := []model.Item{}
	var dropped []int
	text := strings.TrimSuffix(string(b), "\n")
	if text == "" {
		return items, nil, nil
	}
	for i, line := range strings.Split(text, "\n") {
		it, ok := parseLine(strings.TrimSuffix(line, "\r"))
		if !ok {
			dropped = append(dropped, i+1)
			continue
		}
		items = append(items, it)
	}
	return items, dropped, nil
}

func parseLine(line string) (model.Item, bool) {
	fields := strings.Split(line, sep)
	if len(fields) != 2 {
		return model.Item{}, false
	}
	switch fields[1] {
	case "true":
		return model.Item{Title: fields[0], Done: true}, true
	case "false":
		return model.Item{Title: fields[0], Done: false}, true
	}
	return model.Item{}, false
}

// Encode writes one newline-terminated record per item.
func Encode(w io.Writer, items []model.Item) error {
	for _, it := range items {
		if _, err := io.WriteString(w, it.Title+sep+strconv.FormatBool(it.Done)+"\n"); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}
