package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
)

// Line shapes. A task line is indented by four spaces and belongs to the
// most recently parsed category line above it.
var (
	categoryRe = regexp.MustCompile(`^Category name: ([^\t]+)\tcolor: ([^\t]+)\tprobability: ([^\t]+)$`)
	taskRe     = regexp.MustCompile(`^    Task name: ([^\t]+)\tdeadline: "([^"\t]*)"$`)
)

// Parse reads the store format from r. Lines that match neither shape
// are logged and skipped; a matching line with a bad color, probability,
// or deadline aborts the whole parse with a *ParseError. The returned
// File always contains the Unclassified category.
func Parse(r io.Reader, logger *log.Logger) (*File, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := &File{}
	current := "" // name of the most recently parsed category
	lineNo := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if m := categoryRe.FindStringSubmatch(line); m != nil {
			color, err := ParseColor(m[2])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			p, err := strconv.ParseFloat(m[3], 64)
			if err != nil || p < 0.0 || p > 1.0 {
				return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrInvalidProbability, m[3])}
			}
			f.Categories = append(f.Categories, Category{Name: m[1], Probability: p, Color: color})
			current = m[1]
			continue
		}

		if m := taskRe.FindStringSubmatch(line); m != nil {
			task := Task{Name: m[1], Category: current}
			if m[2] != "none" {
				d, err := ParseDeadline(m[2])
				if err != nil {
					return nil, &ParseError{Line: lineNo, Err: err}
				}
				task.Deadline = d
			}
			if current == "" {
				logger.Warn("task has no preceding category, assigning to Unclassified",
					"line", lineNo, "task", task.Name)
				task.Category = Unclassified
			}
			f.Tasks = append(f.Tasks, task)
			continue
		}

		if line != "" {
			logger.Warn("skipping unrecognized line", "line", lineNo, "text", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	f.EnsureUnclassified()
	return f, nil
}

// Encode writes the store format to w: each category line in list order,
// followed by the lines of every task assigned to it, in task-list order.
// Tasks referencing a name absent from the category list are not written;
// mutations keep the lists consistent so that cannot happen.
func (f *File) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range f.Categories {
		fmt.Fprintf(bw, "Category name: %s\tcolor: %s\tprobability: %.2f\n", c.Name, c.Color, c.Probability)
		for i := range f.Tasks {
			t := &f.Tasks[i]
			if t.Category != c.Name {
				continue
			}
			fmt.Fprintf(bw, "    Task name: %s\tdeadline: %q\n", t.Name, t.DeadlineString())
		}
	}
	return bw.Flush()
}

// Load reads and parses the store file at path.
func Load(path string, logger *log.Logger) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	defer fh.Close()
	return Parse(fh, logger)
}

// Save rewrites the store file at path in full.
func (f *File) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := f.Encode(out); err != nil {
		out.Close()
		return fmt.Errorf("write store file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
