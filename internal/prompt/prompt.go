// Package prompt implements blocking terminal prompts with a
// retry-until-valid contract.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"todocras/internal/store"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// Terminal prompts on an io.Writer and reads answers line by line from
// an io.Reader. Invalid answers are rejected and re-prompted; the only
// errors returned are read failures (including EOF on a closed input).
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminal returns a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.in.Text(), nil
}

func (t *Terminal) reject(msg string) {
	fmt.Fprintln(t.out, errStyle.Render(msg))
}

// Choose prints numbered options and returns a validated 1-based index.
func (t *Terminal) Choose(title string, options []string) (int, error) {
	if title != "" {
		fmt.Fprintln(t.out, title)
	}
	for i, option := range options {
		fmt.Fprintf(t.out, "%d: %s\n", i+1, option)
	}
	for {
		fmt.Fprint(t.out, "> ")
		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(options) {
			return n, nil
		}
		t.reject("Invalid choice")
	}
}

// Text prompts for a free-text line.
func (t *Terminal) Text(msg string) (string, error) {
	fmt.Fprint(t.out, msg)
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Probability prompts until the answer parses as a float in [0, 1].
func (t *Terminal) Probability(msg string) (float64, error) {
	for {
		fmt.Fprint(t.out, msg)
		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && p >= 0.0 && p <= 1.0 {
			return p, nil
		}
		t.reject("Invalid probability")
	}
}

// Deadline prompts until the answer is empty (no deadline) or a valid
// timestamp in the store format.
func (t *Terminal) Deadline(msg string) (*time.Time, error) {
	for {
		fmt.Fprint(t.out, msg)
		line, err := t.readLine()
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil, nil
		}
		d, err := store.ParseDeadline(trimmed)
		if err == nil {
			return d, nil
		}
		t.reject("Invalid deadline")
	}
}

// Confirm prompts until the answer is y or n.
func (t *Terminal) Confirm(msg string) (bool, error) {
	for {
		fmt.Fprint(t.out, msg)
		line, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		t.reject("Please enter y or n")
	}
}
