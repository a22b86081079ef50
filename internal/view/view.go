// Package view selects and renders tasks for display.
package view

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"todocras/internal/store"
)

// BacklogMarker is appended to tasks whose deadline has already passed.
const BacklogMarker = " [BACKLOG]"

// Options controls a single render.
type Options struct {
	// UseProbability draws one random value per render and hides
	// categories whose probability falls below it.
	UseProbability bool
	// Roll supplies the random draw in [0.0, 1.0). Nil means rand.Float64.
	Roll func() float64
	// Now anchors the backlog annotation. Zero means time.Now.
	Now time.Time
	// MarkBacklog annotates tasks with a deadline strictly in the past.
	MarkBacklog bool
	// NoColor renders category names as plain text.
	NoColor bool
}

// SortByDeadline orders tasks by deadline ascending. Tasks without a
// deadline sort after all dated tasks and keep their relative order.
func SortByDeadline(tasks []store.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].Deadline, tasks[j].Deadline
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
}

// Visible returns the categories to render, in category-list order: those
// with at least one assigned task and probability >= roll. With roll 0.0
// every task-bearing category passes.
func Visible(f *store.File, roll float64) []store.Category {
	hasTask := make(map[string]bool, len(f.Categories))
	for _, t := range f.Tasks {
		hasTask[t.Category] = true
	}
	var out []store.Category
	for _, c := range f.Categories {
		if hasTask[c.Name] && c.Probability >= roll {
			out = append(out, c)
		}
	}
	return out
}

// Render writes the task listing to w: each visible category name in its
// color, then its tasks sorted by deadline.
func Render(w io.Writer, f *store.File, opts Options) {
	roll := 0.0
	if opts.UseProbability {
		draw := opts.Roll
		if draw == nil {
			draw = rand.Float64
		}
		roll = draw()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	tasks := append([]store.Task(nil), f.Tasks...)
	SortByDeadline(tasks)

	for _, c := range Visible(f, roll) {
		name := c.Name
		if !opts.NoColor {
			name = styleFor(c.Color).Render(name)
		}
		fmt.Fprintln(w, name)
		for _, t := range tasks {
			if t.Category != c.Name {
				continue
			}
			line := fmt.Sprintf("    %s: %s", deadlineLabel(&t), t.Name)
			if opts.MarkBacklog && t.Deadline != nil && t.Deadline.Before(now) {
				line += BacklogMarker
			}
			fmt.Fprintln(w, line)
		}
	}
}

func deadlineLabel(t *store.Task) string {
	if t.Deadline == nil {
		return "No deadline"
	}
	return t.Deadline.Format(store.DeadlineLayout)
}

// ANSI foreground codes for the 8 store colors.
var ansiCodes = map[store.Color]string{
	store.Black:   "0",
	store.Red:     "1",
	store.Green:   "2",
	store.Yellow:  "3",
	store.Blue:    "4",
	store.Magenta: "5",
	store.Cyan:    "6",
	store.White:   "7",
}

func styleFor(c store.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ansiCodes[c]))
}
