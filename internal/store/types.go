// Package store parses, serializes, and mutates the todocras store file.
package store

import (
	"fmt"
	"strings"
	"time"
)

// Unclassified is the sentinel category that always exists, cannot be
// deleted or renamed, and absorbs tasks whose category goes away.
const Unclassified = "Unclassified"

// DeadlineLayout is the timestamp format used on disk and in prompts.
const DeadlineLayout = "2006-01-02 15:04"

// Color is one of the 8 named terminal colors a category can use.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Red
	Cyan
	Magenta
	Yellow
	White
)

var colorNames = [...]string{"Black", "Blue", "Green", "Red", "Cyan", "Magenta", "Yellow", "White"}

// String returns the canonical capitalized color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor matches a color name case-insensitively.
func ParseColor(s string) (Color, error) {
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// ColorNames returns the color names in menu order.
func ColorNames() []string {
	return append([]string(nil), colorNames[:]...)
}

// Category groups tasks under a name, with a display color and an
// inclusion probability for the -p display mode.
type Category struct {
	Name        string
	Probability float64
	Color       Color
}

// Task is a single item. Deadline is nil when the task has none.
// Category references a Category by name; it is a soft reference that
// every mutation keeps consistent.
type Task struct {
	Name     string
	Deadline *time.Time
	Category string
}

// DeadlineString returns the deadline in store format, or "none".
func (t *Task) DeadlineString() string {
	if t.Deadline == nil {
		return "none"
	}
	return t.Deadline.Format(DeadlineLayout)
}

// File holds the whole store: the category list and the task list,
// loaded wholesale at session start and rewritten in full on save.
type File struct {
	Categories []Category
	Tasks      []Task
}

// ParseDeadline parses a timestamp in the exact store format. Anything
// that does not round-trip through the layout (wrong padding, trailing
// garbage, out-of-range fields) is rejected.
func ParseDeadline(s string) (*time.Time, error) {
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil || t.Format(DeadlineLayout) != s {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeadline, s)
	}
	return &t, nil
}

// EnsureUnclassified appends the sentinel category if it is missing.
// Called unconditionally after every parse and before any reassignment.
func (f *File) EnsureUnclassified() {
	for _, c := range f.Categories {
		if c.Name == Unclassified {
			return
		}
	}
	f.Categories = append(f.Categories, Category{Name: Unclassified, Probability: 1.0, Color: White})
}

// CategoryNames returns the category names in list order.
func (f *File) CategoryNames() []string {
	names := make([]string, len(f.Categories))
	for i, c := range f.Categories {
		names[i] = c.Name
	}
	return names
}

// TaskNames returns the task names in list order.
func (f *File) TaskNames() []string {
	names := make([]string, len(f.Tasks))
	for i, t := range f.Tasks {
		names[i] = t.Name
	}
	return names
}
