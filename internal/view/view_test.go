package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"todocras/internal/store"
)

func datePtr(s string) *time.Time {
	d, err := store.ParseDeadline(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSortByDeadlineStability(t *testing.T) {
	tasks := []store.Task{
		{Name: "A", Category: "X"},
		{Name: "B", Deadline: datePtr("2024-01-01 10:00"), Category: "X"},
		{Name: "C", Category: "X"},
	}
	SortByDeadline(tasks)
	got := []string{tasks[0].Name, tasks[1].Name, tasks[2].Name}
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestSortByDeadlineAscending(t *testing.T) {
	tasks := []store.Task{
		{Name: "late", Deadline: datePtr("2025-06-01 09:00")},
		{Name: "early", Deadline: datePtr("2024-01-01 10:00")},
		{Name: "open"},
		{Name: "mid", Deadline: datePtr("2024-06-01 12:00")},
	}
	SortByDeadline(tasks)
	want := []string{"early", "mid", "late", "open"}
	for i, name := range want {
		if tasks[i].Name != name {
			t.Fatalf("position %d: got %s, want %s", i, tasks[i].Name, name)
		}
	}
}

func TestVisibleFilters(t *testing.T) {
	f := &store.File{
		Categories: []store.Category{
			{Name: "Always", Probability: 1.0},
			{Name: "Sometimes", Probability: 0.3},
			{Name: "Never", Probability: 0.0},
			{Name: "Empty", Probability: 1.0},
		},
		Tasks: []store.Task{
			{Name: "a", Category: "Always"},
			{Name: "s", Category: "Sometimes"},
			{Name: "n", Category: "Never"},
		},
	}

	names := func(cats []store.Category) []string {
		var out []string
		for _, c := range cats {
			out = append(out, c.Name)
		}
		return out
	}

	// Zero roll: every task-bearing category passes, even probability 0.0.
	got := names(Visible(f, 0.0))
	if strings.Join(got, ",") != "Always,Sometimes,Never" {
		t.Errorf("roll 0.0: got %v", got)
	}

	// A mid roll hides the low-probability buckets.
	got = names(Visible(f, 0.5))
	if strings.Join(got, ",") != "Always" {
		t.Errorf("roll 0.5: got %v", got)
	}

	// Probability 1.0 survives any roll below 1.0.
	got = names(Visible(f, 0.999999))
	if strings.Join(got, ",") != "Always" {
		t.Errorf("roll near 1: got %v", got)
	}

	// "Empty" has no tasks and never renders.
	for _, cats := range [][]store.Category{Visible(f, 0.0), Visible(f, 0.5)} {
		for _, c := range cats {
			if c.Name == "Empty" {
				t.Error("empty category should never be visible")
			}
		}
	}
}

func TestRenderInjectedRoll(t *testing.T) {
	f := &store.File{
		Categories: []store.Category{
			{Name: "Work", Probability: 1.0, Color: store.Red},
			{Name: "Maybe", Probability: 0.3, Color: store.Cyan},
		},
		Tasks: []store.Task{
			{Name: "Report", Category: "Work"},
			{Name: "Idea", Category: "Maybe"},
		},
	}

	var buf bytes.Buffer
	Render(&buf, f, Options{
		UseProbability: true,
		Roll:           func() float64 { return 0.5 },
		NoColor:        true,
	})
	out := buf.String()
	if !strings.Contains(out, "Work") || strings.Contains(out, "Maybe") {
		t.Errorf("roll 0.5 output:\n%s", out)
	}

	buf.Reset()
	Render(&buf, f, Options{
		UseProbability: true,
		Roll:           func() float64 { return 0.0 },
		NoColor:        true,
	})
	out = buf.String()
	if !strings.Contains(out, "Work") || !strings.Contains(out, "Maybe") {
		t.Errorf("roll 0.0 output:\n%s", out)
	}
}

func TestRenderOutput(t *testing.T) {
	f := &store.File{
		Categories: []store.Category{
			{Name: "Work", Probability: 1.0, Color: store.Red},
			{Name: store.Unclassified, Probability: 1.0, Color: store.White},
		},
		Tasks: []store.Task{
			{Name: "Slides", Category: "Work"},
			{Name: "Report", Deadline: datePtr("2024-01-01 10:00"), Category: "Work"},
		},
	}

	var buf bytes.Buffer
	Render(&buf, f, Options{
		Now:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		MarkBacklog: true,
		NoColor:     true,
	})

	want := strings.Join([]string{
		"Work",
		"    2024-01-01 10:00: Report [BACKLOG]",
		"    No deadline: Slides",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderNoBacklogForFutureDeadline(t *testing.T) {
	f := &store.File{
		Categories: []store.Category{{Name: "Work", Probability: 1.0, Color: store.Red}},
		Tasks:      []store.Task{{Name: "Report", Deadline: datePtr("2024-01-01 10:00"), Category: "Work"}},
	}
	var buf bytes.Buffer
	Render(&buf, f, Options{
		Now:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		MarkBacklog: true,
		NoColor:     true,
	})
	if strings.Contains(buf.String(), "[BACKLOG]") {
		t.Errorf("future deadline marked as backlog:\n%s", buf.String())
	}
}
