package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupStore(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	path := filepath.Join(home, "todo.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TODO_FILE", path)
	return path
}

func TestRunDisplay(t *testing.T) {
	setupStore(t, "Category name: Work\tcolor: Red\tprobability: 1.00\n"+
		"    Task name: Report\tdeadline: \"none\"\n")

	if err := Run(context.Background(), nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunDisplayWithProbability(t *testing.T) {
	setupStore(t, "Category name: Work\tcolor: Red\tprobability: 1.00\n"+
		"    Task name: Report\tdeadline: \"none\"\n")

	if err := Run(context.Background(), []string{"-p"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunMissingStoreFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("TODO_FILE", filepath.Join(home, "missing.txt"))

	if err := Run(context.Background(), nil); err == nil {
		t.Fatal("expected an error for a missing store file")
	}
}

func TestRunParseErrorSurfaces(t *testing.T) {
	setupStore(t, "Category name: Work\tcolor: Mauve\tprobability: 1.00\n")

	err := Run(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "invalid color") {
		t.Fatalf("got %v, want an invalid color error", err)
	}
}

func TestRunUnknownFlagShowsUsage(t *testing.T) {
	setupStore(t, "")

	// Unknown flags print usage and succeed; they never touch the store.
	for _, arg := range []string{"-x", "--frobnicate", "-h"} {
		if err := Run(context.Background(), []string{arg}); err != nil {
			t.Errorf("Run(%q) failed: %v", arg, err)
		}
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()
	for _, want := range []string{"-p", "-e", "-t", "TODO_FILE"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}
