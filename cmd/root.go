// Package cmd implements the CLI command structure for todocras.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"todocras/internal/config"
	"todocras/internal/edit"
	"todocras/internal/logging"
	"todocras/internal/prompt"
	"todocras/internal/store"
	"todocras/internal/ui"
	"todocras/internal/view"
)

// Run executes the todocras CLI. It returns errors instead of exiting;
// only main translates them into a process exit code.
func Run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel)

	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}

	switch mode {
	case "":
		return displayCommand(cfg, logger, false)
	case "-p":
		return displayCommand(cfg, logger, true)
	case "-e":
		return editCommand(cfg, logger)
	case "-t":
		return ui.Browse(ctx, cfg, logger)
	default:
		printUsage(os.Stdout)
		return nil
	}
}

// displayCommand loads the store and renders it once to stdout.
func displayCommand(cfg *config.Config, logger *log.Logger, withProbability bool) error {
	f, err := store.Load(cfg.StoreFile, logger)
	if err != nil {
		return err
	}
	view.Render(os.Stdout, f, view.Options{
		UseProbability: withProbability,
		Now:            time.Now(),
		MarkBacklog:    cfg.MarkBacklog,
		NoColor:        cfg.NoColor,
	})
	return nil
}

// editCommand runs the interactive edit loop and rewrites the store file
// when the session ends, including on a closed stdin.
func editCommand(cfg *config.Config, logger *log.Logger) error {
	f, err := store.Load(cfg.StoreFile, logger)
	if err != nil {
		return err
	}

	p := prompt.NewTerminal(os.Stdin, os.Stdout)
	if err := edit.Run(f, p, os.Stdout); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return f.Save(cfg.StoreFile)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  todocras          Display tasks
  todocras -p       Display tasks with probability filtering
  todocras -e       Edit tasks and categories
  todocras -t       Browse tasks in the terminal UI
  todocras -h       Display this help

The store file is %s in your home directory; override it with the
TODO_FILE environment variable or store_file in the config file.
`, config.DefaultStoreName)
}
