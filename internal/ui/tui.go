// Package ui provides the alternate-screen store browser.
package ui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todocras/internal/config"
	"todocras/internal/store"
	"todocras/internal/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Browse opens the store file in a read-only alternate-screen browser.
func Browse(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("browse mode requires a TTY")
	}

	model := newBrowseModel(cfg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

type browseModel struct {
	cfg    *config.Config
	logger *log.Logger

	file    *store.File
	loadErr error

	// probability filtering state; roll is redrawn on every toggle-on
	// and reload so "p" behaves like a fresh -p invocation.
	probability bool
	roll        float64
}

func newBrowseModel(cfg *config.Config, logger *log.Logger) *browseModel {
	return &browseModel{cfg: cfg, logger: logger}
}

func (m *browseModel) reload() {
	m.file, m.loadErr = store.Load(m.cfg.StoreFile, m.logger)
	if m.probability {
		m.roll = rand.Float64()
	}
}

func (m *browseModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.reload()
			return m, nil
		case "p":
			m.probability = !m.probability
			if m.probability {
				m.roll = rand.Float64()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder
	title := "todocras"
	if m.probability {
		title += fmt.Sprintf("  (probability filter, roll %.2f)", m.roll)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(m.loadErr.Error()))
		b.WriteString("\n")
	case len(view.Visible(m.file, 0.0)) == 0:
		b.WriteString("No tasks.\n")
	default:
		view.Render(&b, m.file, view.Options{
			UseProbability: m.probability,
			Roll:           func() float64 { return m.roll },
			MarkBacklog:    m.cfg.MarkBacklog,
			NoColor:        m.cfg.NoColor,
		})
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("q quit • r reload • p toggle probability filter"))
	b.WriteString("\n")
	return b.String()
}
