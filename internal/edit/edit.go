// Package edit drives the interactive editing session over a store file.
package edit

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"todocras/internal/store"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// Prompter supplies already-validated answers for the edit session. The
// terminal implementation lives in internal/prompt; tests script one.
type Prompter interface {
	// Choose returns a 1-based index into options.
	Choose(title string, options []string) (int, error)
	Text(msg string) (string, error)
	// Probability returns a float in [0, 1].
	Probability(msg string) (float64, error)
	// Deadline returns nil for "no deadline".
	Deadline(msg string) (*time.Time, error)
	Confirm(msg string) (bool, error)
}

// Run loops edit operations until the user declines to continue. Failed
// mutations (protected category, unknown names) are reported on out and
// end the current operation only; prompt errors end the whole session.
func Run(f *store.File, p Prompter, out io.Writer) error {
	for {
		if err := editOnce(f, p, out); err != nil {
			return err
		}
		cont, err := p.Confirm("Continue editing? [y/n] ")
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

func editOnce(f *store.File, p Prompter, out io.Writer) error {
	kind, err := p.Choose("Edit what?", []string{"Category", "Task"})
	if err != nil {
		return err
	}
	if kind == 1 {
		return editCategory(f, p, out)
	}
	return editTask(f, p, out)
}

func editCategory(f *store.File, p Prompter, out io.Writer) error {
	op, err := p.Choose("", []string{"Add category", "Edit category", "Delete category"})
	if err != nil {
		return err
	}
	switch op {
	case 1:
		name, err := p.Text("Name: ")
		if err != nil {
			return err
		}
		probability, err := p.Probability("Probability: ")
		if err != nil {
			return err
		}
		color, err := chooseColor(p)
		if err != nil {
			return err
		}
		report(out, f.AddCategory(name, probability, color))
	case 2:
		index, err := p.Choose("Which category?", f.CategoryNames())
		if err != nil {
			return err
		}
		return editCategoryFields(f, p, out, index-1)
	case 3:
		index, err := p.Choose("Which category?", f.CategoryNames())
		if err != nil {
			return err
		}
		report(out, f.DeleteCategory(index-1))
	}
	return nil
}

func editCategoryFields(f *store.File, p Prompter, out io.Writer, index int) error {
	field, err := p.Choose("", []string{"Change name", "Change probability", "Change color"})
	if err != nil {
		return err
	}
	switch field {
	case 1:
		name, err := p.Text("New name: ")
		if err != nil {
			return err
		}
		report(out, f.RenameCategory(index, name))
	case 2:
		probability, err := p.Probability("New probability: ")
		if err != nil {
			return err
		}
		report(out, f.SetCategoryProbability(index, probability))
	case 3:
		color, err := chooseColor(p)
		if err != nil {
			return err
		}
		report(out, f.SetCategoryColor(index, color))
	}
	return nil
}

func editTask(f *store.File, p Prompter, out io.Writer) error {
	op, err := p.Choose("", []string{"Add task", "Edit task", "Delete task"})
	if err != nil {
		return err
	}
	switch op {
	case 1:
		index, err := p.Choose("Category:", f.CategoryNames())
		if err != nil {
			return err
		}
		category := f.Categories[index-1].Name
		name, err := p.Text("Task name: ")
		if err != nil {
			return err
		}
		deadline, err := p.Deadline("Deadline: ")
		if err != nil {
			return err
		}
		report(out, f.AddTask(name, deadline, category))
	case 2:
		if len(f.Tasks) == 0 {
			fmt.Fprintln(out, "No tasks to edit")
			return nil
		}
		index, err := p.Choose("Which task?", f.TaskNames())
		if err != nil {
			return err
		}
		return editTaskFields(f, p, out, index-1)
	case 3:
		if len(f.Tasks) == 0 {
			fmt.Fprintln(out, "No tasks to delete")
			return nil
		}
		index, err := p.Choose("Which task?", f.TaskNames())
		if err != nil {
			return err
		}
		report(out, f.DeleteTask(index-1))
	}
	return nil
}

func editTaskFields(f *store.File, p Prompter, out io.Writer, index int) error {
	field, err := p.Choose("", []string{"Change task name", "Change deadline", "Change category"})
	if err != nil {
		return err
	}
	switch field {
	case 1:
		name, err := p.Text("New task name: ")
		if err != nil {
			return err
		}
		report(out, f.RenameTask(index, name))
	case 2:
		deadline, err := p.Deadline("New deadline: ")
		if err != nil {
			return err
		}
		report(out, f.SetTaskDeadline(index, deadline))
	case 3:
		choice, err := p.Choose("New category:", f.CategoryNames())
		if err != nil {
			return err
		}
		report(out, f.SetTaskCategory(index, f.Categories[choice-1].Name))
	}
	return nil
}

func chooseColor(p Prompter) (store.Color, error) {
	choice, err := p.Choose("Color:", store.ColorNames())
	if err != nil {
		return store.White, err
	}
	return store.Color(choice - 1), nil
}

func report(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(out, errStyle.Render(err.Error()))
	}
}
