package store

import (
	"fmt"
	"strings"
	"time"
)

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if strings.ContainsRune(name, '\t') {
		return fmt.Errorf("name %q must not contain tabs", name)
	}
	return nil
}

func validProbability(p float64) error {
	if p < 0.0 || p > 1.0 {
		return fmt.Errorf("%w: %.2f outside [0, 1]", ErrInvalidProbability, p)
	}
	return nil
}

func (f *File) categoryIndex(name string) int {
	for i := range f.Categories {
		if f.Categories[i].Name == name {
			return i
		}
	}
	return -1
}

func (f *File) checkCategoryIndex(index int) error {
	if index < 0 || index >= len(f.Categories) {
		return fmt.Errorf("category index %d out of range", index)
	}
	return nil
}

func (f *File) checkTaskIndex(index int) error {
	if index < 0 || index >= len(f.Tasks) {
		return fmt.Errorf("task index %d out of range", index)
	}
	return nil
}

// AddCategory appends a category. Probability must already be in [0, 1]
// and the name must be unique.
func (f *File) AddCategory(name string, probability float64, color Color) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := validProbability(probability); err != nil {
		return err
	}
	if f.categoryIndex(name) >= 0 {
		return fmt.Errorf("category %q already exists", name)
	}
	f.Categories = append(f.Categories, Category{Name: name, Probability: probability, Color: color})
	return nil
}

// RenameCategory renames the category at index and rewrites every task
// referencing the old name, so the soft references stay consistent.
// The Unclassified category cannot be renamed.
func (f *File) RenameCategory(index int, name string) error {
	if err := f.checkCategoryIndex(index); err != nil {
		return err
	}
	if f.Categories[index].Name == Unclassified {
		return ErrProtectedCategory
	}
	if err := validName(name); err != nil {
		return err
	}
	if f.categoryIndex(name) >= 0 {
		return fmt.Errorf("category %q already exists", name)
	}
	old := f.Categories[index].Name
	f.Categories[index].Name = name
	for i := range f.Tasks {
		if f.Tasks[i].Category == old {
			f.Tasks[i].Category = name
		}
	}
	return nil
}

// SetCategoryProbability updates the probability at index.
func (f *File) SetCategoryProbability(index int, p float64) error {
	if err := f.checkCategoryIndex(index); err != nil {
		return err
	}
	if err := validProbability(p); err != nil {
		return err
	}
	f.Categories[index].Probability = p
	return nil
}

// SetCategoryColor updates the color at index.
func (f *File) SetCategoryColor(index int, c Color) error {
	if err := f.checkCategoryIndex(index); err != nil {
		return err
	}
	f.Categories[index].Color = c
	return nil
}

// DeleteCategory removes the category at index after reassigning its
// tasks to Unclassified. Deleting Unclassified itself fails with
// ErrProtectedCategory and leaves both lists untouched.
func (f *File) DeleteCategory(index int) error {
	if err := f.checkCategoryIndex(index); err != nil {
		return err
	}
	name := f.Categories[index].Name
	if name == Unclassified {
		return ErrProtectedCategory
	}
	f.EnsureUnclassified()
	for i := range f.Tasks {
		if f.Tasks[i].Category == name {
			f.Tasks[i].Category = Unclassified
		}
	}
	f.Categories = append(f.Categories[:index], f.Categories[index+1:]...)
	return nil
}

// AddTask appends a task assigned to an existing category.
func (f *File) AddTask(name string, deadline *time.Time, category string) error {
	if err := validName(name); err != nil {
		return err
	}
	if f.categoryIndex(category) < 0 {
		return fmt.Errorf("unknown category %q", category)
	}
	f.Tasks = append(f.Tasks, Task{Name: name, Deadline: deadline, Category: category})
	return nil
}

// RenameTask updates the name of the task at index.
func (f *File) RenameTask(index int, name string) error {
	if err := f.checkTaskIndex(index); err != nil {
		return err
	}
	if err := validName(name); err != nil {
		return err
	}
	f.Tasks[index].Name = name
	return nil
}

// SetTaskDeadline updates the deadline of the task at index; nil clears it.
func (f *File) SetTaskDeadline(index int, deadline *time.Time) error {
	if err := f.checkTaskIndex(index); err != nil {
		return err
	}
	f.Tasks[index].Deadline = deadline
	return nil
}

// SetTaskCategory reassigns the task at index to an existing category.
func (f *File) SetTaskCategory(index int, category string) error {
	if err := f.checkTaskIndex(index); err != nil {
		return err
	}
	if f.categoryIndex(category) < 0 {
		return fmt.Errorf("unknown category %q", category)
	}
	f.Tasks[index].Category = category
	return nil
}

// DeleteTask removes the task at index.
func (f *File) DeleteTask(index int) error {
	if err := f.checkTaskIndex(index); err != nil {
		return err
	}
	f.Tasks = append(f.Tasks[:index], f.Tasks[index+1:]...)
	return nil
}
