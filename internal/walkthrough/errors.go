package walkthrough

import "errors"

var (
	// ErrCategoryNotFound is returned when a task names a category that has
	// not been registered.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNotItemsCategory is returned when a task targets a start entry.
	ErrNotItemsCategory = errors.New("category does not hold items")

	// ErrDuplicateTask is returned when a task id is registered twice.
	ErrDuplicateTask = errors.New("task already registered")

	// ErrTaskNotFound is returned by Registry.Task for unknown ids.
	ErrTaskNotFound = errors.New("task not found")
)
