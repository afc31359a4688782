package walkthrough

import (
	"fmt"
	"log/slog"

	"github.com/agentx-labs/welcome/internal/when"
)

// Event names used in log records.
const (
	EventCategoryAdded = "category_added"
	EventTaskAdded     = "task_added"
)

// Registry is the in-memory catalog of categories and tasks. Construct one
// with New at the composition root and hand it to producers and views.
type Registry struct {
	logger *slog.Logger

	categories    map[string]*Category
	categoryOrder []string
	tasks         map[string]*Task

	categoryAdded *emitter[*Category]
	taskAdded     *emitter[*Task]
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for duplicate-category warnings and
// listener failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:     slog.Default(),
		categories: make(map[string]*Category),
		tasks:      make(map[string]*Task),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.categoryAdded = newEmitter[*Category](EventCategoryAdded, r.logger)
	r.taskAdded = newEmitter[*Task](EventTaskAdded, r.logger)
	return r
}

// RegisterCategory stores a new category and notifies category listeners.
// Registering an id that already exists logs a warning and keeps the
// original category untouched; descriptors are never merged.
func (r *Registry) RegisterCategory(d CategoryDescriptor) {
	if existing, ok := r.categories[d.ID]; ok {
		r.logger.Warn("duplicate category ignored",
			"category", d.ID,
			"title", existing.Title,
		)
		return
	}

	c := &Category{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		When:        orTrue(d.When),
	}
	switch content := d.Content.(type) {
	case StartEntry:
		c.Content = content
	case ItemsContent, nil:
		c.Content = &Items{}
	}

	r.categories[c.ID] = c
	r.categoryOrder = append(r.categoryOrder, c.ID)
	r.categoryAdded.fire(c)
}

// RegisterTask appends a task to its category and notifies task listeners.
// The category must exist and hold items, and the task id must be unused.
func (r *Registry) RegisterTask(d TaskDescriptor) (*Task, error) {
	c, ok := r.categories[d.Category]
	if !ok {
		return nil, fmt.Errorf("registering task %q: %w: %q", d.ID, ErrCategoryNotFound, d.Category)
	}
	items, ok := c.Items()
	if !ok {
		return nil, fmt.Errorf("registering task %q: %w: %q", d.ID, ErrNotItemsCategory, d.Category)
	}
	if _, exists := r.tasks[d.ID]; exists {
		return nil, fmt.Errorf("registering task %q: %w", d.ID, ErrDuplicateTask)
	}

	doneOn := d.DoneOn
	if doneOn == nil {
		doneOn = defaultDoneOn(d.Button)
	}

	t := &Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		When:        orTrue(d.When),
		Order:       len(items.tasks),
		Button:      d.Button,
		DoneOn:      doneOn,
		Media:       d.Media,
	}
	items.tasks = append(items.tasks, t)
	r.tasks[t.ID] = t

	r.taskAdded.fire(t)
	return t, nil
}

// Category returns the category with the given id.
func (r *Registry) Category(id string) (*Category, bool) {
	c, ok := r.categories[id]
	return c, ok
}

// Task returns the task with the given id, or ErrTaskNotFound.
func (r *Registry) Task(id string) (*Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}
	return t, nil
}

// Categories returns all categories in registration order.
func (r *Registry) Categories() []*Category {
	out := make([]*Category, 0, len(r.categoryOrder))
	for _, id := range r.categoryOrder {
		out = append(out, r.categories[id])
	}
	return out
}

// TaskCount returns the number of registered tasks.
func (r *Registry) TaskCount() int { return len(r.tasks) }

// OnCategoryAdded subscribes fn to category registrations. The returned
// function unsubscribes.
func (r *Registry) OnCategoryAdded(fn Listener[*Category]) func() {
	return r.categoryAdded.subscribe(fn)
}

// OnTaskAdded subscribes fn to task registrations. The returned function
// unsubscribes.
func (r *Registry) OnTaskAdded(fn Listener[*Task]) func() {
	return r.taskAdded.subscribe(fn)
}

func orTrue(e when.Expr) when.Expr {
	if e == nil {
		return when.True
	}
	return e
}
