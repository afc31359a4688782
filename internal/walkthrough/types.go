package walkthrough

import (
	"github.com/agentx-labs/welcome/internal/media"
	"github.com/agentx-labs/welcome/internal/when"
)

// Icon is the display icon of a category: a CodiconIcon or an ImageIcon.
// A nil Icon means the view picks its default.
type Icon interface {
	isIcon()
}

// CodiconIcon references a symbolic icon by name (e.g., "lightbulb").
type CodiconIcon struct {
	Name string
}

// ImageIcon references an image by path or URL.
type ImageIcon struct {
	Path string
}

func (CodiconIcon) isIcon() {}
func (ImageIcon) isIcon()   {}

// ContentDescriptor declares the content kind of a category at registration
// time: ItemsContent or StartEntry.
type ContentDescriptor interface {
	isContentDescriptor()
}

// ItemsContent declares a category that holds tasks.
type ItemsContent struct{}

func (ItemsContent) isContentDescriptor() {}

// Content is the content of a registered category: *Items or StartEntry.
// The kind is fixed when the category is registered.
type Content interface {
	isContent()
}

// StartEntry is a category that runs a command instead of listing tasks.
type StartEntry struct {
	Command string
}

func (StartEntry) isContentDescriptor() {}
func (StartEntry) isContent()           {}

// Items is the ordered task list of a category. Only the registry appends to it.
type Items struct {
	tasks []*Task
}

func (*Items) isContent() {}

// Tasks returns a copy of the task list in registration order.
func (it *Items) Tasks() []*Task {
	out := make([]*Task, len(it.tasks))
	copy(out, it.tasks)
	return out
}

// Len returns the number of tasks in the category.
func (it *Items) Len() int { return len(it.tasks) }

// Category is a registered Getting Started category.
type Category struct {
	ID          string
	Title       string
	Description string
	Icon        Icon
	When        when.Expr
	Content     Content
}

// Items returns the task list of the category and true, or nil and false
// when the category is a start entry.
func (c *Category) Items() (*Items, bool) {
	it, ok := c.Content.(*Items)
	return it, ok
}

// CategoryDescriptor is the input to Registry.RegisterCategory.
type CategoryDescriptor struct {
	ID          string
	Title       string
	Description string
	Icon        Icon
	When        when.Expr
	Content     ContentDescriptor
}

// Button is the primary action of a task: CommandButton or LinkButton.
type Button interface {
	Label() string
	isButton()
}

// CommandButton runs a command when pressed.
type CommandButton struct {
	Title   string
	Command string
}

// LinkButton opens a link when pressed.
type LinkButton struct {
	Title string
	Link  string
}

func (b CommandButton) Label() string { return b.Title }
func (b LinkButton) Label() string    { return b.Title }
func (CommandButton) isButton()       {}
func (LinkButton) isButton()          {}

// DoneOn describes what marks a task complete: DoneOnCommand or DoneOnEvent.
type DoneOn interface {
	isDoneOn()
}

// DoneOnCommand completes the task when the command executes.
type DoneOnCommand struct {
	Command string
}

// DoneOnEvent completes the task when the named event fires.
type DoneOnEvent struct {
	Event string
}

func (DoneOnCommand) isDoneOn() {}
func (DoneOnEvent) isDoneOn()   {}

// Media is the image shown next to a task.
type Media struct {
	Path    media.Themed
	AltText string
}

// Task is a registered step within an items category.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    string
	When        when.Expr
	Order       int
	Button      Button
	DoneOn      DoneOn
	Media       Media
}

// TaskDescriptor is the input to Registry.RegisterTask. DoneOn may be nil;
// the task then completes when its command button's command runs.
type TaskDescriptor struct {
	ID          string
	Title       string
	Description string
	Category    string
	When        when.Expr
	Button      Button
	DoneOn      DoneOn
	Media       Media
}

// defaultDoneOn derives the completion signal from a command button.
func defaultDoneOn(b Button) DoneOn {
	switch b := b.(type) {
	case CommandButton:
		return DoneOnCommand{Command: b.Command}
	case LinkButton:
		return nil
	default:
		return nil
	}
}
