package builtin

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/google/go-cmp/cmp"
)

func testBase(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("file:///opt/welcome/media")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func loadRegistry(t *testing.T) *walkthrough.Registry {
	t.Helper()
	content, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	reg := walkthrough.New()
	if err := Register(reg, content, testBase(t)); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return reg
}

func TestLoad_Embedded(t *testing.T) {
	content, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(content.Categories) == 0 {
		t.Fatal("embedded content has no categories")
	}
	for _, c := range content.Categories {
		if c.Title == "" {
			t.Errorf("category %s has no title", c.ID)
		}
	}
}

func TestRegister_CategoryOrder(t *testing.T) {
	reg := loadRegistry(t)

	var got []string
	for _, c := range reg.Categories() {
		got = append(got, c.ID)
	}
	want := []string{
		"welcome.showNewFileEntries",
		"topLevelOpenFolder",
		"topLevelGitClone",
		"Setup",
		"Beginner",
		"notebooks",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_StartEntry(t *testing.T) {
	reg := loadRegistry(t)

	c, ok := reg.Category("topLevelGitClone")
	if !ok {
		t.Fatal("topLevelGitClone not registered")
	}
	entry, ok := c.Content.(walkthrough.StartEntry)
	if !ok {
		t.Fatalf("Content = %T, want StartEntry", c.Content)
	}
	if entry.Command != "git.clone" {
		t.Errorf("Command = %q, want %q", entry.Command, "git.clone")
	}
	if c.When.String() != "config.git.enabled && !git.missing" {
		t.Errorf("When = %q", c.When.String())
	}
	if icon, ok := c.Icon.(walkthrough.CodiconIcon); !ok || icon.Name != "source-control" {
		t.Errorf("Icon = %#v, want codicon source-control", c.Icon)
	}
}

func TestRegister_ItemsInOrder(t *testing.T) {
	reg := loadRegistry(t)

	c, ok := reg.Category("Setup")
	if !ok {
		t.Fatal("Setup not registered")
	}
	items, ok := c.Items()
	if !ok {
		t.Fatalf("Setup content = %T, want items", c.Content)
	}

	var ids []string
	for i, task := range items.Tasks() {
		ids = append(ids, task.ID)
		if task.Order != i {
			t.Errorf("%s.Order = %d, want %d", task.ID, task.Order, i)
		}
		if task.Category != "Setup" {
			t.Errorf("%s.Category = %q, want Setup", task.ID, task.Category)
		}
	}
	want := []string{"pickColorTheme", "settingsSync", "commandPaletteTask", "extensions"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Setup tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_TaskDetails(t *testing.T) {
	reg := loadRegistry(t)

	palette, err := reg.Task("commandPaletteTask")
	if err != nil {
		t.Fatal(err)
	}
	want := walkthrough.DoneOnCommand{Command: "workbench.action.showCommands"}
	if palette.DoneOn != want {
		t.Errorf("DoneOn = %#v, want %#v", palette.DoneOn, want)
	}
	if palette.Media.Path.HC != "file:///opt/welcome/media/commandPalette.png" {
		t.Errorf("Media.Path.HC = %q", palette.Media.Path.HC)
	}

	sync, err := reg.Task("settingsSync")
	if err != nil {
		t.Fatal(err)
	}
	if sync.DoneOn != (walkthrough.DoneOnEvent{Event: "sync-enabled"}) {
		t.Errorf("DoneOn = %#v, want event sync-enabled", sync.DoneOn)
	}

	scm, err := reg.Task("scmClone")
	if err != nil {
		t.Fatal(err)
	}
	if scm.Media.Path.Dark != "file:///opt/welcome/media/git-dark.png" {
		t.Errorf("Media.Path.Dark = %q", scm.Media.Path.Dark)
	}
	if scm.Media.Path.HC == scm.Media.Path.Light {
		t.Error("themed media resolved to the same path for hc and light")
	}

	notebook, err := reg.Task("notebookProfile")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := notebook.Button.(walkthrough.LinkButton); !ok {
		t.Errorf("Button = %T, want LinkButton", notebook.Button)
	}
}

func TestRegister_Twice(t *testing.T) {
	content, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	reg := walkthrough.New()
	if err := Register(reg, content, testBase(t)); err != nil {
		t.Fatal(err)
	}

	err = Register(reg, content, testBase(t))
	if !errors.Is(err, walkthrough.ErrDuplicateTask) {
		t.Fatalf("second Register error = %v, want ErrDuplicateTask", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "missing id",
			data:    "categories:\n  - title: Nameless\n",
			wantErr: "has no id",
		},
		{
			name: "start entry with items",
			data: `categories:
  - id: open
    title: Open
    command: open
    items:
      - id: a
        button: { title: A, command: a }
        media: { path: a.png }
`,
			wantErr: "cannot have items",
		},
		{
			name:    "two icons",
			data:    "categories:\n  - id: c\n    icon: { codicon: a, image: b.svg }\n",
			wantErr: "two icons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegister_StopsOnBadMedia(t *testing.T) {
	content, err := Parse([]byte(`categories:
  - id: c
    title: C
    items:
      - id: ok
        button: { title: A, command: a }
        media: { path: a.png }
      - id: bad
        button: { title: B, command: b }
        media: { path: ../b.png }
      - id: never
        button: { title: C, command: c }
        media: { path: c.png }
`))
	if err != nil {
		t.Fatal(err)
	}

	reg := walkthrough.New()
	if err := Register(reg, content, testBase(t)); err == nil {
		t.Fatal("expected error for escaping media path, got nil")
	}
	if reg.TaskCount() != 1 {
		t.Errorf("TaskCount = %d, want 1", reg.TaskCount())
	}
}
