package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/agentx-labs/welcome/internal/when"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// categoryView is the display form of a category.
type categoryView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Command     string `json:"command,omitempty"`
	Icon        string `json:"icon,omitempty"`
	When        string `json:"when"`
	Tasks       int    `json:"tasks"`
}

// taskView is the display form of a task.
type taskView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Order       int        `json:"order"`
	When        string     `json:"when"`
	Button      buttonView `json:"button"`
	DoneOn      string     `json:"doneOn,omitempty"`
	Media       mediaView  `json:"media"`
}

type buttonView struct {
	Title   string `json:"title"`
	Command string `json:"command,omitempty"`
	Link    string `json:"link,omitempty"`
}

type mediaView struct {
	HC      string `json:"hc"`
	Light   string `json:"light"`
	Dark    string `json:"dark"`
	AltText string `json:"altText"`
}

func newCategoryView(c *walkthrough.Category) categoryView {
	v := categoryView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Icon:        iconString(c.Icon),
		When:        c.When.String(),
	}
	switch content := c.Content.(type) {
	case *walkthrough.Items:
		v.Kind = "items"
		v.Tasks = content.Len()
	case walkthrough.StartEntry:
		v.Kind = "start"
		v.Command = content.Command
	}
	return v
}

func newTaskView(t *walkthrough.Task) taskView {
	v := taskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Order:       t.Order,
		When:        t.When.String(),
		DoneOn:      doneOnString(t.DoneOn),
		Media: mediaView{
			HC:      t.Media.Path.HC,
			Light:   t.Media.Path.Light,
			Dark:    t.Media.Path.Dark,
			AltText: t.Media.AltText,
		},
	}
	if t.Button != nil {
		v.Button.Title = t.Button.Label()
	}
	switch b := t.Button.(type) {
	case walkthrough.CommandButton:
		v.Button.Command = b.Command
	case walkthrough.LinkButton:
		v.Button.Link = b.Link
	}
	return v
}

func iconString(icon walkthrough.Icon) string {
	switch i := icon.(type) {
	case walkthrough.CodiconIcon:
		return "codicon:" + i.Name
	case walkthrough.ImageIcon:
		return "image:" + i.Path
	default:
		return ""
	}
}

func doneOnString(d walkthrough.DoneOn) string {
	switch d := d.(type) {
	case walkthrough.DoneOnCommand:
		return "command:" + d.Command
	case walkthrough.DoneOnEvent:
		return "event:" + d.Event
	default:
		return ""
	}
}

// parseContext turns key=value flags into a when.Context. "true" and
// "false" become booleans, numbers become float64, a bare key is true.
func parseContext(pairs []string) (when.Context, error) {
	ctx := when.Context{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid context entry %q: expected key=value", pair)
		}
		if !found {
			ctx[key] = true
			continue
		}
		switch value {
		case "true":
			ctx[key] = true
		case "false":
			ctx[key] = false
		default:
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				ctx[key] = f
			} else {
				ctx[key] = value
			}
		}
	}
	return ctx, nil
}

// sortByTitle orders categories by title using English collation.
// Registration order breaks ties.
func sortByTitle(cats []*walkthrough.Category) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(cats, func(i, j int) bool {
		return c.CompareString(cats[i].Title, cats[j].Title) < 0
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
