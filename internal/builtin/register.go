package builtin

import (
	"fmt"
	"net/url"

	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/agentx-labs/welcome/internal/when"
)

// Register replays content into reg in order: each category is registered
// before its items. Relative media paths resolve against base. The first
// task registration error stops the replay.
func Register(reg *walkthrough.Registry, content *Content, base *url.URL) error {
	for _, cat := range content.Categories {
		reg.RegisterCategory(categoryDescriptor(cat))

		for _, item := range cat.Items {
			d, err := item.Descriptor(item.ID, cat.ID, base)
			if err != nil {
				return fmt.Errorf("built-in category %s: %w", cat.ID, err)
			}
			if _, err := reg.RegisterTask(d); err != nil {
				return fmt.Errorf("built-in category %s: %w", cat.ID, err)
			}
		}
	}
	return nil
}

func categoryDescriptor(cat Category) walkthrough.CategoryDescriptor {
	d := walkthrough.CategoryDescriptor{
		ID:          cat.ID,
		Title:       cat.Title,
		Description: cat.Description,
		When:        when.ParseOrTrue(cat.When),
		Content:     walkthrough.ItemsContent{},
	}
	if cat.IsStartEntry() {
		d.Content = walkthrough.StartEntry{Command: cat.Command}
	}

	switch {
	case cat.Icon.Codicon != "":
		d.Icon = walkthrough.CodiconIcon{Name: cat.Icon.Codicon}
	case cat.Icon.Image != "":
		d.Icon = walkthrough.ImageIcon{Path: cat.Icon.Image}
	}
	return d
}
