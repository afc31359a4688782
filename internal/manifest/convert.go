package manifest

import (
	"fmt"
	"net/url"

	"github.com/agentx-labs/welcome/internal/media"
	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/agentx-labs/welcome/internal/when"
)

// Descriptor converts the contribution into an items category registered
// under id. Contributed categories carry no icon.
func (c CategoryContribution) Descriptor(id string) walkthrough.CategoryDescriptor {
	return walkthrough.CategoryDescriptor{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		When:        when.ParseOrTrue(c.When),
		Content:     walkthrough.ItemsContent{},
	}
}

// Descriptor converts the item into a task registered as id under category.
// Relative media paths resolve against base.
func (it ItemContribution) Descriptor(id, category string, base *url.URL) (walkthrough.TaskDescriptor, error) {
	button := it.Button.Value()
	if button == nil {
		return walkthrough.TaskDescriptor{}, fmt.Errorf("item %q: missing button", it.ID)
	}

	themed, err := media.Resolve(it.Media.Path.Value(), base)
	if err != nil {
		return walkthrough.TaskDescriptor{}, fmt.Errorf("item %q: resolving media: %w", it.ID, err)
	}

	var doneOn walkthrough.DoneOn
	if it.DoneOn != nil {
		doneOn = it.DoneOn.Value()
	}

	return walkthrough.TaskDescriptor{
		ID:          id,
		Title:       it.Title,
		Description: it.Description,
		Category:    category,
		When:        when.ParseOrTrue(it.When),
		Button:      button,
		DoneOn:      doneOn,
		Media: walkthrough.Media{
			Path:    themed,
			AltText: it.Media.AltText,
		},
	}, nil
}
