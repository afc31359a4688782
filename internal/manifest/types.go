package manifest

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/welcome/internal/media"
	"github.com/agentx-labs/welcome/internal/walkthrough"
	"go.yaml.in/yaml/v3"
)

// Manifest is the subset of an extension manifest this module reads.
type Manifest struct {
	Name        string            `yaml:"name" json:"name"`
	Publisher   string            `yaml:"publisher" json:"publisher"`
	Version     string            `yaml:"version" json:"version"`
	DisplayName string            `yaml:"displayName,omitempty" json:"displayName,omitempty"`
	Engines     map[string]string `yaml:"engines,omitempty" json:"engines,omitempty"`
	Contributes Contributions     `yaml:"contributes" json:"contributes"`

	// Path is the manifest file the manifest was parsed from.
	Path string `yaml:"-" json:"-"`
}

// ID returns the extension identifier, "publisher.name" in lower case.
func (m *Manifest) ID() string {
	if m.Publisher == "" {
		return strings.ToLower(m.Name)
	}
	return strings.ToLower(m.Publisher + "." + m.Name)
}

// Contributions holds the Getting Started contribution points.
type Contributions struct {
	WelcomeCategories []CategoryContribution `yaml:"welcomeCategories,omitempty" json:"welcomeCategories,omitempty"`
	WelcomeItems      WelcomeItems           `yaml:"welcomeItems,omitempty" json:"welcomeItems,omitempty"`
}

// CategoryContribution is one entry of welcomeCategories.
type CategoryContribution struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	When        string `yaml:"when,omitempty" json:"when,omitempty"`
}

// CategoryItems is the item list contributed to one category.
type CategoryItems struct {
	Category string
	Items    []ItemContribution
}

// WelcomeItems is the welcomeItems object, keyed by category id. Key order
// from the manifest is preserved.
type WelcomeItems []CategoryItems

// UnmarshalYAML decodes a mapping of category id to item arrays.
func (w *WelcomeItems) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: welcomeItems must be an object", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		var items []ItemContribution
		if err := val.Decode(&items); err != nil {
			return fmt.Errorf("welcomeItems[%s]: %w", key.Value, err)
		}
		*w = append(*w, CategoryItems{Category: key.Value, Items: items})
	}
	return nil
}

// ItemContribution is one task entry of welcomeItems.
type ItemContribution struct {
	ID          string  `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Button      Button  `yaml:"button" json:"button"`
	Media       Media   `yaml:"media" json:"media"`
	DoneOn      *DoneOn `yaml:"doneOn,omitempty" json:"doneOn,omitempty"`
	When        string  `yaml:"when,omitempty" json:"when,omitempty"`
}

// Button is either {title, command} or {title, link}.
type Button struct {
	value walkthrough.Button
}

// Value returns the decoded button, or nil when the field was absent.
func (b Button) Value() walkthrough.Button { return b.value }

// UnmarshalYAML enforces that exactly one of command and link is set.
func (b *Button) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Title   string  `yaml:"title"`
		Command *string `yaml:"command"`
		Link    *string `yaml:"link"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	switch {
	case raw.Command != nil && raw.Link != nil:
		return fmt.Errorf("line %d: button declares both command and link", value.Line)
	case raw.Command != nil:
		b.value = walkthrough.CommandButton{Title: raw.Title, Command: *raw.Command}
	case raw.Link != nil:
		b.value = walkthrough.LinkButton{Title: raw.Title, Link: *raw.Link}
	default:
		return fmt.Errorf("line %d: button needs a command or a link", value.Line)
	}
	return nil
}

// DoneOn is either {command} or {event}.
type DoneOn struct {
	value walkthrough.DoneOn
}

// Value returns the decoded completion signal.
func (d DoneOn) Value() walkthrough.DoneOn { return d.value }

// UnmarshalYAML enforces that exactly one of command and event is set.
func (d *DoneOn) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Command *string `yaml:"command"`
		Event   *string `yaml:"event"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	switch {
	case raw.Command != nil && raw.Event != nil:
		return fmt.Errorf("line %d: doneOn declares both command and event", value.Line)
	case raw.Command != nil:
		d.value = walkthrough.DoneOnCommand{Command: *raw.Command}
	case raw.Event != nil:
		d.value = walkthrough.DoneOnEvent{Event: *raw.Event}
	default:
		return fmt.Errorf("line %d: doneOn needs a command or an event", value.Line)
	}
	return nil
}

// Media is the media block of an item.
type Media struct {
	Path    MediaPath `yaml:"path" json:"path"`
	AltText string    `yaml:"altText" json:"altText"`
}

// MediaPath is either a string or a {hc, light, dark} object.
type MediaPath struct {
	value media.Path
}

// Value returns the decoded path, or nil when the field was absent.
func (p MediaPath) Value() media.Path { return p.value }

// UnmarshalYAML accepts a scalar or a themed mapping.
func (p *MediaPath) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		p.value = media.Bare(value.Value)
		return nil
	case yaml.MappingNode:
		var themed media.ThemedPath
		if err := value.Decode(&themed); err != nil {
			return err
		}
		if themed.HC == "" || themed.Light == "" || themed.Dark == "" {
			return fmt.Errorf("line %d: themed media path needs hc, light and dark", value.Line)
		}
		p.value = themed
		return nil
	default:
		return fmt.Errorf("line %d: media path must be a string or an object", value.Line)
	}
}
