package builtin

import (
	_ "embed"
	"fmt"

	"github.com/agentx-labs/welcome/internal/manifest"
	"go.yaml.in/yaml/v3"
)

//go:embed content.yaml
var rawContent []byte

// Content is the ordered list of built-in categories.
type Content struct {
	Categories []Category `yaml:"categories"`
}

// Category is a built-in category. It is a start entry when Command is set
// and an items category otherwise.
type Category struct {
	manifest.CategoryContribution `yaml:",inline"`

	Icon    Icon                        `yaml:"icon,omitempty"`
	Command string                      `yaml:"command,omitempty"`
	Items   []manifest.ItemContribution `yaml:"items,omitempty"`
}

// IsStartEntry reports whether the category runs a command.
func (c Category) IsStartEntry() bool { return c.Command != "" }

// Icon names either a codicon or an image path.
type Icon struct {
	Codicon string `yaml:"codicon,omitempty"`
	Image   string `yaml:"image,omitempty"`
}

// Load decodes the embedded content.
func Load() (*Content, error) {
	return Parse(rawContent)
}

// Parse decodes content in the built-in content format.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing built-in content: %w", err)
	}

	for _, cat := range c.Categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("parsing built-in content: category %q has no id", cat.Title)
		}
		if cat.IsStartEntry() && len(cat.Items) > 0 {
			return nil, fmt.Errorf("parsing built-in content: start entry %q cannot have items", cat.ID)
		}
		if cat.Icon.Codicon != "" && cat.Icon.Image != "" {
			return nil, fmt.Errorf("parsing built-in content: category %q declares two icons", cat.ID)
		}
	}
	return &c, nil
}
