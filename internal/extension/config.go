package extension

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ConfigFile is the file name of the extension configuration.
const ConfigFile = "extensions.yaml"

// Resolution order tokens.
const (
	// OrderExtensions expands into one source per declared extension.
	OrderExtensions = "extensions"
	// OrderUser is the user extension directory; each subdirectory is an extension.
	OrderUser = "user"
)

// ExtensionConfig represents the extensions.yaml configuration file.
type ExtensionConfig struct {
	Extensions []Extension      `yaml:"extensions"`
	Resolution ResolutionConfig `yaml:"resolution"`
}

// Extension is a single extension entry in extensions.yaml.
type Extension struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
}

// ResolutionConfig holds the source resolution order.
type ResolutionConfig struct {
	Order []string `yaml:"order"`
}

// DefaultConfig returns the configuration used when no extensions.yaml
// exists: declared extensions first, then the user extension directory.
func DefaultConfig() *ExtensionConfig {
	return &ExtensionConfig{
		Resolution: ResolutionConfig{
			Order: []string{OrderExtensions, OrderUser},
		},
	}
}

// LoadConfig reads and parses an extensions.yaml file.
func LoadConfig(path string) (*ExtensionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg ExtensionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Resolution.Order) == 0 {
		cfg.Resolution.Order = DefaultConfig().Resolution.Order
	}

	return &cfg, nil
}

// LoadConfigOrDefault is LoadConfig, falling back to DefaultConfig when the
// file does not exist.
func LoadConfigOrDefault(path string) (*ExtensionConfig, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration back to an extensions.yaml file.
func SaveConfig(path string, cfg *ExtensionConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	return nil
}

// FindExtension returns the extension with the given name, or nil if not found.
func (c *ExtensionConfig) FindExtension(name string) *Extension {
	for i := range c.Extensions {
		if c.Extensions[i].Name == name {
			return &c.Extensions[i]
		}
	}
	return nil
}

// AddExtension appends a new extension to the config if it does not already exist.
// Returns an error if an extension with the same name is already present.
func (c *ExtensionConfig) AddExtension(ext Extension) error {
	if c.FindExtension(ext.Name) != nil {
		return fmt.Errorf("extension %q already exists", ext.Name)
	}
	c.Extensions = append(c.Extensions, ext)
	return nil
}

// RemoveExtension removes an extension by name.
// Returns an error if the extension is not found.
func (c *ExtensionConfig) RemoveExtension(name string) error {
	for i, ext := range c.Extensions {
		if ext.Name == name {
			c.Extensions = append(c.Extensions[:i], c.Extensions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("extension %q not found in configuration", name)
}
