package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// FileNames are the manifest file names looked up in an extension
// directory, in priority order.
var FileNames = []string{"package.json", "package.yaml", "package.yml"}

// ErrNoManifest is returned by Find when a directory has no manifest.
var ErrNoManifest = errors.New("no extension manifest")

// Find returns the path of the manifest file in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoManifest, dir)
}

// Parse reads a manifest file. JSON manifests are decoded by the YAML
// decoder, which accepts JSON documents.
func Parse(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes manifest data; path is used for error messages and
// recorded on the result.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("parsing manifest %s: missing required 'name' field", path)
	}
	m.Path = path
	return &m, nil
}

// Dir returns the directory the manifest was loaded from; relative media
// paths resolve against it.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
